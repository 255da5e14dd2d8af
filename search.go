package sitesearch

import "context"

// SearchResult is a single page matching a keyword.
type SearchResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PageFinder looks up pages by content.
type PageFinder interface {
	// FindPagesByContent returns every page whose content contains substr,
	// in storage order. The substring is matched as-is; callers fold it first.
	FindPagesByContent(ctx context.Context, substr string) ([]*SearchResult, error)
}

// Searcher answers keyword queries.
type Searcher interface {
	// Search returns pages whose content contains keyword, ignoring case.
	// A blank keyword returns no results.
	Search(ctx context.Context, keyword string) ([]*SearchResult, error)
}
