package mock

import (
	"context"

	"github.com/fwojciec/sitesearch"
)

var (
	_ sitesearch.PageFinder = (*PageFinder)(nil)
	_ sitesearch.Searcher   = (*Searcher)(nil)
)

// PageFinder is a mock implementation of sitesearch.PageFinder.
type PageFinder struct {
	FindPagesByContentFn func(ctx context.Context, substr string) ([]*sitesearch.SearchResult, error)
}

func (f *PageFinder) FindPagesByContent(ctx context.Context, substr string) ([]*sitesearch.SearchResult, error) {
	return f.FindPagesByContentFn(ctx, substr)
}

// Searcher is a mock implementation of sitesearch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, keyword string) ([]*sitesearch.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, keyword string) ([]*sitesearch.SearchResult, error) {
	return s.SearchFn(ctx, keyword)
}
