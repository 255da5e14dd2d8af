package search

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/sitesearch"
)

var (
	_ sitesearch.PageCache  = (*Index)(nil)
	_ sitesearch.PageFinder = (*Index)(nil)
)

// Index is an in-memory copy of the latest crawl's pages.
// It is safe for concurrent use.
type Index struct {
	mu    sync.RWMutex
	pages []*sitesearch.Page
}

// NewIndex returns an Index holding pages.
func NewIndex(pages []*sitesearch.Page) *Index {
	idx := &Index{}
	idx.ReplacePages(pages)
	return idx
}

// ReplacePages discards the indexed pages and stores a copy of pages.
func (idx *Index) ReplacePages(pages []*sitesearch.Page) {
	cp := make([]*sitesearch.Page, len(pages))
	copy(cp, pages)

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.pages = cp
}

// Pages returns the indexed pages in crawl order.
func (idx *Index) Pages() []*sitesearch.Page {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	cp := make([]*sitesearch.Page, len(idx.pages))
	copy(cp, idx.pages)
	return cp
}

// Len returns the number of indexed pages.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.pages)
}

// FindPagesByContent returns every indexed page whose content contains
// substr, in crawl order.
func (idx *Index) FindPagesByContent(ctx context.Context, substr string) ([]*sitesearch.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	results := []*sitesearch.SearchResult{}
	for _, p := range idx.pages {
		if strings.Contains(p.Content, substr) {
			results = append(results, &sitesearch.SearchResult{Title: p.Title, URL: p.URL})
		}
	}
	return results, nil
}
