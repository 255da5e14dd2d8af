// Package search answers keyword queries against stored pages.
package search

import (
	"context"
	"strings"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.Searcher = (*Engine)(nil)

// Engine normalizes keywords and looks them up in a PageFinder.
type Engine struct {
	Pages sitesearch.PageFinder
}

// NewEngine returns an Engine that queries pages.
func NewEngine(pages sitesearch.PageFinder) *Engine {
	return &Engine{Pages: pages}
}

// Search returns every page whose content contains keyword, ignoring case,
// in storage order. A blank keyword matches nothing and does not query the
// page finder.
func (e *Engine) Search(ctx context.Context, keyword string) ([]*sitesearch.SearchResult, error) {
	keyword = sitesearch.Fold(strings.TrimSpace(keyword))
	if keyword == "" {
		return []*sitesearch.SearchResult{}, nil
	}

	results, err := e.Pages.FindPagesByContent(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*sitesearch.SearchResult{}
	}
	return results, nil
}
