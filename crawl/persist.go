package crawl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/sitesearch"
)

// Persister stores the result of a crawl.
// The durable table accumulates pages across crawls, while the snapshot
// and the cache are replaced wholesale by every call to Persist.
type Persister struct {
	Pages     sitesearch.PageService
	Snapshots sitesearch.SnapshotService

	// Cache, if set, is replaced with the persisted pages.
	Cache sitesearch.PageCache

	// Logger receives per-page failures. Defaults to discarding.
	Logger *slog.Logger
}

// PersistResult summarizes a call to Persist.
type PersistResult struct {
	Inserted int
	Ignored  int
	Failed   int
	Bytes    int
}

// Persist inserts every page that is not already stored, then overwrites
// the snapshot with pages and replaces the cache.
// A page that fails to insert is logged and counted; the remaining pages
// are still inserted. Only a snapshot failure is returned as an error.
func (p *Persister) Persist(ctx context.Context, pages []*sitesearch.Page) (*PersistResult, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var result PersistResult
	for _, page := range pages {
		result.Bytes += len(page.Content)

		inserted, err := p.Pages.CreatePageIfNotExists(ctx, page)
		if err != nil {
			result.Failed++
			logger.Error("persist page",
				"url", page.URL,
				"err", err,
			)
			continue
		}
		if inserted {
			result.Inserted++
		} else {
			result.Ignored++
		}
	}

	if p.Cache != nil {
		p.Cache.ReplacePages(pages)
	}

	if err := p.Snapshots.SaveSnapshot(ctx, pages); err != nil {
		return &result, fmt.Errorf("save snapshot: %w", err)
	}

	return &result, nil
}
