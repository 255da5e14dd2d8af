package mock

import (
	"context"

	"github.com/fwojciec/sitesearch"
)

// Compile-time interface verification.
var (
	_ sitesearch.PageService     = (*PageService)(nil)
	_ sitesearch.SnapshotService = (*SnapshotService)(nil)
	_ sitesearch.PageCache       = (*PageCache)(nil)
)

// PageService is a mock implementation of sitesearch.PageService.
type PageService struct {
	CreatePageIfNotExistsFn func(ctx context.Context, page *sitesearch.Page) (bool, error)
	FindPagesFn             func(ctx context.Context) ([]*sitesearch.Page, error)
	FindPagesByContentFn    func(ctx context.Context, substr string) ([]*sitesearch.SearchResult, error)
}

func (s *PageService) CreatePageIfNotExists(ctx context.Context, page *sitesearch.Page) (bool, error) {
	return s.CreatePageIfNotExistsFn(ctx, page)
}

func (s *PageService) FindPages(ctx context.Context) ([]*sitesearch.Page, error) {
	return s.FindPagesFn(ctx)
}

func (s *PageService) FindPagesByContent(ctx context.Context, substr string) ([]*sitesearch.SearchResult, error) {
	return s.FindPagesByContentFn(ctx, substr)
}

// SnapshotService is a mock implementation of sitesearch.SnapshotService.
type SnapshotService struct {
	SaveSnapshotFn func(ctx context.Context, pages []*sitesearch.Page) error
	LoadSnapshotFn func(ctx context.Context) ([]*sitesearch.Page, error)
}

func (s *SnapshotService) SaveSnapshot(ctx context.Context, pages []*sitesearch.Page) error {
	return s.SaveSnapshotFn(ctx, pages)
}

func (s *SnapshotService) LoadSnapshot(ctx context.Context) ([]*sitesearch.Page, error) {
	return s.LoadSnapshotFn(ctx)
}

// PageCache is a mock implementation of sitesearch.PageCache.
type PageCache struct {
	ReplacePagesFn func(pages []*sitesearch.Page)
}

func (c *PageCache) ReplacePages(pages []*sitesearch.Page) {
	c.ReplacePagesFn(pages)
}
