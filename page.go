package sitesearch

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Page represents a crawled page.
// The JSON field names define the snapshot file format.
type Page struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"` // Lowercased visible text
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if strings.TrimSpace(p.URL) == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// NewPage builds a page from extracted values.
// The title falls back to the URL and the content is case-folded.
func NewPage(url, title, text string) *Page {
	if strings.TrimSpace(title) == "" {
		title = url
	}
	return &Page{
		URL:     url,
		Title:   title,
		Content: Fold(text),
	}
}

// Fold lowercases s for storage and matching.
// Page content and search keywords must go through the same function.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// PageService represents the durable page table.
// Rows accumulate across crawls and are unique by URL.
type PageService interface {
	// CreatePageIfNotExists inserts the page unless a row with the same URL
	// already exists, in which case the call is a no-op.
	// Returns true if a new row was inserted.
	CreatePageIfNotExists(ctx context.Context, page *Page) (bool, error)

	// FindPages returns every stored page in insertion order.
	FindPages(ctx context.Context) ([]*Page, error)

	PageFinder
}

// SnapshotService persists the result set of the most recent crawl.
// Each save fully replaces the previous snapshot.
type SnapshotService interface {
	// SaveSnapshot overwrites the snapshot with pages.
	SaveSnapshot(ctx context.Context, pages []*Page) error

	// LoadSnapshot returns the pages of the last saved snapshot.
	// Returns an empty list if no snapshot has been saved yet.
	LoadSnapshot(ctx context.Context) ([]*Page, error)
}

// PageCache holds an in-memory copy of the latest crawl's pages.
type PageCache interface {
	// ReplacePages discards the cached pages and stores pages instead.
	ReplacePages(pages []*Page)
}
