package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.PageService = (*PageService)(nil)

// PageService implements sitesearch.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent returns the hex encoded xxHash of content.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreatePageIfNotExists inserts page unless its URL is already stored.
// An existing row is left untouched, even if its title or content differ.
func (s *PageService) CreatePageIfNotExists(ctx context.Context, page *sitesearch.Page) (bool, error) {
	if err := page.Validate(); err != nil {
		return false, err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO pages (title, url, content, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, page.Title, page.URL, page.Content, hashContent(page.Content),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// FindPages returns every stored page in insertion order.
func (s *PageService) FindPages(ctx context.Context) ([]*sitesearch.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, content
		FROM pages
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*sitesearch.Page{}
	for rows.Next() {
		var p sitesearch.Page
		if err := rows.Scan(&p.URL, &p.Title, &p.Content); err != nil {
			return nil, err
		}
		pages = append(pages, &p)
	}
	return pages, rows.Err()
}

// FindPagesByContent returns the title and URL of every page whose content
// contains substr, in insertion order. The match is exact; substr is not
// folded here.
func (s *PageService) FindPagesByContent(ctx context.Context, substr string) ([]*sitesearch.SearchResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, url
		FROM pages
		WHERE instr(content, ?) > 0
		ORDER BY id ASC
	`, substr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*sitesearch.SearchResult{}
	for rows.Next() {
		var r sitesearch.SearchResult
		if err := rows.Scan(&r.Title, &r.URL); err != nil {
			return nil, err
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}
