// Package fs provides file-based storage for the crawl snapshot.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.SnapshotService = (*SnapshotStore)(nil)

// SnapshotStore keeps the pages of the latest crawl in a single JSON file.
// Every save replaces the whole file.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore creates a SnapshotStore backed by the file at path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Path returns the snapshot file path.
func (s *SnapshotStore) Path() string {
	return s.path
}

// SaveSnapshot writes pages to a temporary file next to the snapshot and
// renames it over the snapshot, so readers never see a partial file.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, pages []*sitesearch.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if pages == nil {
		pages = []*sitesearch.Page{}
	}

	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// LoadSnapshot reads the pages of the last saved snapshot.
// A missing file yields an empty list. Entries without a title get their
// URL as title, and content is folded again in case the file was edited.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context) ([]*sitesearch.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []*sitesearch.Page{}, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []sitesearch.Page
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "malformed snapshot %s: %v", s.path, err)
	}

	pages := make([]*sitesearch.Page, 0, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, sitesearch.Errorf(sitesearch.EINVALID, "snapshot entry %d: url required", i)
		}
		pages = append(pages, sitesearch.NewPage(e.URL, e.Title, e.Content))
	}
	return pages, nil
}
