package sqlite_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageService_CreatePageIfNotExists(t *testing.T) {
	t.Parallel()

	t.Run("inserts a new page", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewPageService(db)
		ctx := context.Background()

		inserted, err := svc.CreatePageIfNotExists(ctx, &sitesearch.Page{
			URL:     "http://x/",
			Title:   "Home",
			Content: "welcome to x",
		})
		require.NoError(t, err)
		assert.True(t, inserted)

		var hash, createdAt string
		err = db.QueryRowContext(ctx, "SELECT content_hash, created_at FROM pages WHERE url = ?", "http://x/").
			Scan(&hash, &createdAt)
		require.NoError(t, err)
		assert.Len(t, hash, 16)
		assert.NotEmpty(t, createdAt)
	})

	t.Run("ignores a page whose URL is already stored", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		ctx := context.Background()

		_, err := svc.CreatePageIfNotExists(ctx, &sitesearch.Page{URL: "http://x/", Title: "Old", Content: "old"})
		require.NoError(t, err)

		inserted, err := svc.CreatePageIfNotExists(ctx, &sitesearch.Page{URL: "http://x/", Title: "New", Content: "new"})
		require.NoError(t, err)
		assert.False(t, inserted)

		pages, err := svc.FindPages(ctx)
		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "Old", pages[0].Title)
		assert.Equal(t, "old", pages[0].Content)
	})

	t.Run("returns error for missing URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))

		_, err := svc.CreatePageIfNotExists(context.Background(), &sitesearch.Page{Title: "No URL"})
		require.Error(t, err)
		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})

	t.Run("returns error for cancelled context", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.CreatePageIfNotExists(ctx, &sitesearch.Page{URL: "http://x/"})
		require.Error(t, err)
	})

	t.Run("re-inserting a crawl leaves the table unchanged", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		ctx := context.Background()
		crawl := []*sitesearch.Page{
			{URL: "http://x/", Title: "Home", Content: "home"},
			{URL: "http://x/a", Title: "A", Content: "alpha"},
			{URL: "http://x/b", Title: "B", Content: "beta"},
		}

		for _, p := range crawl {
			inserted, err := svc.CreatePageIfNotExists(ctx, p)
			require.NoError(t, err)
			assert.True(t, inserted)
		}
		before, err := svc.FindPages(ctx)
		require.NoError(t, err)

		for _, p := range crawl {
			inserted, err := svc.CreatePageIfNotExists(ctx, p)
			require.NoError(t, err)
			assert.False(t, inserted)
		}
		after, err := svc.FindPages(ctx)
		require.NoError(t, err)

		assert.Equal(t, before, after)
	})
}

func TestPageService_FindPages(t *testing.T) {
	t.Parallel()

	t.Run("returns empty slice for empty table", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))

		pages, err := svc.FindPages(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, pages)
		assert.Empty(t, pages)
	})

	t.Run("returns pages in insertion order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		ctx := context.Background()

		urls := []string{"http://x/z", "http://x/a", "http://x/m"}
		for _, u := range urls {
			_, err := svc.CreatePageIfNotExists(ctx, &sitesearch.Page{URL: u, Title: u})
			require.NoError(t, err)
		}

		pages, err := svc.FindPages(ctx)
		require.NoError(t, err)
		require.Len(t, pages, 3)
		for i, u := range urls {
			assert.Equal(t, u, pages[i].URL)
		}
	})
}

func TestPageService_FindPagesByContent(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.PageService, pages ...*sitesearch.Page) {
		t.Helper()
		for _, p := range pages {
			_, err := svc.CreatePageIfNotExists(context.Background(), p)
			require.NoError(t, err)
		}
	}

	t.Run("matches substrings in storage order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		seed(t, svc,
			&sitesearch.Page{URL: "http://x/1", Title: "One", Content: "the golang gopher"},
			&sitesearch.Page{URL: "http://x/2", Title: "Two", Content: "nothing here"},
			&sitesearch.Page{URL: "http://x/3", Title: "Three", Content: "golang again"},
		)

		results, err := svc.FindPagesByContent(context.Background(), "golang")
		require.NoError(t, err)
		assert.Equal(t, []*sitesearch.SearchResult{
			{Title: "One", URL: "http://x/1"},
			{Title: "Three", URL: "http://x/3"},
		}, results)
	})

	t.Run("matches inside words", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		seed(t, svc, &sitesearch.Page{URL: "http://x/", Title: "X", Content: "unbelievable"})

		results, err := svc.FindPagesByContent(context.Background(), "liev")
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		seed(t, svc, &sitesearch.Page{URL: "http://x/", Title: "X", Content: "content"})

		results, err := svc.FindPagesByContent(context.Background(), "missing")
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("does not fold the substring", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		seed(t, svc, &sitesearch.Page{URL: "http://x/", Title: "X", Content: "golang"})

		results, err := svc.FindPagesByContent(context.Background(), "GoLang")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("treats LIKE wildcards literally", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		seed(t, svc,
			&sitesearch.Page{URL: "http://x/1", Title: "1", Content: "100% sure"},
			&sitesearch.Page{URL: "http://x/2", Title: "2", Content: "100 percent"},
		)

		results, err := svc.FindPagesByContent(context.Background(), "0%")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "http://x/1", results[0].URL)
	})

	t.Run("returns a page iff its content contains the substring", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		contents := []string{"alpha beta", "beta gamma", "gamma delta", "", "épée beta"}
		for i, c := range contents {
			seed(t, svc, &sitesearch.Page{URL: fmt.Sprintf("http://x/%d", i), Title: "p", Content: c})
		}

		for _, q := range []string{"beta", "gamma", "a d", "épée", "zzz", "a"} {
			results, err := svc.FindPagesByContent(context.Background(), q)
			require.NoError(t, err)

			var want []string
			for i, c := range contents {
				if strings.Contains(c, q) {
					want = append(want, fmt.Sprintf("http://x/%d", i))
				}
			}
			var got []string
			for _, r := range results {
				got = append(got, r.URL)
			}
			assert.Equal(t, want, got, "query %q", q)
		}
	})
}
