package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/mock"
	"github.com/fwojciec/sitesearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Search(t *testing.T) {
	t.Parallel()

	t.Run("returns empty results for blank keyword without querying", func(t *testing.T) {
		t.Parallel()

		finder := &mock.PageFinder{
			FindPagesByContentFn: func(ctx context.Context, substr string) ([]*sitesearch.SearchResult, error) {
				t.Fatal("page finder should not be called")
				return nil, nil
			},
		}
		engine := search.NewEngine(finder)

		for _, kw := range []string{"", "   ", "\t\n"} {
			results, err := engine.Search(context.Background(), kw)
			require.NoError(t, err)
			assert.NotNil(t, results)
			assert.Empty(t, results)
		}
	})

	t.Run("folds and trims keyword before querying", func(t *testing.T) {
		t.Parallel()

		var got string
		finder := &mock.PageFinder{
			FindPagesByContentFn: func(ctx context.Context, substr string) ([]*sitesearch.SearchResult, error) {
				got = substr
				return []*sitesearch.SearchResult{{Title: "Go", URL: "http://x/"}}, nil
			},
		}
		engine := search.NewEngine(finder)

		results, err := engine.Search(context.Background(), "  GoLang ")
		require.NoError(t, err)
		assert.Equal(t, "golang", got)
		assert.Equal(t, []*sitesearch.SearchResult{{Title: "Go", URL: "http://x/"}}, results)
	})

	t.Run("returns empty slice when finder returns nil", func(t *testing.T) {
		t.Parallel()

		finder := &mock.PageFinder{
			FindPagesByContentFn: func(ctx context.Context, substr string) ([]*sitesearch.SearchResult, error) {
				return nil, nil
			},
		}

		results, err := search.NewEngine(finder).Search(context.Background(), "x")
		require.NoError(t, err)
		assert.NotNil(t, results)
	})

	t.Run("propagates finder errors", func(t *testing.T) {
		t.Parallel()

		finder := &mock.PageFinder{
			FindPagesByContentFn: func(ctx context.Context, substr string) ([]*sitesearch.SearchResult, error) {
				return nil, errors.New("db closed")
			},
		}

		_, err := search.NewEngine(finder).Search(context.Background(), "x")
		require.EqualError(t, err, "db closed")
	})

	t.Run("matches regardless of keyword case", func(t *testing.T) {
		t.Parallel()

		idx := search.NewIndex([]*sitesearch.Page{
			sitesearch.NewPage("http://x/", "Home", "Welcome to GOLANG land"),
		})
		engine := search.NewEngine(idx)

		for _, kw := range []string{"golang", "GOLANG", "GoLang"} {
			results, err := engine.Search(context.Background(), kw)
			require.NoError(t, err)
			assert.Len(t, results, 1, "keyword %q", kw)
		}
	})
}
