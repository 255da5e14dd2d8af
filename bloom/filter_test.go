package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/sitesearch/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_MayContain(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.MayContain("http://ex.com/about"))

	f.Add("http://ex.com/about")

	assert.True(t, f.MayContain("http://ex.com/about"))
	assert.False(t, f.MayContain("http://ex.com/contact"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("http://ex.com/a")
	f.Add("http://ex.com/b")
	f.Add("http://ex.com/c")
	f.Add("http://ex.com/a")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_no_false_negatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(500, 0.01)
	for i := 0; i < 500; i++ {
		f.Add(fmt.Sprintf("http://ex.com/page%d", i))
	}

	for i := 0; i < 500; i++ {
		url := fmt.Sprintf("http://ex.com/page%d", i)
		assert.True(t, f.MayContain(url), "added URL %s must be reported", url)
	}
}
