// Package bloom provides a probabilistic URL set for crawling.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter answers "definitely not seen" in constant memory.
// A positive answer may be a false positive and must be confirmed
// against an exact set by the caller.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add records url.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// MayContain returns false if url was never added.
func (f *Filter) MayContain(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of distinct URLs added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
