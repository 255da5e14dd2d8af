package crawl

import (
	"sync"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/bloom"
)

// Compile-time interface verification.
var _ sitesearch.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO queue of pending URLs plus the set of
// URLs already fetched successfully. The queue itself does not deduplicate;
// callers check Visited when a URL is popped. Pushed URLs are also counted
// approximately, see Discovered.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu      sync.Mutex
	queue   []string
	head    int
	visited map[string]struct{}
	filter  *bloom.Filter
}

// NewFrontier creates a new Frontier whose discovered-URL filter is sized
// for n expected URLs with the given false positive rate.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		visited: make(map[string]struct{}),
		filter:  bloom.NewFilter(n, fpRate),
	}
}

// Push appends url to the tail of the queue.
func (f *Frontier) Push(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, url)
	f.filter.Add(url)
}

// Pop removes and returns the URL at the head of the queue.
// The bool result is false if the queue is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.head == len(f.queue) {
		return "", false
	}
	url := f.queue[f.head]
	f.queue[f.head] = ""
	f.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head > 1024 && f.head*2 > len(f.queue) {
		f.queue = append([]string(nil), f.queue[f.head:]...)
		f.head = 0
	}
	return url, true
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue) - f.head
}

// MarkVisited records that url was fetched successfully.
func (f *Frontier) MarkVisited(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visited[url] = struct{}{}
}

// Visited returns true if url was marked visited.
func (f *Frontier) Visited(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.visited[url]
	return ok
}

// Discovered returns the approximate number of distinct URLs ever pushed.
// The count comes from a Bloom filter, so the frontier does not keep an
// exact set of every discovered URL.
func (f *Frontier) Discovered() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int(f.filter.EstimatedCount())
}
