package sitesearch

// URLFrontier manages the pending-URL queue and visited set of one crawl.
type URLFrontier interface {
	// Push appends url to the tail of the queue.
	Push(url string)

	// Pop removes and returns the URL at the head of the queue.
	// Returns false if the queue is empty.
	Pop() (string, bool)

	// Len returns the number of queued URLs.
	Len() int

	// MarkVisited records that url was fetched successfully.
	MarkVisited(url string)

	// Visited returns true if url was marked visited.
	Visited(url string) bool
}
