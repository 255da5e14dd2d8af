// Package crawl provides single-site crawling orchestration.
// It drives a breadth-first traversal from a seed URL, fetching and
// extracting each page, and persists the resulting page set.
package crawl

import (
	"context"
	"net/url"
	"slices"
	"strings"

	"github.com/fwojciec/sitesearch"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of discovered URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate of the discovered-URL filter.
	frontierFalsePositiveRate = 0.01
)

// Crawler performs breadth-first crawls restricted to the seed's host.
// A Crawler holds no per-crawl state and may run several crawls at once.
type Crawler struct {
	Fetcher   sitesearch.Fetcher
	Extractor sitesearch.Extractor

	// Concurrency bounds how many queued URLs are fetched at once.
	// Values below 2 fetch one URL at a time. Results are always applied
	// in queue order, so the returned pages do not depend on it.
	Concurrency int
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	RunID     string
	URL       string
	Completed int
	Total     int
	Error     error

	// Discovered is the approximate number of distinct URLs queued during
	// the crawl. Set on ProgressFinished only.
	Discovered int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressFetched
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// crawlResult holds the outcome of processing a single URL.
type crawlResult struct {
	url   string
	title string
	text  string
	links []string
	err   error
}

// Crawl traverses the link graph breadth-first from seedURL and returns at
// most maxPages pages in discovery order. Only links whose host equals the
// seed's host are followed.
//
// A URL is marked visited only after a successful fetch. A URL that fails
// is skipped and may be attempted again if another page links to it.
// Fetch failures never fail the crawl; a seed that cannot be fetched
// yields an empty list. An empty seed or maxPages below 1 is rejected
// with EINVALID before anything is fetched.
//
// Crawl does not persist anything. If ctx is canceled the pages gathered
// so far are returned along with the context error.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, maxPages int, progress ProgressFunc) ([]*sitesearch.Page, error) {
	seedURL = strings.TrimSpace(seedURL)
	if seedURL == "" {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "seed URL required")
	}
	if maxPages < 1 {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "max pages must be at least 1, got %d", maxPages)
	}

	// A seed that does not parse has no host; its fetch fails and the
	// crawl ends with no pages.
	var seedHost string
	if u, err := url.Parse(seedURL); err == nil {
		seedHost = u.Host
	}

	runID := uuid.NewString()
	notify := func(event ProgressEvent) {
		if progress != nil {
			event.RunID = runID
			event.Total = maxPages
			progress(event)
		}
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(seedURL)

	notify(ProgressEvent{Type: ProgressStarted, URL: seedURL})

	pages := make([]*sitesearch.Page, 0, min(maxPages, 64))
	for len(pages) < maxPages {
		if err := ctx.Err(); err != nil {
			return pages, err
		}

		batch := nextBatch(frontier, min(c.concurrency(), maxPages-len(pages)))
		if len(batch) == 0 {
			break
		}

		results := c.processBatch(ctx, batch)
		for i, u := range batch {
			// An earlier copy of u in this batch succeeded.
			if frontier.Visited(u) {
				continue
			}
			result := results[i]
			if result.url == "" {
				// An earlier copy of u in this batch failed; try again
				// as a one-at-a-time crawl would.
				result = c.processURL(ctx, u)
			}
			if result.err != nil {
				notify(ProgressEvent{
					Type:      ProgressFailed,
					URL:       result.url,
					Completed: len(pages),
					Error:     result.err,
				})
				continue
			}

			frontier.MarkVisited(result.url)
			pages = append(pages, sitesearch.NewPage(result.url, result.title, result.text))

			for _, link := range result.links {
				if inScope(link, seedHost) {
					frontier.Push(link)
				}
			}

			notify(ProgressEvent{
				Type:      ProgressFetched,
				URL:       result.url,
				Completed: len(pages),
			})
		}
	}

	notify(ProgressEvent{
		Type:       ProgressFinished,
		Completed:  len(pages),
		Discovered: frontier.Discovered(),
	})

	return pages, nil
}

func (c *Crawler) concurrency() int {
	if c.Concurrency < 1 {
		return 1
	}
	return c.Concurrency
}

// nextBatch pops up to n unvisited URLs from the head of the frontier.
// Visited URLs are discarded. Repeated URLs are kept.
func nextBatch(frontier *Frontier, n int) []string {
	batch := make([]string, 0, n)
	for len(batch) < n {
		u, ok := frontier.Pop()
		if !ok {
			break
		}
		if frontier.Visited(u) {
			continue
		}
		batch = append(batch, u)
	}
	return batch
}

// processBatch fetches the first copy of every URL of batch and returns
// results in batch order. Later copies of a URL get a zero result.
func (c *Crawler) processBatch(ctx context.Context, batch []string) []crawlResult {
	results := make([]crawlResult, len(batch))
	if len(batch) == 1 {
		results[0] = c.processURL(ctx, batch[0])
		return results
	}

	var g errgroup.Group
	g.SetLimit(c.concurrency())
	for i, u := range batch {
		if slices.Index(batch, u) != i {
			continue
		}
		g.Go(func() error {
			results[i] = c.processURL(ctx, u)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// processURL fetches and extracts a single URL.
// Extraction failures degrade to a page titled by its URL with no text or links.
func (c *Crawler) processURL(ctx context.Context, u string) crawlResult {
	result := crawlResult{url: u}

	html, err := c.Fetcher.Fetch(ctx, u)
	if err != nil {
		result.err = err
		return result
	}

	extracted, err := c.Extractor.Extract(html, u)
	if err != nil {
		result.title = u
		return result
	}

	result.title = extracted.Title
	result.text = extracted.Text
	result.links = extracted.Links
	return result
}

// inScope reports whether link has exactly the seed's host.
// Scheme and path are not considered.
func inScope(link, seedHost string) bool {
	if seedHost == "" {
		return false
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return u.Host == seedHost
}
