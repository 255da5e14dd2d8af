package main

import (
	"fmt"

	"github.com/fwojciec/sitesearch/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	maxPages := deps.Config.MaxPages
	if c.MaxPages != nil {
		maxPages = *c.MaxPages
	}
	if c.Concurrency > 0 {
		deps.Crawler.Concurrency = c.Concurrency
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Crawling %s (up to %d pages)\n", event.URL, event.Total)
		case crawl.ProgressFetched:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case crawl.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "  discovered about %d URLs\n", event.Discovered)
		}
	}

	pages, err := deps.Crawler.Crawl(deps.Ctx, c.URL, maxPages, progress)
	if err != nil {
		return err
	}

	result, err := deps.Persister.Persist(deps.Ctx, pages)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, crawl.FormatSummary(len(pages), result))
	return nil
}
