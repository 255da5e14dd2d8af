package main

import (
	"fmt"

	"github.com/fwojciec/sitesearch/crawl"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.FindPages(deps.Ctx)
	if err != nil {
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages stored. Use 'sitesearch crawl' to add some.")
		return nil
	}

	for _, p := range pages {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", p.URL, p.Title, crawl.FormatBytes(len(p.Content)))
	}
	return nil
}
