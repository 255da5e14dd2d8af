package main

import (
	"fmt"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/search"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	var finder sitesearch.PageFinder = deps.Pages
	if c.Source == "snapshot" {
		pages, err := deps.Snapshots.LoadSnapshot(deps.Ctx)
		if err != nil {
			return err
		}
		deps.Index.ReplacePages(pages)
		finder = deps.Index
	}

	results, err := search.NewEngine(finder).Search(deps.Ctx, c.Keyword)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", r.Title, r.URL)
	}
	return nil
}
