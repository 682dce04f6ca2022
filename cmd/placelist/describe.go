package main

import (
	"fmt"

	"github.com/dtomczyk/placelist"
)

// Run executes the describe command.
func (c *DescribeCmd) Run(deps *Dependencies) error {
	loc, err := findLocationByName(deps, c.Name)
	if err != nil {
		return err
	}

	session := placelist.NewEditSession(*loc, deps.Geo)
	session.FetchNearbyPages(deps.Ctx)
	if session.State() != placelist.LoadStateLoaded {
		fmt.Fprintf(deps.Stderr, "error: failed to load nearby places. Please try again later.\n")
		return placelist.Errorf(placelist.EUNAVAILABLE, "nearby fetch failed for %q", loc.Name)
	}

	pages := session.Pages()
	if c.Enrich {
		n := deps.Enricher.EnrichPages(deps.Ctx, pages)
		fmt.Fprintf(deps.Stderr, "Enriched %d of %d pages\n", n, len(pages))
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, loc, pages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", placelist.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
