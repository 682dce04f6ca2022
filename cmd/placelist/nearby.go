package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/dtomczyk/placelist"
	"github.com/dtomczyk/placelist/bloom"
)

// Run executes the nearby command.
func (c *NearbyCmd) Run(deps *Dependencies) error {
	if c.All {
		return c.runAll(deps)
	}
	if c.Name == "" {
		fmt.Fprintf(deps.Stderr, "error: a location name is required unless --all is given\n")
		return placelist.Errorf(placelist.EINVALID, "location name required")
	}

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

	fmt.Fprintf(deps.Stdout, "Nearby %s (%d pages):\n\n", loc.Name, len(pages))
	printPages(deps, pages)
	return nil
}

// runAll aggregates nearby pages across every saved location. A bloom
// filter drops pages already seen near an earlier location, so places
// with overlapping search circles are listed once.
func (c *NearbyCmd) runAll(deps *Dependencies) error {
	locations, err := deps.Locations.FindLocations(deps.Ctx, placelist.LocationFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", placelist.ErrorMessage(err))
		return err
	}
	if len(locations) == 0 {
		fmt.Fprintln(deps.Stdout, "No locations found. Use 'placelist add' to save one.")
		return nil
	}

	seen := bloom.NewPageFilter(uint(len(locations)*c.Limit+1), 0.001)
	var merged []*placelist.Page

	for _, loc := range locations {
		pages, err := deps.Geo.NearbyPages(deps.Ctx, loc.Latitude, loc.Longitude)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: skipping %q: nearby fetch failed\n", loc.Name)
			continue
		}
		for _, page := range pages {
			if seen.Seen(page) {
				continue
			}
			seen.Add(page)
			merged = append(merged, page)
		}
	}

	slices.SortFunc(merged, func(a, b *placelist.Page) int {
		return cmp.Compare(a.ID, b.ID)
	})

	if c.Enrich {
		n := deps.Enricher.EnrichPages(deps.Ctx, merged)
		fmt.Fprintf(deps.Stderr, "Enriched %d of %d pages\n", n, len(merged))
	}

	fmt.Fprintf(deps.Stdout, "Nearby all %d locations (%d pages):\n\n", len(locations), len(merged))
	printPages(deps, merged)
	return nil
}

func printPages(deps *Dependencies, pages []*placelist.Page) {
	for i, page := range pages {
		description := page.Description
		if description == "" {
			description = "(no description)"
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, page.Title, description)
		if page.Extract != "" {
			fmt.Fprintf(deps.Stdout, "     %s\n", page.Extract)
		}
	}
}
