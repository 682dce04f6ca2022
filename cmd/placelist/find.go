package main

import (
	"fmt"

	"github.com/dtomczyk/placelist"
)

// findLocationByName resolves a location by its display name, writing a
// hint to stderr when it does not exist.
func findLocationByName(deps *Dependencies, name string) (*placelist.Location, error) {
	locations, err := deps.Locations.FindLocations(deps.Ctx, placelist.LocationFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", placelist.ErrorMessage(err))
		return nil, err
	}

	if len(locations) == 0 {
		fmt.Fprintf(deps.Stderr, "error: location %q not found. Use 'placelist list' to see saved locations.\n", name)
		return nil, placelist.Errorf(placelist.ENOTFOUND, "location %q not found", name)
	}

	return locations[0], nil
}
