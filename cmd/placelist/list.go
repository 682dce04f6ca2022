package main

import (
	"fmt"

	"github.com/dtomczyk/placelist"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	locations, err := deps.Locations.FindLocations(deps.Ctx, placelist.LocationFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", placelist.ErrorMessage(err))
		return err
	}

	if len(locations) == 0 {
		fmt.Fprintln(deps.Stdout, "No locations found. Use 'placelist add' to save one.")
		return nil
	}

	for _, loc := range locations {
		fmt.Fprintf(deps.Stdout, "%s  %s  (%.4f, %.4f)\n", loc.ID, loc.Name, loc.Latitude, loc.Longitude)
	}

	return nil
}
