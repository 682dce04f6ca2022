package main

import (
	"fmt"

	"github.com/dtomczyk/placelist"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	loc := &placelist.Location{
		Name:        c.Name,
		Description: c.Description,
		Latitude:    c.Lat,
		Longitude:   c.Lon,
	}

	if err := deps.Locations.CreateLocation(deps.Ctx, loc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", placelist.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %q (%s)\n", loc.Name, loc.ID)
	return nil
}
