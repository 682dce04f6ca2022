package main

import (
	"fmt"

	"github.com/dtomczyk/placelist"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return placelist.Errorf(placelist.EINVALID, "use --force to confirm deletion")
	}

	loc, err := findLocationByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Locations.DeleteLocation(deps.Ctx, loc.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", placelist.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %q\n", loc.Name)
	return nil
}
