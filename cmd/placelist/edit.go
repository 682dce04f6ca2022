package main

import (
	"fmt"

	"github.com/dtomczyk/placelist"
)

// Run executes the edit command. Edits go through an edit session: the
// draft is committed into a new record with a fresh ID, and the stored
// record is replaced, so the original identity is never overwritten in
// place.
func (c *EditCmd) Run(deps *Dependencies) error {
	loc, err := findLocationByName(deps, c.Name)
	if err != nil {
		return err
	}

	session := placelist.NewEditSession(*loc, deps.Geo)
	if c.NewName != nil {
		session.SetName(*c.NewName)
	}
	if c.Description != nil {
		session.SetDescription(*c.Description)
	}

	if !session.Dirty() {
		fmt.Fprintln(deps.Stdout, "No changes.")
		return nil
	}

	committed := session.Commit()
	replaced, err := deps.Locations.ReplaceLocation(deps.Ctx, loc.ID, &committed)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", placelist.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated %q (%s -> %s)\n", replaced.Name, loc.ID, replaced.ID)
	return nil
}
