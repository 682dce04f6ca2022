package main

import (
	"fmt"
	"os"

	"github.com/dtomczyk/placelist"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	locations, err := deps.Locations.FindLocations(deps.Ctx, placelist.LocationFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", placelist.ErrorMessage(err))
		return err
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", c.Output, err)
	}
	defer f.Close()

	if err := deps.Exporter.Export(f, locations); err != nil {
		return fmt.Errorf("failed to write GPX: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d locations to %s\n", len(locations), c.Output)
	return nil
}
