package main

import "fmt"

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	loc, err := findLocationByName(deps, c.Name)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", loc.Name)
	fmt.Fprintf(deps.Stdout, "  id:          %s\n", loc.ID)
	fmt.Fprintf(deps.Stdout, "  coordinates: %.4f, %.4f\n", loc.Latitude, loc.Longitude)
	if loc.Description != "" {
		fmt.Fprintf(deps.Stdout, "  description: %s\n", loc.Description)
	}
	fmt.Fprintf(deps.Stdout, "  saved:       %s\n", loc.CreatedAt.Format("2006-01-02"))

	return nil
}
