package main

import (
	"context"
	"io"

	"github.com/dtomczyk/placelist"
	"github.com/dtomczyk/placelist/enrich"
	"github.com/dtomczyk/placelist/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Locations  placelist.LocationService
	Geo        placelist.GeosearchService
	Enricher   *enrich.Enricher
	Exporter   placelist.Exporter
	Summarizer placelist.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log remote calls to stderr"`

	Add      AddCmd      `cmd:"" help:"Save a new location"`
	List     ListCmd     `cmd:"" help:"List saved locations"`
	Show     ShowCmd     `cmd:"" help:"Show a saved location"`
	Edit     EditCmd     `cmd:"" help:"Edit a location's name or description"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a location"`
	Nearby   NearbyCmd   `cmd:"" help:"List Wikipedia pages near a location"`
	Export   ExportCmd   `cmd:"" help:"Export locations as a GPX file"`
	Describe DescribeCmd `cmd:"" help:"Summarize what is notable near a location"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name        string  `arg:"" help:"Location name"`
	Lat         float64 `required:"" help:"Latitude in decimal degrees"`
	Lon         float64 `required:"" help:"Longitude in decimal degrees"`
	Description string  `short:"d" help:"Free-text description"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Location name"`
}

// EditCmd is the "edit" subcommand.
type EditCmd struct {
	Name        string  `arg:"" help:"Location name"`
	NewName     *string `name:"new-name" help:"Replacement name"`
	Description *string `short:"d" help:"Replacement description"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Location name"`
	Force bool   `help:"Confirm deletion"`
}

// NearbyCmd is the "nearby" subcommand.
type NearbyCmd struct {
	Name   string `arg:"" optional:"" help:"Location name (omit with --all)"`
	All    bool   `help:"Aggregate nearby pages across every saved location"`
	Enrich bool   `short:"e" help:"Fetch intro extracts for the listed pages"`
	Radius int    `default:"10000" help:"Search radius in meters"`
	Limit  int    `default:"50" help:"Maximum results per location"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output string `arg:"" help:"Output GPX file path"`
}

// DescribeCmd is the "describe" subcommand.
type DescribeCmd struct {
	Name   string `arg:"" help:"Location name"`
	Enrich bool   `short:"e" help:"Fetch intro extracts before summarizing"`
}
