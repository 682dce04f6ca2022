package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/dtomczyk/placelist"
	"github.com/dtomczyk/placelist/enrich"
	"github.com/dtomczyk/placelist/gemini"
	"github.com/dtomczyk/placelist/goquery"
	"github.com/dtomczyk/placelist/gpx"
	"github.com/dtomczyk/placelist/htmltomarkdown"
	placelistslog "github.com/dtomczyk/placelist/slog"
	"github.com/dtomczyk/placelist/sqlite"
	"github.com/dtomczyk/placelist/wikipedia"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// Missing .env is fine; variables may be set directly.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Location repository, exposed for end-to-end testing.
	Locations placelist.LocationService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("placelist"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'placelist --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Global flags may precede the subcommand, so the command name comes
	// from the parsed context, not the raw arguments.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PLACELIST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Locations = sqlite.NewLocationService(m.DB)
	deps.DB = m.DB
	deps.Locations = m.Locations
	deps.Exporter = gpx.NewWriter("placelist")

	// The nearby command carries the query knobs; every other command
	// uses the geosearch defaults.
	geoOpts := []wikipedia.Option{}
	if cmd == "nearby" {
		geoOpts = append(geoOpts,
			wikipedia.WithRadius(cli.Nearby.Radius),
			wikipedia.WithLimit(cli.Nearby.Limit),
		)
	}

	var geo placelist.GeosearchService = wikipedia.NewClient(geoOpts...)
	var extracts placelist.ExtractService = wikipedia.NewExtractClient()
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		geo = placelistslog.NewLoggingGeosearchService(geo, logger)
		extracts = placelistslog.NewLoggingExtractService(extracts, logger)
	}
	deps.Geo = geo
	deps.Enricher = &enrich.Enricher{
		Extracts:  extracts,
		Extractor: goquery.NewIntroExtractor(),
		Converter: htmltomarkdown.NewConverter(),
	}

	if cmd == "describe" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Summarizer = gemini.NewSummarizer(client)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PLACELIST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "placelist.db"
	}
	dir := filepath.Join(home, ".placelist")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "placelist.db")
}
