package placelist

import (
	"context"
	"strconv"
)

// Page represents a nearby point-of-interest result returned by the
// geosearch endpoint. Pages are display-only and never persisted.
type Page struct {
	// ID is the numeric page identifier, used for stable ordering.
	ID int64

	Title       string
	Description string

	// Thumbnail is an optional image URL for the page.
	Thumbnail string

	// Extract holds the optional intro extract in markdown, filled in
	// by enrichment. Empty until enriched.
	Extract string
}

// Key returns a stable string key for the page, suitable for dedup filters.
func (p *Page) Key() string {
	return strconv.FormatInt(p.ID, 10)
}

// GeosearchService returns pages near a coordinate pair.
// Implementations make a single remote call per invocation; the order of
// the returned pages is unspecified and callers sort by ID as needed.
type GeosearchService interface {
	NearbyPages(ctx context.Context, lat, lon float64) ([]*Page, error)
}

// ExtractService retrieves the intro extract of a page as HTML.
type ExtractService interface {
	// IntroExtract returns the intro extract HTML for the page title.
	// Returns ENOTFOUND if the page has no extract.
	IntroExtract(ctx context.Context, title string) (string, error)
}
