package placelist

import "context"

// Summarizer produces a short travel summary for a location from its
// nearby pages.
type Summarizer interface {
	// Summarize describes what is notable near the location.
	// Returns ENOTFOUND if no pages are provided.
	Summarize(ctx context.Context, loc *Location, pages []*Page) (string, error)
}
