package placelist

// Extractor cleans an intro-extract HTML fragment for display, removing
// citation markers, tables, and other non-prose markup.
type Extractor interface {
	Extract(html string) (cleaned string, err error)
}
