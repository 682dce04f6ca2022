// Package goquery provides CSS-selector based cleanup of MediaWiki
// intro-extract HTML fragments.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtomczyk/placelist"
)

// Selectors removed from extracts: citation markers, edit links,
// coordinate spans, infoboxes, and embedded styling.
const junkSelector = "sup.reference, sup.noprint, .mw-editsection, .geo-inline-hidden, #coordinates, table, style, script"

// Ensure IntroExtractor implements placelist.Extractor at compile time.
var _ placelist.Extractor = (*IntroExtractor)(nil)

// IntroExtractor cleans intro-extract HTML for conversion to markdown.
type IntroExtractor struct{}

// NewIntroExtractor creates a new IntroExtractor.
func NewIntroExtractor() *IntroExtractor {
	return &IntroExtractor{}
}

// Extract removes non-prose markup from the fragment and returns the
// remaining HTML. Returns EINVALID if the fragment cannot be parsed or
// nothing readable remains.
func (e *IntroExtractor) Extract(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", placelist.Errorf(placelist.EINVALID, "empty extract HTML")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", placelist.Errorf(placelist.EINVALID, "failed to parse extract HTML: %v", err)
	}

	doc.Find(junkSelector).Remove()

	body := doc.Find("body")
	if strings.TrimSpace(body.Text()) == "" {
		return "", placelist.Errorf(placelist.EINVALID, "extract contains no readable text")
	}

	cleaned, err := body.Html()
	if err != nil {
		return "", err
	}
	return cleaned, nil
}
