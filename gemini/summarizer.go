// Package gemini implements summaries of saved locations using Google
// Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtomczyk/placelist"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Summarizer implements placelist.Summarizer at compile time.
var _ placelist.Summarizer = (*Summarizer)(nil)

// Summarizer implements placelist.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize describes what is notable near the location based on its
// nearby pages.
func (s *Summarizer) Summarize(ctx context.Context, loc *placelist.Location, pages []*placelist.Page) (string, error) {
	if loc == nil || loc.Name == "" {
		return "", placelist.Errorf(placelist.EINVALID, "location name required")
	}
	if len(pages) == 0 {
		return "", placelist.Errorf(placelist.ENOTFOUND, "no nearby pages for %q", loc.Name)
	}

	prompt := BuildUserPrompt(loc, pages)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", placelist.Errorf(placelist.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a travel assistant. Describe, in a few short paragraphs, what is notable near the given place. Base the summary only on the pages provided. If the pages say little, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the place and its
// nearby pages.
func BuildUserPrompt(loc *placelist.Location, pages []*placelist.Page) string {
	var sb strings.Builder
	sb.WriteString("<place>\n")
	fmt.Fprintf(&sb, "<name>%s</name>\n", loc.Name)
	fmt.Fprintf(&sb, "<coordinates>%f,%f</coordinates>\n", loc.Latitude, loc.Longitude)
	if loc.Description != "" {
		fmt.Fprintf(&sb, "<notes>%s</notes>\n", loc.Description)
	}
	sb.WriteString("</place>\n\n<pages>\n")
	for i, page := range pages {
		sb.WriteString("<page>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", page.Title)
		if page.Description != "" {
			fmt.Fprintf(&sb, "<description>%s</description>\n", page.Description)
		}
		if page.Extract != "" {
			fmt.Fprintf(&sb, "<extract>%s</extract>\n", page.Extract)
		}
		sb.WriteString("</page>\n")
	}
	sb.WriteString("</pages>\n\nDescribe what is worth seeing near this place.")
	return sb.String()
}
