package mock

import (
	"context"

	"github.com/dtomczyk/placelist"
)

var _ placelist.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of placelist.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, loc *placelist.Location, pages []*placelist.Page) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, loc *placelist.Location, pages []*placelist.Page) (string, error) {
	return s.SummarizeFn(ctx, loc, pages)
}
