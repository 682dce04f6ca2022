package mock

import "github.com/dtomczyk/placelist"

var _ placelist.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of placelist.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
