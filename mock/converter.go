package mock

import "github.com/dtomczyk/placelist"

var _ placelist.Converter = (*Converter)(nil)

// Converter is a mock implementation of placelist.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
