package placelist

import "io"

// Exporter writes saved locations to an interchange format.
type Exporter interface {
	Export(w io.Writer, locations []*Location) error
}
