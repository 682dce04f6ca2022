package mock

import (
	"io"

	"github.com/dtomczyk/placelist"
)

var _ placelist.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of placelist.Exporter.
type Exporter struct {
	ExportFn func(w io.Writer, locations []*placelist.Location) error
}

func (e *Exporter) Export(w io.Writer, locations []*placelist.Location) error {
	return e.ExportFn(w, locations)
}
