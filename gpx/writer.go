// Package gpx exports saved locations as GPX 1.1 waypoint documents.
package gpx

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/dtomczyk/placelist"
)

// Namespace is the GPX 1.1 XML namespace.
const Namespace = "http://www.topografix.com/GPX/1/1"

// Ensure Writer implements placelist.Exporter at compile time.
var _ placelist.Exporter = (*Writer)(nil)

// Writer writes locations as GPX waypoints.
type Writer struct {
	creator string
}

// NewWriter creates a new Writer. The creator string goes into the gpx
// element's creator attribute.
func NewWriter(creator string) *Writer {
	if creator == "" {
		creator = "placelist"
	}
	return &Writer{creator: creator}
}

// Export writes locations to w as an indented GPX 1.1 document. Each
// location becomes one wpt element with lat/lon attributes, its name,
// and, when present, its description.
func (wr *Writer) Export(w io.Writer, locations []*placelist.Location) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	gpx := doc.CreateElement("gpx")
	gpx.CreateAttr("version", "1.1")
	gpx.CreateAttr("creator", wr.creator)
	gpx.CreateAttr("xmlns", Namespace)

	for _, loc := range locations {
		wpt := gpx.CreateElement("wpt")
		wpt.CreateAttr("lat", formatCoord(loc.Latitude))
		wpt.CreateAttr("lon", formatCoord(loc.Longitude))
		wpt.CreateElement("name").SetText(loc.Name)
		if loc.Description != "" {
			wpt.CreateElement("desc").SetText(loc.Description)
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
