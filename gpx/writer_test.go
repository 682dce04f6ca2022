package gpx_test

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/dtomczyk/placelist"
	"github.com/dtomczyk/placelist/gpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes one waypoint per location", func(t *testing.T) {
		t.Parallel()

		locations := []*placelist.Location{
			{ID: "1", Name: "Wawel Castle", Description: "castle hill", Latitude: 50.054, Longitude: 19.935},
			{ID: "2", Name: "Morskie Oko", Latitude: 49.198, Longitude: 20.071},
		}

		var buf bytes.Buffer
		require.NoError(t, gpx.NewWriter("placelist-test").Export(&buf, locations))

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

		root := doc.SelectElement("gpx")
		require.NotNil(t, root)
		assert.Equal(t, "1.1", root.SelectAttrValue("version", ""))
		assert.Equal(t, "placelist-test", root.SelectAttrValue("creator", ""))

		wpts := root.SelectElements("wpt")
		require.Len(t, wpts, 2)

		assert.Equal(t, "50.054", wpts[0].SelectAttrValue("lat", ""))
		assert.Equal(t, "19.935", wpts[0].SelectAttrValue("lon", ""))
		assert.Equal(t, "Wawel Castle", wpts[0].SelectElement("name").Text())
		assert.Equal(t, "castle hill", wpts[0].SelectElement("desc").Text())

		assert.Equal(t, "Morskie Oko", wpts[1].SelectElement("name").Text())
		assert.Nil(t, wpts[1].SelectElement("desc"), "empty description omitted")
	})

	t.Run("empty list yields a valid empty document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, gpx.NewWriter("").Export(&buf, nil))

		doc := etree.NewDocument()
		require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

		root := doc.SelectElement("gpx")
		require.NotNil(t, root)
		assert.Equal(t, "placelist", root.SelectAttrValue("creator", ""))
		assert.Empty(t, root.SelectElements("wpt"))
	})
}
