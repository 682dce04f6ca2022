package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/dtomczyk/placelist"
	main "github.com/dtomczyk/placelist/cmd/placelist"
	"github.com/dtomczyk/placelist/enrich"
	"github.com/dtomczyk/placelist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbyCmd_Run(t *testing.T) {
	t.Parallel()

	wawel := &placelist.Location{ID: "loc-1", Name: "Wawel", Latitude: 50.054, Longitude: 19.935}

	t.Run("lists pages sorted by page ID", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Locations: &mock.LocationService{
				FindLocationsFn: func(ctx context.Context, filter placelist.LocationFilter) ([]*placelist.Location, error) {
					return []*placelist.Location{wawel}, nil
				},
			},
			Geo: &mock.GeosearchService{
				NearbyPagesFn: func(ctx context.Context, lat, lon float64) ([]*placelist.Page, error) {
					assert.Equal(t, wawel.Latitude, lat)
					assert.Equal(t, wawel.Longitude, lon)
					return []*placelist.Page{
						{ID: 42, Title: "Dragon's Den", Description: "cave"},
						{ID: 7, Title: "Wawel Cathedral", Description: "church"},
					}, nil
				},
			},
		}

		cmd := &main.NearbyCmd{Name: "Wawel"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Nearby Wawel (2 pages)")
		assert.Less(t,
			bytes.Index(stdout.Bytes(), []byte("Wawel Cathedral")),
			bytes.Index(stdout.Bytes(), []byte("Dragon's Den")),
			"Pages should be ordered by ascending page ID")
		assert.Contains(t, output, "church")
	})

	t.Run("reports enrichment progress on stderr", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Locations: &mock.LocationService{
				FindLocationsFn: func(ctx context.Context, filter placelist.LocationFilter) ([]*placelist.Location, error) {
					return []*placelist.Location{wawel}, nil
				},
			},
			Geo: &mock.GeosearchService{
				NearbyPagesFn: func(ctx context.Context, lat, lon float64) ([]*placelist.Page, error) {
					return []*placelist.Page{
						{ID: 7, Title: "Wawel Cathedral"},
						{ID: 42, Title: "Dragon's Den"},
					}, nil
				},
			},
			Enricher: &enrich.Enricher{
				Extracts: &mock.ExtractService{
					IntroExtractFn: func(ctx context.Context, title string) (string, error) {
						if title == "Dragon's Den" {
							return "", placelist.Errorf(placelist.ENOTFOUND, "no extract")
						}
						return "<p>gothic cathedral</p>", nil
					},
				},
				Extractor: &mock.Extractor{ExtractFn: func(html string) (string, error) { return html, nil }},
				Converter: &mock.Converter{ConvertFn: func(html string) (string, error) { return html, nil }},
			},
		}

		cmd := &main.NearbyCmd{Name: "Wawel", Enrich: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "Enriched 1 of 2 pages")
		assert.Contains(t, stdout.String(), "gothic cathedral")
	})

	t.Run("reports unavailable when the fetch fails", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Locations: &mock.LocationService{
				FindLocationsFn: func(ctx context.Context, filter placelist.LocationFilter) ([]*placelist.Location, error) {
					return []*placelist.Location{wawel}, nil
				},
			},
			Geo: &mock.GeosearchService{
				NearbyPagesFn: func(ctx context.Context, lat, lon float64) ([]*placelist.Page, error) {
					return nil, placelist.Errorf(placelist.EUNAVAILABLE, "wikipedia is down")
				},
			},
		}

		cmd := &main.NearbyCmd{Name: "Wawel"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, placelist.EUNAVAILABLE, placelist.ErrorCode(err))
		assert.Contains(t, stderr.String(), "failed to load nearby places")
	})

	t.Run("requires a name without --all", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.NearbyCmd{}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, placelist.EINVALID, placelist.ErrorCode(err))
	})

	t.Run("all deduplicates overlapping locations", func(t *testing.T) {
		t.Parallel()

		kazimierz := &placelist.Location{ID: "loc-2", Name: "Kazimierz", Latitude: 50.049, Longitude: 19.944}
		shared := &placelist.Page{ID: 7, Title: "Wawel Cathedral"}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Locations: &mock.LocationService{
				FindLocationsFn: func(ctx context.Context, filter placelist.LocationFilter) ([]*placelist.Location, error) {
					return []*placelist.Location{wawel, kazimierz}, nil
				},
			},
			Geo: &mock.GeosearchService{
				NearbyPagesFn: func(ctx context.Context, lat, lon float64) ([]*placelist.Page, error) {
					if lat == wawel.Latitude {
						return []*placelist.Page{shared, {ID: 42, Title: "Dragon's Den"}}, nil
					}
					return []*placelist.Page{shared, {ID: 99, Title: "Old Synagogue"}}, nil
				},
			},
		}

		cmd := &main.NearbyCmd{All: true, Limit: 50}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Nearby all 2 locations (3 pages)")
		assert.Equal(t, 1, bytes.Count(stdout.Bytes(), []byte("Wawel Cathedral")))
		assert.Contains(t, output, "Dragon's Den")
		assert.Contains(t, output, "Old Synagogue")
	})

	t.Run("all continues past a failing location", func(t *testing.T) {
		t.Parallel()

		kazimierz := &placelist.Location{ID: "loc-2", Name: "Kazimierz", Latitude: 50.049, Longitude: 19.944}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Locations: &mock.LocationService{
				FindLocationsFn: func(ctx context.Context, filter placelist.LocationFilter) ([]*placelist.Location, error) {
					return []*placelist.Location{wawel, kazimierz}, nil
				},
			},
			Geo: &mock.GeosearchService{
				NearbyPagesFn: func(ctx context.Context, lat, lon float64) ([]*placelist.Page, error) {
					if lat == wawel.Latitude {
						return nil, placelist.Errorf(placelist.EUNAVAILABLE, "timeout")
					}
					return []*placelist.Page{{ID: 99, Title: "Old Synagogue"}}, nil
				},
			},
		}

		cmd := &main.NearbyCmd{All: true, Limit: 50}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "warning: skipping \"Wawel\"")
		assert.Contains(t, stdout.String(), "Old Synagogue")
	})
}
