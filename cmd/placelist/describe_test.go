package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/dtomczyk/placelist"
	main "github.com/dtomczyk/placelist/cmd/placelist"
	"github.com/dtomczyk/placelist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeCmd_Run(t *testing.T) {
	t.Parallel()

	wawel := &placelist.Location{ID: "loc-1", Name: "Wawel", Latitude: 50.054, Longitude: 19.935}

	t.Run("prints the summary", func(t *testing.T) {
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
					return []*placelist.Page{{ID: 7, Title: "Wawel Cathedral"}}, nil
				},
			},
			Summarizer: &mock.Summarizer{
				SummarizeFn: func(ctx context.Context, loc *placelist.Location, pages []*placelist.Page) (string, error) {
					require.Len(t, pages, 1)
					assert.Equal(t, "Wawel", loc.Name)
					return "A royal castle surrounded by landmarks.", nil
				},
			},
		}

		cmd := &main.DescribeCmd{Name: "Wawel"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "A royal castle surrounded by landmarks.")
	})

	t.Run("stops when nearby pages cannot be loaded", func(t *testing.T) {
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
			Summarizer: &mock.Summarizer{
				SummarizeFn: func(ctx context.Context, loc *placelist.Location, pages []*placelist.Page) (string, error) {
					t.Fatal("Summarize should not be called after a failed fetch")
					return "", nil
				},
			},
		}

		cmd := &main.DescribeCmd{Name: "Wawel"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, placelist.EUNAVAILABLE, placelist.ErrorCode(err))
		assert.Contains(t, stderr.String(), "failed to load nearby places")
	})
}
