package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/dtomczyk/placelist"
	"github.com/dtomczyk/placelist/mock"
	placelistslog "github.com/dtomczyk/placelist/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingGeosearchService_NearbyPages(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the result count", func(t *testing.T) {
		t.Parallel()

		next := &mock.GeosearchService{
			NearbyPagesFn: func(ctx context.Context, lat, lon float64) ([]*placelist.Page, error) {
				return []*placelist.Page{{ID: 1}, {ID: 2}}, nil
			},
		}
		logger, buf := testLogger()
		svc := placelistslog.NewLoggingGeosearchService(next, logger)

		pages, err := svc.NearbyPages(context.Background(), 50.0647, 19.945)

		require.NoError(t, err)
		assert.Len(t, pages, 2)
		assert.Contains(t, buf.String(), "geosearch")
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs and propagates errors", func(t *testing.T) {
		t.Parallel()

		next := &mock.GeosearchService{
			NearbyPagesFn: func(ctx context.Context, lat, lon float64) ([]*placelist.Page, error) {
				return nil, errors.New("connection refused")
			},
		}
		logger, buf := testLogger()
		svc := placelistslog.NewLoggingGeosearchService(next, logger)

		_, err := svc.NearbyPages(context.Background(), 0, 0)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "connection refused")
	})
}

func TestLoggingExtractService_IntroExtract(t *testing.T) {
	t.Parallel()

	next := &mock.ExtractService{
		IntroExtractFn: func(ctx context.Context, title string) (string, error) {
			return "<p>ok</p>", nil
		},
	}
	logger, buf := testLogger()
	svc := placelistslog.NewLoggingExtractService(next, logger)

	html, err := svc.IntroExtract(context.Background(), "Wawel Castle")

	require.NoError(t, err)
	assert.Equal(t, "<p>ok</p>", html)
	assert.Contains(t, buf.String(), "intro extract")
	assert.Contains(t, buf.String(), "Wawel Castle")
}
