// Package slog provides logging decorators for placelist services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dtomczyk/placelist"
)

// Ensure LoggingGeosearchService implements placelist.GeosearchService.
var _ placelist.GeosearchService = (*LoggingGeosearchService)(nil)

// LoggingGeosearchService wraps a GeosearchService with debug logging.
type LoggingGeosearchService struct {
	next   placelist.GeosearchService
	logger *slog.Logger
}

// NewLoggingGeosearchService creates a new LoggingGeosearchService.
func NewLoggingGeosearchService(next placelist.GeosearchService, logger *slog.Logger) *LoggingGeosearchService {
	return &LoggingGeosearchService{next: next, logger: logger}
}

// NearbyPages delegates to the wrapped service and logs the operation.
func (s *LoggingGeosearchService) NearbyPages(ctx context.Context, lat, lon float64) (pages []*placelist.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("geosearch",
			"lat", lat,
			"lon", lon,
			"count", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.NearbyPages(ctx, lat, lon)
}
