package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/dtomczyk/placelist"
)

// Ensure LoggingExtractService implements placelist.ExtractService.
var _ placelist.ExtractService = (*LoggingExtractService)(nil)

// LoggingExtractService wraps an ExtractService with debug logging.
type LoggingExtractService struct {
	next   placelist.ExtractService
	logger *slog.Logger
}

// NewLoggingExtractService creates a new LoggingExtractService.
func NewLoggingExtractService(next placelist.ExtractService, logger *slog.Logger) *LoggingExtractService {
	return &LoggingExtractService{next: next, logger: logger}
}

// IntroExtract delegates to the wrapped service and logs the operation.
func (s *LoggingExtractService) IntroExtract(ctx context.Context, title string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("intro extract",
			"title", title,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.IntroExtract(ctx, title)
}
