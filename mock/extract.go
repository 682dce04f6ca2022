package mock

import (
	"context"

	"github.com/dtomczyk/placelist"
)

var _ placelist.ExtractService = (*ExtractService)(nil)

// ExtractService is a mock implementation of placelist.ExtractService.
type ExtractService struct {
	IntroExtractFn func(ctx context.Context, title string) (string, error)
}

func (s *ExtractService) IntroExtract(ctx context.Context, title string) (string, error) {
	return s.IntroExtractFn(ctx, title)
}
