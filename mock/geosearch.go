package mock

import (
	"context"

	"github.com/dtomczyk/placelist"
)

var _ placelist.GeosearchService = (*GeosearchService)(nil)

// GeosearchService is a mock implementation of placelist.GeosearchService.
type GeosearchService struct {
	NearbyPagesFn func(ctx context.Context, lat, lon float64) ([]*placelist.Page, error)
}

func (s *GeosearchService) NearbyPages(ctx context.Context, lat, lon float64) ([]*placelist.Page, error) {
	return s.NearbyPagesFn(ctx, lat, lon)
}
