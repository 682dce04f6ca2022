package mock

import (
	"context"

	"github.com/dtomczyk/placelist"
)

var _ placelist.LocationService = (*LocationService)(nil)

// LocationService is a mock implementation of placelist.LocationService.
type LocationService struct {
	CreateLocationFn   func(ctx context.Context, loc *placelist.Location) error
	FindLocationByIDFn func(ctx context.Context, id string) (*placelist.Location, error)
	FindLocationsFn    func(ctx context.Context, filter placelist.LocationFilter) ([]*placelist.Location, error)
	ReplaceLocationFn  func(ctx context.Context, id string, loc *placelist.Location) (*placelist.Location, error)
	DeleteLocationFn   func(ctx context.Context, id string) error
}

func (s *LocationService) CreateLocation(ctx context.Context, loc *placelist.Location) error {
	return s.CreateLocationFn(ctx, loc)
}

func (s *LocationService) FindLocationByID(ctx context.Context, id string) (*placelist.Location, error) {
	return s.FindLocationByIDFn(ctx, id)
}

func (s *LocationService) FindLocations(ctx context.Context, filter placelist.LocationFilter) ([]*placelist.Location, error) {
	return s.FindLocationsFn(ctx, filter)
}

func (s *LocationService) ReplaceLocation(ctx context.Context, id string, loc *placelist.Location) (*placelist.Location, error) {
	return s.ReplaceLocationFn(ctx, id, loc)
}

func (s *LocationService) DeleteLocation(ctx context.Context, id string) error {
	return s.DeleteLocationFn(ctx, id)
}
