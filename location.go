package placelist

import (
	"context"
	"time"
)

// Location represents a saved place on the map. The ID is opaque and is
// regenerated whenever an edit session commits, so a committed draft
// never silently takes over the original record's identity.
type Location struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the location contains invalid fields.
func (l *Location) Validate() error {
	if l.Name == "" {
		return Errorf(EINVALID, "location name required")
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		return Errorf(EINVALID, "latitude must be between -90 and 90")
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return Errorf(EINVALID, "longitude must be between -180 and 180")
	}
	return nil
}

// LocationService represents a service for managing saved locations.
type LocationService interface {
	// CreateLocation creates a new location. An ID is assigned if the
	// location does not already carry one.
	CreateLocation(ctx context.Context, loc *Location) error

	// FindLocationByID retrieves a location by ID.
	// Returns ENOTFOUND if the location does not exist.
	FindLocationByID(ctx context.Context, id string) (*Location, error)

	// FindLocations retrieves locations matching the filter.
	FindLocations(ctx context.Context, filter LocationFilter) ([]*Location, error)

	// ReplaceLocation swaps the record stored under id for the committed
	// location, which carries its own freshly generated ID.
	// Returns ENOTFOUND if no record is stored under id.
	ReplaceLocation(ctx context.Context, id string, loc *Location) (*Location, error)

	// DeleteLocation permanently removes a location.
	// Returns ENOTFOUND if the location does not exist.
	DeleteLocation(ctx context.Context, id string) error
}

// LocationFilter represents a filter for FindLocations.
type LocationFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
