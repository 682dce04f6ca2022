package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dtomczyk/placelist"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ placelist.LocationService = (*LocationService)(nil)

// LocationService implements placelist.LocationService using SQLite.
type LocationService struct {
	db *DB
}

// NewLocationService creates a new LocationService.
func NewLocationService(db *DB) *LocationService {
	return &LocationService{db: db}
}

// CreateLocation creates a new location. A committed draft arrives with
// its own regenerated ID; an ID is generated only when absent.
func (s *LocationService) CreateLocation(ctx context.Context, loc *placelist.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	if loc.ID == "" {
		loc.ID = uuid.New().String()
	}
	// Stored as RFC3339, so keep second precision in memory too.
	now := time.Now().UTC().Truncate(time.Second)
	loc.CreatedAt = now
	loc.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO locations (id, name, description, latitude, longitude, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, loc.ID, loc.Name, loc.Description, loc.Latitude, loc.Longitude,
		loc.CreatedAt.Format(time.RFC3339), loc.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindLocationByID retrieves a location by ID.
func (s *LocationService) FindLocationByID(ctx context.Context, id string) (*placelist.Location, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, latitude, longitude, created_at, updated_at
		FROM locations
		WHERE id = ?
	`, id)

	loc, err := scanLocation(row)
	if err == sql.ErrNoRows {
		return nil, placelist.Errorf(placelist.ENOTFOUND, "location not found")
	}
	if err != nil {
		return nil, err
	}
	return loc, nil
}

// FindLocations retrieves locations matching the filter.
func (s *LocationService) FindLocations(ctx context.Context, filter placelist.LocationFilter) ([]*placelist.Location, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, description, latitude, longitude, created_at, updated_at FROM locations WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*placelist.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

// ReplaceLocation swaps the record stored under id for the committed
// location. The committed record keeps the original's creation time; the
// delete and insert happen in one transaction so a failure leaves the
// original record in place.
func (s *LocationService) ReplaceLocation(ctx context.Context, id string, loc *placelist.Location) (*placelist.Location, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if loc.ID == "" || loc.ID == id {
		return nil, placelist.Errorf(placelist.EINVALID, "replacement must carry a fresh ID")
	}

	original, err := s.FindLocationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	loc.CreatedAt = original.CreatedAt
	loc.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM locations WHERE id = ?", id); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO locations (id, name, description, latitude, longitude, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, loc.ID, loc.Name, loc.Description, loc.Latitude, loc.Longitude,
		loc.CreatedAt.Format(time.RFC3339), loc.UpdatedAt.Format(time.RFC3339)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return loc, nil
}

// DeleteLocation permanently removes a location.
func (s *LocationService) DeleteLocation(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM locations WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return placelist.Errorf(placelist.ENOTFOUND, "location not found")
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLocation(row scanner) (*placelist.Location, error) {
	var loc placelist.Location
	var createdAt, updatedAt string

	if err := row.Scan(&loc.ID, &loc.Name, &loc.Description, &loc.Latitude, &loc.Longitude,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if loc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if loc.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &loc, nil
}
