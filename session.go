package placelist

import (
	"cmp"
	"context"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// LoadState reports the progress of a session's nearby-page fetch.
type LoadState string

// LoadState values. Loaded and Failed are terminal for a fetch
// invocation; only a brand-new fetch call returns the session to Loading.
const (
	LoadStateLoading LoadState = "loading"
	LoadStateLoaded  LoadState = "loaded"
	LoadStateFailed  LoadState = "failed"
)

// EditSession owns an in-progress edit of a location. It seeds a draft
// name and description from the original, loads nearby pages on demand,
// and materializes the draft into a new Location on commit. The original
// location is read-only input and is never mutated.
//
// An EditSession is owned by a single goroutine and is not safe for
// concurrent use. FetchNearbyPages suspends the caller; the owner reads
// State and Pages only after it returns.
type EditSession struct {
	original    Location
	name        string
	description string
	state       LoadState
	pages       []*Page
	geo         GeosearchService
}

// NewEditSession starts an edit of loc. The draft is seeded from loc,
// the load state starts at loading, and the page list starts empty.
func NewEditSession(loc Location, geo GeosearchService) *EditSession {
	return &EditSession{
		original:    loc,
		name:        loc.Name,
		description: loc.Description,
		state:       LoadStateLoading,
		geo:         geo,
	}
}

// Original returns the location the session was started from.
func (s *EditSession) Original() Location { return s.original }

// Name returns the current draft name.
func (s *EditSession) Name() string { return s.name }

// SetName updates the draft name.
func (s *EditSession) SetName(name string) { s.name = name }

// Description returns the current draft description.
func (s *EditSession) Description() string { return s.description }

// SetDescription updates the draft description.
func (s *EditSession) SetDescription(description string) { s.description = description }

// State returns the load state of the most recent fetch.
func (s *EditSession) State() LoadState { return s.state }

// Pages returns the nearby pages loaded by the most recent successful
// fetch, sorted ascending by page ID.
func (s *EditSession) Pages() []*Page { return s.pages }

// Dirty reports whether the draft differs from the original.
func (s *EditSession) Dirty() bool {
	return draftHash(s.name, s.description) != draftHash(s.original.Name, s.original.Description)
}

// Commit materializes the draft into a new Location: same coordinates,
// current draft name and description, and a freshly generated ID. Commit
// is pure and has no effect on the original or on the session itself.
func (s *EditSession) Commit() Location {
	loc := s.original
	loc.ID = uuid.New().String()
	loc.Name = s.name
	loc.Description = s.description
	return loc
}

// FetchNearbyPages loads pages near the original location's coordinates.
// On success the page list holds the results sorted ascending by ID and
// the state becomes loaded. Any failure, transport or decode alike,
// moves the state to failed and leaves the page list unchanged. Callers
// observe only the state transition; the failure cause is not surfaced.
func (s *EditSession) FetchNearbyPages(ctx context.Context) {
	s.state = LoadStateLoading

	pages, err := s.geo.NearbyPages(ctx, s.original.Latitude, s.original.Longitude)
	if err != nil {
		s.state = LoadStateFailed
		return
	}

	slices.SortFunc(pages, func(a, b *Page) int {
		return cmp.Compare(a.ID, b.ID)
	})
	s.pages = pages
	s.state = LoadStateLoaded
}

// draftHash computes a hash over the editable fields using xxhash.
// A NUL separator keeps ("ab","c") distinct from ("a","bc").
func draftHash(name, description string) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(name)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(description)
	return h.Sum64()
}
