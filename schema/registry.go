package schema

import (
	"fmt"
	"sync"

	"github.com/arloliu/avroscan/errs"
	"github.com/arloliu/avroscan/internal/collision"
)

// Registry maps schema registry ids to parsed schemas.
//
// Registry is safe for concurrent use. Registered schemas are shared read-only.
type Registry struct {
	mu      sync.RWMutex
	byID    map[uint32]*Schema
	byPrint map[uint64]*Schema
	tracker *collision.Tracker
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:    make(map[uint32]*Schema),
		byPrint: make(map[uint64]*Schema),
		tracker: collision.NewTracker(),
	}
}

// Register associates id with s.
//
// Registering the same schema again under the same id is a no-op. A different
// schema under a used id fails with errs.ErrSchemaIDConflict, and two distinct
// schemas with the same fingerprint fail with errs.ErrFingerprintCollision.
func (r *Registry) Register(id uint32, s *Schema) error {
	if s == nil {
		return fmt.Errorf("%w: nil schema for id %d", errs.ErrSchema, id)
	}

	canonical := s.Canonical()
	fp := s.Fingerprint()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[id]; ok {
		if existing.Canonical() != canonical {
			return fmt.Errorf("%w: id %d already holds %s", errs.ErrSchemaIDConflict, id, existing.FullName())
		}

		return nil
	}

	if _, err := r.tracker.Track(canonical, fp); err != nil {
		return fmt.Errorf("schema id %d: %w", id, err)
	}

	r.byID[id] = s
	if _, ok := r.byPrint[fp]; !ok {
		r.byPrint[fp] = s
	}

	return nil
}

// Lookup returns the schema registered under id.
func (r *Registry) Lookup(id uint32) (*Schema, error) {
	r.mu.RLock()
	s, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownSchemaID, id)
	}

	return s, nil
}

// LookupFingerprint returns the first schema registered with fingerprint fp.
func (r *Registry) LookupFingerprint(fp uint64) (*Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byPrint[fp]

	return s, ok
}

// Len returns the number of registered ids.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}
