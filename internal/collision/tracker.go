package collision

import (
	"fmt"

	"github.com/arloliu/avroscan/errs"
)

// Tracker records schema fingerprints and detects hash collisions between distinct
// schemas. It maps each fingerprint to the canonical text that produced it and keeps
// the canonical texts in registration order.
//
// Note: Tracker is NOT thread-safe; callers guard it with their own lock.
type Tracker struct {
	byHash map[uint64]string // fingerprint → canonical schema text
	order  []uint64          // fingerprints in registration order
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byHash: make(map[uint64]string),
		order:  make([]uint64, 0),
	}
}

// Track records canonical under fingerprint fp.
//
// It returns (true, nil) when the same canonical text was already tracked, and
// errs.ErrFingerprintCollision when a different text already owns fp. Empty canonical
// text is rejected with errs.ErrSchema.
func (t *Tracker) Track(canonical string, fp uint64) (bool, error) {
	if canonical == "" {
		return false, fmt.Errorf("%w: empty canonical form", errs.ErrSchema)
	}

	if existing, ok := t.byHash[fp]; ok {
		if existing != canonical {
			return false, fmt.Errorf("%w: fingerprint 0x%016x", errs.ErrFingerprintCollision, fp)
		}

		return true, nil
	}

	t.byHash[fp] = canonical
	t.order = append(t.order, fp)

	return false, nil
}

// Contains reports whether fp has been tracked.
func (t *Tracker) Contains(fp uint64) bool {
	_, ok := t.byHash[fp]
	return ok
}

// Fingerprints returns the tracked fingerprints in registration order.
func (t *Tracker) Fingerprints() []uint64 {
	return t.order
}

// Count returns the number of distinct fingerprints tracked.
func (t *Tracker) Count() int {
	return len(t.order)
}

// Reset clears all tracked fingerprints, keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.byHash)
	t.order = t.order[:0]
}
