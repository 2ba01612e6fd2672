// Package series implements the append-only time series buffer that backs
// every recorder: a growable sequence of timestamped values that is safe to
// append to from any number of goroutines.
package series

import (
	"sync"
	"time"
)

// Sample is a single timestamped observation. Once appended to a Store it is
// never modified or removed.
type Sample[V any] struct {
	At    time.Time
	Value V
}

// DefaultCapacityHint is the per-store reservation used when no hint is
// given. It reflects the working assumption that a long-lived process may
// collect many millions of points per recorder.
const DefaultCapacityHint = 10_000_000

// segmentLen is the number of samples held by one segment. Segments are
// never reallocated once created, so an in-flight Snapshot copy and a
// concurrent Append never touch the same backing array growth.
const segmentLen = 1 << 16

// Store is an append-only sequence of samples. The store itself synchronizes
// appends; callers never need a lock of their own. Appends never fail and
// never drop data: when the current segment fills up a new one is allocated,
// regardless of any capacity hint.
type Store[V any] struct {
	mu     sync.Mutex
	filled [][]Sample[V] // completed segments, each exactly segmentLen long
	active []Sample[V]   // current segment, allocated on first append
	total  int
}

// New returns an empty store. capacityHint is advisory: it pre-sizes the
// segment bookkeeping for the expected volume but never bounds growth.
// A hint <= 0 selects DefaultCapacityHint.
func New[V any](capacityHint int) *Store[V] {
	if capacityHint <= 0 {
		capacityHint = DefaultCapacityHint
	}
	segs := capacityHint / segmentLen
	return &Store[V]{
		filled: make([][]Sample[V], 0, segs),
	}
}

// Append records one observation. Safe for concurrent use.
func (s *Store[V]) Append(at time.Time, v V) {
	s.mu.Lock()
	if len(s.active) == cap(s.active) {
		if s.active != nil {
			s.filled = append(s.filled, s.active)
		}
		s.active = make([]Sample[V], 0, segmentLen)
	}
	s.active = append(s.active, Sample[V]{At: at, Value: v})
	s.total++
	s.mu.Unlock()
}

// Snapshot returns a copy of every sample appended so far, in append order.
// The copy is consistent: no append is ever observed half-written.
func (s *Store[V]) Snapshot() []Sample[V] {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Sample[V], 0, s.total)
	for _, seg := range s.filled {
		out = append(out, seg...)
	}
	out = append(out, s.active...)
	return out
}

// Last returns the most recently appended sample, or false if the store is
// still empty.
func (s *Store[V]) Last() (Sample[V], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.active); n > 0 {
		return s.active[n-1], true
	}
	if n := len(s.filled); n > 0 {
		seg := s.filled[n-1]
		return seg[len(seg)-1], true
	}
	var zero Sample[V]
	return zero, false
}

// Len reports the number of samples appended so far.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}
