package state

import "slices"

// Store holds the authoritative pane sizes of every split view, keyed by the
// split view's path in the layout tree. Split views never write here
// directly; the owner commits the sizes they propose.
type Store struct {
	sizes   map[string][]float64
	initial map[string][]float64

	// Revision increases on every committed change.
	Revision int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		sizes:   make(map[string][]float64),
		initial: make(map[string][]float64),
	}
}

// Init records the starting sizes for key. Sizes already present are kept,
// so Init can run on every render.
func (s *Store) Init(key string, sizes []float64) {
	if _, ok := s.sizes[key]; ok {
		return
	}
	s.sizes[key] = slices.Clone(sizes)
	s.initial[key] = slices.Clone(sizes)
}

// Sizes returns a copy of the sizes for key, or nil if unknown.
func (s *Store) Sizes(key string) []float64 {
	return slices.Clone(s.sizes[key])
}

// Commit replaces the sizes for key. Proposals with a different pane count
// are ignored and reported as not applied.
func (s *Store) Commit(key string, sizes []float64) bool {
	cur, ok := s.sizes[key]
	if ok && len(cur) != len(sizes) {
		return false
	}
	if ok && slices.Equal(cur, sizes) {
		return true
	}
	s.sizes[key] = slices.Clone(sizes)
	s.Revision++
	return true
}

// Keys returns the known split view keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.sizes))
	for k := range s.sizes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Snapshot returns a copy of all sizes.
func (s *Store) Snapshot() map[string][]float64 {
	out := make(map[string][]float64, len(s.sizes))
	for k, v := range s.sizes {
		out[k] = slices.Clone(v)
	}
	return out
}

// Reset restores every split view to the sizes it was initialized with.
func (s *Store) Reset() {
	for k, v := range s.initial {
		s.sizes[k] = slices.Clone(v)
	}
	s.Revision++
}

// Clear forgets every split view.
func (s *Store) Clear() {
	clear(s.sizes)
	clear(s.initial)
	s.Revision++
}
