// Package sidestore implements the side maps and side sets algorithms
// use to attach auxiliary data (distances, predecessors, visited
// flags) to vertices or edges without the graph itself carrying that
// weight.
//
// Dense containers (DenseMap, DenseSet) index a backing slice directly
// by a handle's Key() and suit the dense, never-recycled keys
// stablelist and atomiclist hand out. Hash containers (HashMap,
// HashSet) key a Go map by the handle value itself and suit edgelist
// and adjlist's pointer handles, whose Key() (a birth index) would
// otherwise waste space once vertices are removed.
//
// Every container has an ephemeral constructor (New...) for one-shot,
// algorithm-local use, and a persistent constructor (NewPersistent...)
// that subscribes to a gtrack.Tracker so the side data stays in sync
// with erasures and clears performed on the graph after construction.
package sidestore

import "github.com/nodeforge/graphkit/gtrack"

// Keyed is satisfied by handle.Int and handle.Ref[T]; the dense
// containers index their backing slice by Key().
type Keyed interface {
	Key() uint64
}

// DenseMap is a side map keyed by a dense handle, backed by a slice
// that grows to fit the largest key seen.
type DenseMap[K Keyed, V any] struct {
	data []V
	def  V
	sub  *gtrack.Subscription[K]
}

// NewDenseMap returns an empty map that answers def for any key it
// has not been explicitly Set for.
func NewDenseMap[K Keyed, V any](def V) *DenseMap[K, V] {
	return &DenseMap[K, V]{def: def}
}

// NewPersistentDenseMap returns a map subscribed to t: erasures on t
// reset the corresponding slot to def, and a Clear resets the whole
// map. The returned map must be retained by the caller for as long as
// it should keep receiving notifications; Close unsubscribes early.
func NewPersistentDenseMap[K Keyed, V any](t *gtrack.Tracker[K], def V) *DenseMap[K, V] {
	m := &DenseMap[K, V]{def: def}
	m.sub = t.Subscribe(m)
	return m
}

// Close unsubscribes m from t early. A no-op if m was never made
// persistent or has already been closed.
func (m *DenseMap[K, V]) Close(t *gtrack.Tracker[K]) {
	t.Unsubscribe(m.sub)
	m.sub = nil
}

func (m *DenseMap[K, V]) ensure(i int) {
	if i < len(m.data) {
		return
	}
	grown := make([]V, i+1)
	copy(grown, m.data)
	for j := len(m.data); j <= i; j++ {
		grown[j] = m.def
	}
	m.data = grown
}

// Get returns the value stored for k, or def if none was ever Set.
func (m *DenseMap[K, V]) Get(k K) V {
	i := int(k.Key())
	if i < 0 || i >= len(m.data) {
		return m.def
	}
	return m.data[i]
}

// Set stores v for k, growing the backing slice if necessary.
func (m *DenseMap[K, V]) Set(k K, v V) {
	i := int(k.Key())
	m.ensure(i)
	m.data[i] = v
}

// Len returns the current size of the backing slice (the highest key
// ever seen, plus one), not the count of non-default entries.
func (m *DenseMap[K, V]) Len() int { return len(m.data) }

// Reserve grows the backing slice to hold at least n entries.
func (m *DenseMap[K, V]) Reserve(n int) {
	if n > 0 {
		m.ensure(n - 1)
	}
}

// OnErase implements gtrack.Subscriber: it resets k's slot to def.
func (m *DenseMap[K, V]) OnErase(k K) {
	i := int(k.Key())
	if i >= 0 && i < len(m.data) {
		m.data[i] = m.def
	}
}

// OnClear implements gtrack.Subscriber: it discards all entries.
func (m *DenseMap[K, V]) OnClear() { m.data = nil }

// OnReserve implements gtrack.Subscriber: it grows in lock-step with
// the tracked catalog.
func (m *DenseMap[K, V]) OnReserve(n int) { m.Reserve(n) }

// DenseSet is a side set keyed by a dense handle, backed by a
// presence slice.
type DenseSet[K Keyed] struct {
	present []bool
	sub     *gtrack.Subscription[K]
}

// NewDenseSet returns an empty set.
func NewDenseSet[K Keyed]() *DenseSet[K] {
	return &DenseSet[K]{}
}

// NewPersistentDenseSet returns a set subscribed to t.
func NewPersistentDenseSet[K Keyed](t *gtrack.Tracker[K]) *DenseSet[K] {
	s := &DenseSet[K]{}
	s.sub = t.Subscribe(s)
	return s
}

// Close unsubscribes s from t early.
func (s *DenseSet[K]) Close(t *gtrack.Tracker[K]) {
	t.Unsubscribe(s.sub)
	s.sub = nil
}

func (s *DenseSet[K]) ensure(i int) {
	if i < len(s.present) {
		return
	}
	grown := make([]bool, i+1)
	copy(grown, s.present)
	s.present = grown
}

// Insert marks k present and reports whether it was newly inserted
// (false if k was already a member).
func (s *DenseSet[K]) Insert(k K) bool {
	i := int(k.Key())
	s.ensure(i)
	ok := s.present[i]
	s.present[i] = true
	return !ok
}

// Contains reports whether k was Insert-ed and not since erased.
func (s *DenseSet[K]) Contains(k K) bool {
	i := int(k.Key())
	return i >= 0 && i < len(s.present) && s.present[i]
}

// Erase marks k absent.
func (s *DenseSet[K]) Erase(k K) {
	i := int(k.Key())
	if i >= 0 && i < len(s.present) {
		s.present[i] = false
	}
}

// Reserve grows the backing slice to hold at least n entries.
func (s *DenseSet[K]) Reserve(n int) {
	if n > 0 {
		s.ensure(n - 1)
	}
}

// OnErase implements gtrack.Subscriber.
func (s *DenseSet[K]) OnErase(k K) { s.Erase(k) }

// OnClear implements gtrack.Subscriber.
func (s *DenseSet[K]) OnClear() { s.present = nil }

// OnReserve implements gtrack.Subscriber.
func (s *DenseSet[K]) OnReserve(n int) { s.Reserve(n) }
