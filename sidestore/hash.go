package sidestore

import "github.com/nodeforge/graphkit/gtrack"

// HashMap is a side map keyed by any comparable handle, backed by a
// Go map. It suits pointer handles (handle.Ref) whose birth index
// would otherwise waste space in a DenseMap once entries are removed.
type HashMap[K comparable, V any] struct {
	data map[K]V
	sub  *gtrack.Subscription[K]
}

// NewHashMap returns an empty map.
func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{data: make(map[K]V)}
}

// NewPersistentHashMap returns a map subscribed to t.
func NewPersistentHashMap[K comparable, V any](t *gtrack.Tracker[K]) *HashMap[K, V] {
	m := &HashMap[K, V]{data: make(map[K]V)}
	m.sub = t.Subscribe(m)
	return m
}

// Close unsubscribes m from t early.
func (m *HashMap[K, V]) Close(t *gtrack.Tracker[K]) {
	t.Unsubscribe(m.sub)
	m.sub = nil
}

// Get returns the value stored for k and whether k was present.
func (m *HashMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.data[k]
	return v, ok
}

// Set stores v for k.
func (m *HashMap[K, V]) Set(k K, v V) { m.data[k] = v }

// Delete removes k, if present.
func (m *HashMap[K, V]) Delete(k K) { delete(m.data, k) }

// Len returns the number of entries currently stored.
func (m *HashMap[K, V]) Len() int { return len(m.data) }

// OnErase implements gtrack.Subscriber.
func (m *HashMap[K, V]) OnErase(k K) { delete(m.data, k) }

// OnClear implements gtrack.Subscriber.
func (m *HashMap[K, V]) OnClear() { m.data = make(map[K]V) }

// OnReserve implements gtrack.Subscriber. Go maps take a size hint
// only at creation, so growth notifications after construction have
// nothing useful to act on.
func (m *HashMap[K, V]) OnReserve(int) {}

// HashSet is a side set keyed by any comparable handle, backed by a
// Go map.
type HashSet[K comparable] struct {
	data map[K]struct{}
	sub  *gtrack.Subscription[K]
}

// NewHashSet returns an empty set.
func NewHashSet[K comparable]() *HashSet[K] {
	return &HashSet[K]{data: make(map[K]struct{})}
}

// NewPersistentHashSet returns a set subscribed to t.
func NewPersistentHashSet[K comparable](t *gtrack.Tracker[K]) *HashSet[K] {
	s := &HashSet[K]{data: make(map[K]struct{})}
	s.sub = t.Subscribe(s)
	return s
}

// Close unsubscribes s from t early.
func (s *HashSet[K]) Close(t *gtrack.Tracker[K]) {
	t.Unsubscribe(s.sub)
	s.sub = nil
}

// Insert marks k present and reports whether it was newly inserted
// (false if k was already a member).
func (s *HashSet[K]) Insert(k K) bool {
	_, ok := s.data[k]
	s.data[k] = struct{}{}
	return !ok
}

// Contains reports whether k is present.
func (s *HashSet[K]) Contains(k K) bool {
	_, ok := s.data[k]
	return ok
}

// Erase marks k absent.
func (s *HashSet[K]) Erase(k K) { delete(s.data, k) }

// Len returns the number of entries currently stored.
func (s *HashSet[K]) Len() int { return len(s.data) }

// OnErase implements gtrack.Subscriber.
func (s *HashSet[K]) OnErase(k K) { delete(s.data, k) }

// OnClear implements gtrack.Subscriber.
func (s *HashSet[K]) OnClear() { s.data = make(map[K]struct{}) }

// OnReserve implements gtrack.Subscriber; see HashMap.OnReserve.
func (s *HashSet[K]) OnReserve(int) {}
