package usecase

import (
	"sync"

	"marketdesk/internal/domain/entity"
)

// SnapshotStore holds the authoritative in-memory collection for one
// entity kind. Every Replace is a whole-snapshot swap; partial fetches
// must not call it. Until the first successful load the store serves
// the built-in fallback dataset it was constructed with, so a failed
// initial fetch shows stale data rather than nothing.
type SnapshotStore[T entity.Record] struct {
	mu      sync.RWMutex
	items   []T
	index   map[string]int
	loaded  bool
	subs    map[int]func([]T)
	nextSub int
}

func NewSnapshotStore[T entity.Record](fallback []T) *SnapshotStore[T] {
	s := &SnapshotStore[T]{
		subs: make(map[int]func([]T)),
	}
	s.swap(fallback)
	return s
}

// must hold s.mu
func (s *SnapshotStore[T]) swap(items []T) {
	s.items = make([]T, len(items))
	copy(s.items, items)
	s.index = make(map[string]int, len(items))
	for i, item := range s.items {
		s.index[item.EntityID()] = i
	}
}

// Replace swaps in a full new snapshot and notifies subscribers.
func (s *SnapshotStore[T]) Replace(items []T) {
	s.mu.Lock()
	s.swap(items)
	s.loaded = true
	s.mu.Unlock()
	s.notify()
}

// Get returns a copy of the current collection in snapshot order.
// Callers may not mutate the store through the returned slice.
func (s *SnapshotStore[T]) Get() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Find returns the entity with the given id.
func (s *SnapshotStore[T]) Find(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero T
	i, ok := s.index[id]
	if !ok {
		return zero, false
	}
	return s.items[i], true
}

// Update applies fn to the stored entity in place. The write is
// synchronous; subscribers see it before any remote call resolves.
func (s *SnapshotStore[T]) Update(id string, fn func(*T)) bool {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	fn(&s.items[i])
	s.mu.Unlock()
	s.notify()
	return true
}

// Remove deletes the entity from the snapshot entirely. Used only by
// explicit delete actions; "removed" transitions set status instead.
func (s *SnapshotStore[T]) Remove(id string) bool {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].EntityID()] = j
	}
	s.mu.Unlock()
	s.notify()
	return true
}

// Loaded reports whether at least one full fetch has succeeded.
func (s *SnapshotStore[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *SnapshotStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Subscribe registers a listener called with a copy of the collection
// after every change. The returned function unsubscribes it.
func (s *SnapshotStore[T]) Subscribe(fn func([]T)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *SnapshotStore[T]) notify() {
	s.mu.RLock()
	snapshot := make([]T, len(s.items))
	copy(snapshot, s.items)
	listeners := make([]func([]T), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
