package usecase

import (
	"sort"
	"sync"
)

// Selection is a caller's set of checked entity ids. Ids are the sole
// selection key; order is not preserved.
type Selection struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

func (s *Selection) Add(id string) {
	s.mu.Lock()
	s.ids[id] = struct{}{}
	s.mu.Unlock()
}

func (s *Selection) Remove(id string) {
	s.mu.Lock()
	delete(s.ids, id)
	s.mu.Unlock()
}

func (s *Selection) Toggle(id string) {
	s.mu.Lock()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	s.mu.Unlock()
}

func (s *Selection) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Clear() {
	s.mu.Lock()
	s.ids = make(map[string]struct{})
	s.mu.Unlock()
}

func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns the selected ids, sorted for determinism.
func (s *Selection) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
