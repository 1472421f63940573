package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	domainerrors "madr/contexts/catalog/novelist-service/domain/errors"
	"madr/contexts/catalog/novelist-service/ports"
)

type Store struct {
	mu        sync.RWMutex
	novelists map[int64]ports.Novelist
	nextID    int64
}

func NewStore() *Store {
	return &Store{
		novelists: make(map[int64]ports.Novelist),
		nextID:    1,
	}
}

func (s *Store) Create(_ context.Context, novelist ports.Novelist) (ports.Novelist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.novelists {
		if existing.Name == novelist.Name {
			return ports.Novelist{}, domainerrors.ErrNovelistExists
		}
	}

	novelist.ID = s.nextID
	s.nextID++
	s.novelists[novelist.ID] = novelist
	return novelist, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (ports.Novelist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	novelist, ok := s.novelists[id]
	if !ok {
		return ports.Novelist{}, domainerrors.ErrNovelistNotFound
	}
	return novelist, nil
}

func (s *Store) List(_ context.Context, filter ports.ListFilter) ([]ports.Novelist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]ports.Novelist, 0, len(s.novelists))
	for _, novelist := range s.novelists {
		if filter.Name != "" && !strings.Contains(novelist.Name, filter.Name) {
			continue
		}
		matches = append(matches, novelist)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })

	return page(matches, filter.Offset, filter.Limit), nil
}

func (s *Store) Update(_ context.Context, novelist ports.Novelist) (ports.Novelist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.novelists[novelist.ID]; !ok {
		return ports.Novelist{}, domainerrors.ErrNovelistNotFound
	}
	for id, existing := range s.novelists {
		if id != novelist.ID && existing.Name == novelist.Name {
			return ports.Novelist{}, domainerrors.ErrNovelistExists
		}
	}

	s.novelists[novelist.ID] = novelist
	return novelist, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.novelists[id]; !ok {
		return domainerrors.ErrNovelistNotFound
	}
	delete(s.novelists, id)
	return nil
}

// NovelistExists backs the book store's referential check, the in-memory
// stand-in for the foreign key constraint.
func (s *Store) NovelistExists(_ context.Context, id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.novelists[id]
	return ok, nil
}

func page(items []ports.Novelist, offset, limit int) []ports.Novelist {
	if offset >= len(items) {
		return []ports.Novelist{}
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
