package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	domainerrors "madr/contexts/catalog/book-service/domain/errors"
	"madr/contexts/catalog/book-service/ports"
)

// Store keeps books in memory. The referential invariant is checked
// against the novelist directory on every create and update, standing in
// for the foreign key the relational store enforces.
type Store struct {
	mu        sync.RWMutex
	books     map[int64]ports.Book
	novelists ports.NovelistDirectory
	nextID    int64
}

func NewStore(novelists ports.NovelistDirectory) *Store {
	return &Store{
		books:     make(map[int64]ports.Book),
		novelists: novelists,
		nextID:    1,
	}
}

func (s *Store) Create(ctx context.Context, book ports.Book) (ports.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.books {
		if existing.Title == book.Title {
			return ports.Book{}, domainerrors.ErrBookExists
		}
	}
	if err := s.checkNovelist(ctx, book.NovelistID); err != nil {
		return ports.Book{}, err
	}

	book.ID = s.nextID
	s.nextID++
	s.books[book.ID] = book
	return book, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (ports.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return ports.Book{}, domainerrors.ErrBookNotFound
	}
	return book, nil
}

func (s *Store) List(_ context.Context, filter ports.ListFilter) ([]ports.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]ports.Book, 0, len(s.books))
	for _, book := range s.books {
		if filter.Title != "" && !strings.Contains(book.Title, filter.Title) {
			continue
		}
		if filter.Year != "" && !strings.Contains(strconv.Itoa(book.Year), filter.Year) {
			continue
		}
		matches = append(matches, book)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })

	return page(matches, filter.Offset, filter.Limit), nil
}

func (s *Store) Update(ctx context.Context, book ports.Book) (ports.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[book.ID]; !ok {
		return ports.Book{}, domainerrors.ErrBookNotFound
	}
	for id, existing := range s.books {
		if id != book.ID && existing.Title == book.Title {
			return ports.Book{}, domainerrors.ErrBookExists
		}
	}
	if err := s.checkNovelist(ctx, book.NovelistID); err != nil {
		return ports.Book{}, err
	}

	s.books[book.ID] = book
	return book, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return domainerrors.ErrBookNotFound
	}
	delete(s.books, id)
	return nil
}

func (s *Store) checkNovelist(ctx context.Context, novelistID int64) error {
	exists, err := s.novelists.NovelistExists(ctx, novelistID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrNovelistIDInvalid
	}
	return nil
}

func page(items []ports.Book, offset, limit int) []ports.Book {
	if offset >= len(items) {
		return []ports.Book{}
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
