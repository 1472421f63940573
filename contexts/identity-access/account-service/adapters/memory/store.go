package memory

import (
	"context"
	"sync"

	domainerrors "madr/contexts/identity-access/account-service/domain/errors"
	"madr/contexts/identity-access/account-service/ports"
)

// Store is an in-memory credential store. Each method holds the lock for
// its whole duration, which gives the same single-unit-of-work semantics
// the transactional store provides.
type Store struct {
	mu     sync.RWMutex
	users  map[int64]ports.User
	nextID int64
}

func NewStore() *Store {
	return &Store{
		users:  make(map[int64]ports.User),
		nextID: 1,
	}
}

func (s *Store) Create(_ context.Context, user ports.User) (ports.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return ports.User{}, domainerrors.ErrUserExists
		}
	}

	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) GetByEmail(_ context.Context, email string) (ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return ports.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) GetByIdentifier(_ context.Context, identifier string) (ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == identifier || user.Username == identifier {
			return user, nil
		}
	}
	return ports.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) ExistsUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) Update(_ context.Context, user ports.User) (ports.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	for id, existing := range s.users {
		if id == user.ID {
			continue
		}
		if existing.Username == user.Username || existing.Email == user.Email {
			return ports.User{}, domainerrors.ErrUserUpdateConflict
		}
	}

	s.users[user.ID] = user
	return user, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return domainerrors.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}
