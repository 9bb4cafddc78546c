package memory

import (
	"context"
	"sync"

	"github.com/tvasilyev/rosterbook/internal/model"
	"github.com/tvasilyev/rosterbook/internal/storage"
)

// Storage is an in-memory implementation of the record store
type Storage struct {
	mu sync.RWMutex

	roster    model.Roster
	hasRoster bool

	username    string
	hasUsername bool

	// writeErr, when set, is returned by every save operation.
	// Used in tests to exercise persistence-failure behavior.
	writeErr error
}

// New creates a new in-memory record store
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.RecordStore = (*Storage)(nil)

// FailWrites makes all subsequent saves return err. Pass nil to restore
// normal behavior.
func (s *Storage) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

func (s *Storage) LoadRoster(ctx context.Context) (model.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasRoster {
		return nil, model.ErrRosterNotFound
	}
	return s.roster.Clone(), nil
}

func (s *Storage) SaveRoster(ctx context.Context, roster model.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.roster = roster.Clone()
	s.hasRoster = true
	return nil
}

func (s *Storage) LoadUsername(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasUsername {
		return "", model.ErrUsernameNotFound
	}
	return s.username, nil
}

func (s *Storage) SaveUsername(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.username = username
	s.hasUsername = true
	return nil
}
