// Package memory is the in-memory store backend. It is the default backend
// for local runs and the test double for everything above the store ports.
package memory

import (
	"context"
	"sync"

	"github.com/sanduniwwijesinghe/MoneyManager/internal/core"
	"github.com/sanduniwwijesinghe/MoneyManager/internal/store"
)

type Store struct {
	mu            sync.Mutex
	entries       map[core.EntryType][]core.Entry
	notifications []core.Notification
}

func New() *Store {
	return &Store{entries: make(map[core.EntryType][]core.Entry)}
}

// ListEntries returns a copy of the collection in insertion order.
func (s *Store) ListEntries(_ context.Context, typ core.EntryType) ([]core.Entry, error) {
	if err := typ.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Entry(nil), s.entries[typ]...), nil
}

func (s *Store) AppendEntry(_ context.Context, e core.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.Type] = append(s.entries[e.Type], e)
	return nil
}

// DeleteEntry removes at most one entry with the given id.
func (s *Store) DeleteEntry(_ context.Context, typ core.EntryType, id string) error {
	if err := typ.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.entries[typ]
	for i, e := range list {
		if e.ID == id {
			s.entries[typ] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListNotifications(_ context.Context) ([]core.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Notification(nil), s.notifications...), nil
}

func (s *Store) AppendNotifications(_ context.Context, events []core.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, events...)
	return nil
}
