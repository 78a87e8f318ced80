// Package store defines the ports the ledger engine talks to for durable
// entry and notification collections. Concrete persistence lives behind
// these interfaces; the engine only consumes and produces collections.
package store

import (
	"context"
	"errors"

	"github.com/sanduniwwijesinghe/MoneyManager/internal/core"
)

// ErrNotFound is returned by deletes that match no entry.
var ErrNotFound = errors.New("entry not found")

// Ports for outbound adapters.
type (
	EntryReader interface {
		// ListEntries returns the stored entries of one type in insertion
		// order. An empty store yields an empty slice, not an error.
		ListEntries(ctx context.Context, typ core.EntryType) ([]core.Entry, error)
	}

	EntryWriter interface {
		AppendEntry(ctx context.Context, e core.Entry) error
	}

	EntryDeleter interface {
		// DeleteEntry removes at most one entry matching id within the given
		// type's collection.
		DeleteEntry(ctx context.Context, typ core.EntryType, id string) error
	}

	NotificationReader interface {
		ListNotifications(ctx context.Context) ([]core.Notification, error)
	}

	NotificationAppender interface {
		// AppendNotifications adds events to the persisted log without
		// touching what is already there.
		AppendNotifications(ctx context.Context, events []core.Notification) error
	}

	// Store is the full boundary a backend implements.
	Store interface {
		EntryReader
		EntryWriter
		EntryDeleter
		NotificationReader
		NotificationAppender
	}
)
