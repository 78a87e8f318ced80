package core

import "time"

// Notification is one advisory message derived from the ledger state. The
// persisted log is append-only: the engine creates notifications, never
// mutates or expires them.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
