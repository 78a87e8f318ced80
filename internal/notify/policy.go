// Package notify decides when ledger state warrants a notification. It only
// produces events; persisting and displaying them is the caller's problem.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sanduniwwijesinghe/MoneyManager/internal/core"
)

// DefaultThreshold is the balance below which the low-balance warning fires.
const DefaultThreshold = 10000

const reminderMessage = "Reminder: don't forget to add today's expenses!"

// Policy evaluates a recomputed balance against the notification rules.
//
// The original app appended a fresh reminder and low-balance warning on every
// recomputation, growing the log without bound. Policy instead remembers when
// it last reminded and whether the balance was already below the threshold,
// so each event fires at most once per day / per downward crossing. The log
// itself stays append-only.
type Policy struct {
	mu        sync.Mutex
	threshold float64

	lastReminder core.Date
	wasBelow     bool
}

// NewPolicy creates a Policy with the given low-balance threshold. A zero or
// negative threshold falls back to DefaultThreshold.
func NewPolicy(threshold float64) *Policy {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Policy{threshold: threshold}
}

// Threshold returns the configured low-balance threshold.
func (p *Policy) Threshold() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.threshold
}

// Evaluate applies the rules to the current balance and returns the events to
// append to the notification log. Total over any balance; never errors.
//
// Rules:
//   - balance < threshold emits a low-balance warning, once per downward
//     crossing (balance at exactly the threshold does not trigger);
//   - a daily reminder, at most once per calendar day.
func (p *Policy) Evaluate(balance float64, now time.Time) []core.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()

	var events []core.Notification

	below := balance < p.threshold
	if below && !p.wasBelow {
		events = append(events, core.Notification{
			ID:        uuid.NewString(),
			Message:   fmt.Sprintf("Your current balance is below %.2f. Please review your expenses.", p.threshold),
			CreatedAt: now,
		})
	}
	p.wasBelow = below

	today := core.DateOf(now)
	if p.lastReminder.IsZero() || !p.lastReminder.SameDay(today) {
		events = append(events, core.Notification{
			ID:        uuid.NewString(),
			Message:   reminderMessage,
			CreatedAt: now,
		})
		p.lastReminder = today
	}

	return events
}
