// Package services wires the pure ledger computations to the store boundary:
// load entry snapshots, aggregate, evaluate the notification policy, persist
// whatever events it produced.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sanduniwwijesinghe/MoneyManager/internal/amqp"
	"github.com/sanduniwwijesinghe/MoneyManager/internal/core"
	"github.com/sanduniwwijesinghe/MoneyManager/internal/notify"
	"github.com/sanduniwwijesinghe/MoneyManager/internal/store"
)

// Summary is the full aggregate view for one reference date.
type Summary struct {
	Balance float64              `json:"balance"`
	Skipped int                  `json:"skipped"`
	Month   string               `json:"month"`
	ByCat   []core.CategoryTotal `json:"categories"`
	Weekly  []core.DayTotal      `json:"weekly"`
}

// LedgerService orchestrates ledger operations over a store backend. The
// AMQP client is optional; without it events are only persisted.
type LedgerService struct {
	store      store.Store
	policy     *notify.Policy
	amqpClient *amqp.Client
}

func NewLedgerService(st store.Store, policy *notify.Policy, amqpClient *amqp.Client) *LedgerService {
	if policy == nil {
		policy = notify.NewPolicy(0)
	}
	return &LedgerService{
		store:      st,
		policy:     policy,
		amqpClient: amqpClient,
	}
}

// CreateEntry validates and stores a new entry.
func (s *LedgerService) CreateEntry(ctx context.Context, typ core.EntryType, category, amountText string, date core.Date) (core.Entry, error) {
	e, err := core.NewEntry(typ, category, amountText, date)
	if err != nil {
		return core.Entry{}, err
	}
	if err := s.store.AppendEntry(ctx, e); err != nil {
		return core.Entry{}, fmt.Errorf("save entry: %w", err)
	}
	return e, nil
}

// DeleteEntry removes one entry by id from the given type's collection.
func (s *LedgerService) DeleteEntry(ctx context.Context, typ core.EntryType, id string) error {
	if err := s.store.DeleteEntry(ctx, typ, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// Entries returns the stored collection for one type, insertion order.
func (s *LedgerService) Entries(ctx context.Context, typ core.EntryType) ([]core.Entry, error) {
	entries, err := s.store.ListEntries(ctx, typ)
	if err != nil {
		return nil, fmt.Errorf("load %s entries: %w", typ, err)
	}
	return entries, nil
}

// Notifications returns the persisted notification log.
func (s *LedgerService) Notifications(ctx context.Context) ([]core.Notification, error) {
	events, err := s.store.ListNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	return events, nil
}

// Summary recomputes every aggregate from fresh store snapshots, runs the
// notification policy on the resulting balance, and appends any events to
// the notification log. ref anchors the weekly window; callers wanting
// "now" pass time.Now() explicitly so the computation stays reproducible.
func (s *LedgerService) Summary(ctx context.Context, ref time.Time) (Summary, error) {
	var income, expenses []core.Entry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		income, err = s.store.ListEntries(gctx, core.Income)
		if err != nil {
			return fmt.Errorf("load income entries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListEntries(gctx, core.Expense)
		if err != nil {
			return fmt.Errorf("load expense entries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	balance, skipped := core.ComputeBalance(income, expenses)
	if skipped > 0 {
		slog.WarnContext(ctx, "Entries with unparsable amounts excluded from balance",
			"skipped", skipped)
	}

	summary := Summary{
		Balance: balance,
		Skipped: skipped,
		Month:   core.MonthLabel(expenses),
		ByCat:   core.ComputeCategoryTotals(expenses),
		Weekly:  core.ComputeWeeklySeries(expenses, ref),
	}

	events := s.policy.Evaluate(balance, ref)
	if len(events) > 0 {
		if err := s.store.AppendNotifications(ctx, events); err != nil {
			return Summary{}, fmt.Errorf("append notifications: %w", err)
		}
		s.publish(ctx, events)
	}

	return summary, nil
}

// publish is best-effort: the events are already persisted, a broker outage
// must not fail the summary.
func (s *LedgerService) publish(ctx context.Context, events []core.Notification) {
	if s.amqpClient == nil {
		return
	}
	for _, ev := range events {
		if err := s.amqpClient.PublishNotification(ctx, ev); err != nil {
			slog.ErrorContext(ctx, "Failed to publish notification",
				"id", ev.ID, "error", err)
		}
	}
}

// Close releases the AMQP connection if one was attached.
func (s *LedgerService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close amqp client: %w", err)
		}
	}
	return nil
}
