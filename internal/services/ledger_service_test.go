package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/sanduniwwijesinghe/MoneyManager/internal/core"
	"github.com/sanduniwwijesinghe/MoneyManager/internal/notify"
	"github.com/sanduniwwijesinghe/MoneyManager/internal/store"
	"github.com/sanduniwwijesinghe/MoneyManager/internal/store/memory"
)

var ref = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

func newService() (*LedgerService, *memory.Store) {
	st := memory.New()
	return NewLedgerService(st, notify.NewPolicy(0), nil), st
}

func seed(t *testing.T, s *LedgerService, typ core.EntryType, category, amount string, date core.Date) core.Entry {
	t.Helper()
	e, err := s.CreateEntry(context.Background(), typ, category, amount, date)
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	return e
}

func TestCreateAndListEntries(t *testing.T) {
	ctx := context.Background()
	s, _ := newService()

	seed(t, s, core.Income, "Salary", "2500", core.DateOf(ref))
	seed(t, s, core.Expense, "Food", "40", core.DateOf(ref))

	income, err := s.Entries(ctx, core.Income)
	if err != nil {
		t.Fatalf("list income: %v", err)
	}
	if len(income) != 1 || income[0].Category != "Salary" {
		t.Fatalf("unexpected income: %+v", income)
	}

	if _, err := s.CreateEntry(ctx, core.Expense, "", "10", core.DateOf(ref)); !errors.Is(err, core.ErrEmptyCategory) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// Validation failures must not leave partial entries behind.
	expenses, _ := s.Entries(ctx, core.Expense)
	if len(expenses) != 1 {
		t.Fatalf("failed create mutated the store: %+v", expenses)
	}
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	s, _ := newService()
	e := seed(t, s, core.Expense, "Rent", "800", core.DateOf(ref))

	if err := s.DeleteEntry(ctx, core.Expense, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteEntry(ctx, core.Expense, e.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSummaryComputesAggregates(t *testing.T) {
	ctx := context.Background()
	s, _ := newService()

	seed(t, s, core.Income, "Salary", "50000", core.DateOf(ref))
	seed(t, s, core.Expense, "Food", "50", core.DateOf(ref))
	seed(t, s, core.Expense, "Food", "30", core.DateOf(ref.AddDate(0, 0, -1)))
	seed(t, s, core.Expense, "Rent", "20", core.DateOf(ref.AddDate(0, 0, -6)))
	seed(t, s, core.Expense, "Rent", "999", core.DateOf(ref.AddDate(0, 0, -10)))

	summary, err := s.Summary(ctx, ref)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if math.Abs(summary.Balance-(50000-1099)) > 1e-9 {
		t.Fatalf("unexpected balance %v", summary.Balance)
	}
	if summary.Month != "April" {
		t.Fatalf("expected April, got %q", summary.Month)
	}
	if len(summary.ByCat) != 2 {
		t.Fatalf("expected 2 categories, got %+v", summary.ByCat)
	}
	if len(summary.Weekly) != 7 {
		t.Fatalf("expected 7 weekly buckets, got %d", len(summary.Weekly))
	}
	var weekTotal float64
	for _, b := range summary.Weekly {
		weekTotal += b.Total
	}
	if weekTotal != 100 {
		t.Fatalf("out-of-window expense leaked into the week: %v", weekTotal)
	}
}

func TestSummaryAppendsNotifications(t *testing.T) {
	ctx := context.Background()
	s, st := newService()

	seed(t, s, core.Income, "Salary", "500", core.DateOf(ref))
	if _, err := s.Summary(ctx, ref); err != nil {
		t.Fatalf("summary: %v", err)
	}

	events, err := st.ListNotifications(ctx)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	// Low balance plus first reminder of the day.
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(events), events)
	}

	// Same day again: policy gates both rules, the log must not grow.
	if _, err := s.Summary(ctx, ref.Add(2*time.Hour)); err != nil {
		t.Fatalf("summary: %v", err)
	}
	events, _ = st.ListNotifications(ctx)
	if len(events) != 2 {
		t.Fatalf("repeated summary duplicated events: %d", len(events))
	}

	// Next day: only the reminder fires (balance still below, no crossing).
	if _, err := s.Summary(ctx, ref.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("summary: %v", err)
	}
	events, _ = st.ListNotifications(ctx)
	if len(events) != 3 {
		t.Fatalf("expected 3 events after next-day summary, got %d", len(events))
	}
	reminders := 0
	for _, ev := range events {
		if !strings.Contains(ev.Message, "below") {
			reminders++
		}
	}
	if reminders != 2 {
		t.Fatalf("expected 2 reminders, got %d", reminders)
	}
}

func TestSummaryCountsUnparsableAmounts(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	s := NewLedgerService(st, notify.NewPolicy(0), nil)

	// Bypass CreateEntry validation: corrupt amounts can exist in the store.
	if err := st.AppendEntry(ctx, core.Entry{
		ID: "bad", Type: core.Expense, Category: "Food", Amount: "oops", Date: core.DateOf(ref),
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
	seed(t, s, core.Income, "Salary", "100000", core.DateOf(ref))

	summary, err := s.Summary(ctx, ref)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Skipped != 1 {
		t.Fatalf("expected 1 skipped entry, got %d", summary.Skipped)
	}
	if math.Abs(summary.Balance-100000) > 1e-9 {
		t.Fatalf("bad amount corrupted the balance: %v", summary.Balance)
	}
}

func TestSummaryEmptyStore(t *testing.T) {
	s, _ := newService()
	summary, err := s.Summary(context.Background(), ref)
	if err != nil {
		t.Fatalf("first run must not fail: %v", err)
	}
	if summary.Balance != 0 || summary.Month != "" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.Weekly) != 7 {
		t.Fatalf("expected 7 buckets even when empty, got %d", len(summary.Weekly))
	}
}
