package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/sanduniwwijesinghe/MoneyManager/internal/core"
	"github.com/sanduniwwijesinghe/MoneyManager/internal/store"
)

func mustEntry(t *testing.T, typ core.EntryType, category, amount string) core.Entry {
	t.Helper()
	e, err := core.NewEntry(typ, category, amount, core.NewDate(2025, 4, 10))
	if err != nil {
		t.Fatalf("new entry: %v", err)
	}
	return e
}

func TestEntryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	e := mustEntry(t, core.Expense, "Food", "12.50")
	if err := s.AppendEntry(ctx, e); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.ListEntries(ctx, core.Expense)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	back := got[0]
	if back.ID != e.ID || back.Type != e.Type || back.Category != e.Category || back.Amount != e.Amount {
		t.Fatalf("round trip changed fields: %+v vs %+v", back, e)
	}
	if !back.Date.SameDay(e.Date) {
		t.Fatalf("round trip changed date: %v vs %v", back.Date, e.Date)
	}
}

func TestCollectionsAreDisjointByType(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.AppendEntry(ctx, mustEntry(t, core.Income, "Salary", "2000")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendEntry(ctx, mustEntry(t, core.Expense, "Rent", "800")); err != nil {
		t.Fatalf("append: %v", err)
	}

	income, _ := s.ListEntries(ctx, core.Income)
	expenses, _ := s.ListEntries(ctx, core.Expense)
	if len(income) != 1 || len(expenses) != 1 {
		t.Fatalf("expected 1/1, got %d/%d", len(income), len(expenses))
	}
}

func TestDeleteEntry(t *testing.T) {
	ctx := context.Background()
	s := New()
	keep := mustEntry(t, core.Expense, "Food", "5")
	gone := mustEntry(t, core.Expense, "Rent", "800")
	for _, e := range []core.Entry{keep, gone} {
		if err := s.AppendEntry(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	if err := s.DeleteEntry(ctx, core.Expense, gone.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ := s.ListEntries(ctx, core.Expense)
	if len(got) != 1 || got[0].ID != keep.ID {
		t.Fatalf("expected only %s left, got %+v", keep.ID, got)
	}

	if err := s.DeleteEntry(ctx, core.Expense, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNotificationsAppendOnly(t *testing.T) {
	ctx := context.Background()
	s := New()

	got, err := s.ListNotifications(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("fresh store expected empty log, got %d", len(got))
	}

	first := []core.Notification{{ID: "n1", Message: "one"}}
	second := []core.Notification{{ID: "n2", Message: "two"}, {ID: "n3", Message: "three"}}
	if err := s.AppendNotifications(ctx, first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendNotifications(ctx, second); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, _ = s.ListNotifications(ctx)
	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	if got[0].ID != "n1" || got[2].ID != "n3" {
		t.Fatalf("append order lost: %+v", got)
	}
}
