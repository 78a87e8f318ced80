// Package storage is the SQLite store backend. Amounts are persisted as the
// exact decimal text the user entered and dates as ISO calendar days, so a
// load reproduces every entry field bit for bit.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sanduniwwijesinghe/MoneyManager/internal/core"
	"github.com/sanduniwwijesinghe/MoneyManager/internal/store"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListEntries implements store.EntryReader. Rows come back in insertion
// order (rowid), matching the append-only collection semantics.
func (r *SQLiteRepository) ListEntries(ctx context.Context, typ core.EntryType) ([]core.Entry, error) {
	if err := typ.Validate(); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, entry_type, category, amount, entry_date FROM entries WHERE entry_type = ? ORDER BY rowid`,
		string(typ))
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []core.Entry
	for rows.Next() {
		var e core.Entry
		var typText, dateText string
		if err := rows.Scan(&e.ID, &typText, &e.Category, &e.Amount, &dateText); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Type = core.EntryType(typText)
		date, err := core.ParseDate(dateText)
		if err != nil {
			return nil, fmt.Errorf("parse entry date %q: %w", dateText, err)
		}
		e.Date = date
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// AppendEntry implements store.EntryWriter.
func (r *SQLiteRepository) AppendEntry(ctx context.Context, e core.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO entries (id, entry_type, category, amount, entry_date) VALUES (?, ?, ?, ?, ?)`,
		e.ID, string(e.Type), e.Category, e.Amount, e.Date.String())
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	slog.InfoContext(ctx, "Entry saved to SQLite",
		"id", e.ID,
		"type", e.Type,
		"category", e.Category,
		"amount", e.Amount,
		"date", e.Date.String())

	return nil
}

// DeleteEntry implements store.EntryDeleter; removes at most one row.
func (r *SQLiteRepository) DeleteEntry(ctx context.Context, typ core.EntryType, id string) error {
	if err := typ.Validate(); err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM entries WHERE entry_type = ? AND id = ?`,
		string(typ), id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete entry rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete entry %s: %w", id, store.ErrNotFound)
	}

	slog.InfoContext(ctx, "Entry deleted from SQLite", "id", id, "type", typ)
	return nil
}

// ListNotifications implements store.NotificationReader.
func (r *SQLiteRepository) ListNotifications(ctx context.Context) ([]core.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, message, created_at FROM notifications ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []core.Notification
	for rows.Next() {
		var n core.Notification
		var createdAt string
		if err := rows.Scan(&n.ID, &n.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse notification timestamp %q: %w", createdAt, err)
		}
		n.CreatedAt = ts
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return notifications, nil
}

// AppendNotifications implements store.NotificationAppender. The log is
// append-only: existing rows are never touched.
func (r *SQLiteRepository) AppendNotifications(ctx context.Context, events []core.Notification) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin notifications tx: %w", err)
	}
	defer tx.Rollback()

	for _, ev := range events {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notifications (id, message, created_at) VALUES (?, ?, ?)`,
			ev.ID, ev.Message, ev.CreatedAt.UTC().Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("insert notification %s: %w", ev.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit notifications: %w", err)
	}

	slog.InfoContext(ctx, "Notifications appended to SQLite", "count", len(events))
	return nil
}
