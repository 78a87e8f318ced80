package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

type (
	EntryType string

	// Date is a calendar day. Time-of-day is irrelevant everywhere in the
	// ledger: bucketing and equality work on year/month/day only.
	Date struct {
		time.Time
	}

	// Entry is one recorded income or expense transaction. Amount is kept
	// as the decimal text the user typed; arithmetic parses it on demand so
	// that storage round-trips the exact value.
	Entry struct {
		ID       string
		Type     EntryType
		Category string
		Amount   string
		Date     Date
	}
)

var (
	ErrInvalidType   = errors.New("invalid entry type")
	ErrEmptyCategory = errors.New("empty category")
	ErrEmptyAmount   = errors.New("empty amount")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrZeroDate      = errors.New("date cannot be zero")
)

// DateLayout is the wire and storage format for dates.
const DateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses an ISO calendar day (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// SameDay reports whether d and other fall on the same calendar day,
// regardless of time-of-day or location offsets baked into the values.
func (d Date) SameDay(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month() && d.Day() == other.Day()
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrZeroDate
	}
	return nil
}

func (t EntryType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

// NewEntry validates and normalizes a raw entry, assigning it a fresh ID.
// Mirrors the "fill out all fields" guard: every field is required, and the
// amount must parse as a non-negative decimal.
func NewEntry(typ EntryType, category, amountText string, date Date) (Entry, error) {
	if err := typ.Validate(); err != nil {
		return Entry{}, err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return Entry{}, ErrEmptyCategory
	}
	amountText = strings.TrimSpace(amountText)
	if amountText == "" {
		return Entry{}, ErrEmptyAmount
	}
	if _, err := ParseAmount(amountText); err != nil {
		return Entry{}, err
	}
	if err := date.Validate(); err != nil {
		return Entry{}, err
	}
	return Entry{
		ID:       uuid.NewString(),
		Type:     typ,
		Category: category,
		Amount:   amountText,
		Date:     date,
	}, nil
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("empty entry id")
	}
	if err := e.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(e.Amount) == "" {
		return ErrEmptyAmount
	}
	return e.Date.Validate()
}
