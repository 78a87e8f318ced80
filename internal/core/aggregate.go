package core

import (
	"sort"
	"strconv"
	"time"
)

// zeroSegmentFloor is the smallest total reported for a category whose
// entries sum to exactly 0. Chart segments of size 0 render as nothing, so
// zero groups are floored to keep every category visible. Display smoothing
// only: the real sum stays untouched for any non-zero group.
const zeroSegmentFloor = 1

type (
	// CategoryTotal is one slice of the expense breakdown.
	CategoryTotal struct {
		Category string  `json:"category"`
		Total    float64 `json:"total"`
		Color    string  `json:"color"`
	}

	// DayTotal is one bucket of the rolling week. Label is the day of the
	// month, matching the chart axis of the mobile app.
	DayTotal struct {
		Label string  `json:"label"`
		Total float64 `json:"total"`
	}
)

// ComputeBalance returns sum(income) - sum(expenses). Entries whose amount
// fails to parse are excluded from the sums and counted in skipped so the
// caller can surface a warning instead of silently corrupting the balance.
func ComputeBalance(income, expenses []Entry) (balance float64, skipped int) {
	in, s1 := sumAmounts(income)
	out, s2 := sumAmounts(expenses)
	return in - out, s1 + s2
}

func sumAmounts(entries []Entry) (total float64, skipped int) {
	for _, e := range entries {
		v, err := ParseAmount(e.Amount)
		if err != nil {
			skipped++
			continue
		}
		total += v
	}
	return total, skipped
}

// ComputeCategoryTotals groups expenses by exact category name, sums each
// group, and attaches the registry color. Unparsable amounts are skipped.
// Results are sorted by category name so repeated calls over the same input
// are identical.
func ComputeCategoryTotals(expenses []Entry) []CategoryTotal {
	sums := make(map[string]float64)
	for _, e := range expenses {
		v, err := ParseAmount(e.Amount)
		if err != nil {
			continue
		}
		sums[e.Category] += v
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for category, total := range sums {
		if total <= 0 {
			total = zeroSegmentFloor
		}
		totals = append(totals, CategoryTotal{
			Category: category,
			Total:    total,
			Color:    ColorFor(category, Expense),
		})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })
	return totals
}

// ComputeWeeklySeries buckets expenses into the 7 calendar days ending at
// ref (inclusive), oldest first. Matching is calendar-day equality, not a
// 24h window; days without entries contribute 0. The result always has
// exactly 7 buckets.
func ComputeWeeklySeries(expenses []Entry, ref time.Time) []DayTotal {
	series := make([]DayTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		day := DateOf(ref.AddDate(0, 0, -i))
		var total float64
		for _, e := range expenses {
			if !e.Date.SameDay(day) {
				continue
			}
			v, err := ParseAmount(e.Amount)
			if err != nil {
				continue
			}
			total += v
		}
		series = append(series, DayTotal{Label: strconv.Itoa(day.Day()), Total: total})
	}
	return series
}

// MonthLabel names the month a set of entries is summarized under: the month
// of the most recent entry's date, or "" when there are no entries. Stored
// order is insertion order, so the latest date is a more honest label than
// whichever entry happens to sit first.
func MonthLabel(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	latest := entries[0].Date
	for _, e := range entries[1:] {
		if e.Date.After(latest.Time) {
			latest = e.Date
		}
	}
	return latest.Time.Month().String()
}
