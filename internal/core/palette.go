package core

import "hash/fnv"

// Fixed display colors for the stock categories, per entry type. The hex
// values come straight out of the mobile app's screens.
var (
	expenseColors = map[string]string{
		"Rent":           "#FF6347",
		"Transportation": "#FFD700",
		"Food":           "#90EE90",
		"Groceries":      "#4682B4",
		"Entertainment":  "#FF69B4",
	}

	incomeColors = map[string]string{
		"Salary":      "#1E90FF",
		"Bonus":       "#32CD32",
		"Freelance":   "#FFA500",
		"Investments": "#9370DB",
	}

	// fallbackColors serves categories outside the stock vocabulary. A
	// category hashes to the same slot every time, so unknown categories keep
	// a stable color across renders.
	fallbackColors = []string{
		"#FF8C00", "#20B2AA", "#BA55D3", "#CD5C5C",
		"#6495ED", "#8FBC8F", "#DB7093", "#D2B48C",
	}
)

// ColorFor maps a category name to its display color. Stock categories get
// their fixed color; anything else gets a deterministic fallback. Never
// returns an empty string.
func ColorFor(category string, typ EntryType) string {
	colors := expenseColors
	if typ == Income {
		colors = incomeColors
	}
	if c, ok := colors[category]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(category))
	return fallbackColors[h.Sum32()%uint32(len(fallbackColors))]
}
