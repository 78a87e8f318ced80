package core

import "testing"

func TestColorForStockCategories(t *testing.T) {
	cases := []struct {
		category string
		typ      EntryType
		want     string
	}{
		{"Rent", Expense, "#FF6347"},
		{"Food", Expense, "#90EE90"},
		{"Groceries", Expense, "#4682B4"},
		{"Salary", Income, "#1E90FF"},
		{"Investments", Income, "#9370DB"},
	}
	for _, tc := range cases {
		if got := ColorFor(tc.category, tc.typ); got != tc.want {
			t.Fatalf("%s/%s expected %s, got %s", tc.typ, tc.category, tc.want, got)
		}
	}
}

func TestColorForUnknownCategory(t *testing.T) {
	first := ColorFor("Veterinary", Expense)
	if first == "" {
		t.Fatal("unknown category must still get a color")
	}
	// Deterministic: the same name gets the same color on every call.
	for i := 0; i < 10; i++ {
		if got := ColorFor("Veterinary", Expense); got != first {
			t.Fatalf("fallback color unstable: %s vs %s", got, first)
		}
	}
}

func TestColorForTypeSelectsPalette(t *testing.T) {
	// "Salary" is stock for income only; as an expense category it is unknown
	// and served from the fallback palette.
	if got := ColorFor("Salary", Income); got != "#1E90FF" {
		t.Fatalf("expected fixed income color, got %s", got)
	}
	if got := ColorFor("Salary", Expense); got == "#1E90FF" {
		t.Fatal("expense lookup must not use the income palette")
	}
}
