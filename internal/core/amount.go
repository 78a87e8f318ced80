// Package core holds the ledger domain: entries, amount parsing, and the
// aggregate computations (balance, category totals, weekly series).
package core

import (
	"strconv"
	"strings"
)

// ParseAmount converts decimal text to a number for arithmetic.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Negative
// values are rejected: entries record magnitudes, direction comes from the
// entry type. Zero is valid.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("0")     -> 0, nil
//	ParseAmount("-5")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v < 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
