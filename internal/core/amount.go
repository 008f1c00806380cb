package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a whole-number string into a budget amount.
//
// Surrounding whitespace and a leading "+" are accepted. Signs, separators and
// fractional parts are rejected with ErrInvalidAmount.
//
// Examples:
//   ParseAmount("3100")  -> 3100, nil
//   ParseAmount(" +0 ")  -> 0, nil
//   ParseAmount("31.00") -> 0, ErrInvalidAmount
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0, ErrInvalidAmount
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
