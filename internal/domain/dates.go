package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire/storage format for calendar dates.
const DateLayout = "2006-01-02"

// DaysBetween returns the number of whole days from a to b (b - a).
// Negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	a = Midnight(a)
	b = Midnight(b)
	return int(b.Sub(a).Hours() / 24)
}

// AddDays returns t shifted by the given (possibly fractional, possibly
// negative) number of days. Lag values are decimal day counts.
func AddDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * 24 * float64(time.Hour)))
}

// Midnight truncates t to the start of its UTC day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q (expected YYYY-MM-DD)", ErrValidation, s)
	}
	return t, nil
}

// ISODate formats t as YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.Format(DateLayout)
}

// CodeSortKey maps a dotted-decimal code ("1.10.2") to a string whose
// lexicographic order matches the numeric tree order ("0001.0010.0002").
// Non-numeric segments are kept verbatim.
func CodeSortKey(code string) string {
	segs := strings.Split(code, ".")
	for i, seg := range segs {
		numeric := seg != ""
		for _, r := range seg {
			if r < '0' || r > '9' {
				numeric = false
				break
			}
		}
		if numeric && len(seg) < 4 {
			segs[i] = strings.Repeat("0", 4-len(seg)) + seg
		}
	}
	return strings.Join(segs, ".")
}
