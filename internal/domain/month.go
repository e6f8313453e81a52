package domain

import (
	"fmt"
	"strconv"
	"strings"
)

var monthNames = [13]string{
	"",
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// Month is a parsed YYYY-MM value.
type Month struct {
	Year  int
	Month int
}

// ParseMonth accepts exactly two "-" separated digit tokens with the month in 1..12.
// An empty string parses as DefaultMonth.
func ParseMonth(raw string) (Month, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultMonth
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return Month{}, &ErrValidation{Field: "month", Value: raw, Message: "expected YYYY-MM"}
	}

	year, ok := parseDigits(parts[0])
	if !ok {
		return Month{}, &ErrValidation{Field: "month", Value: raw, Message: "year is not numeric"}
	}
	month, ok := parseDigits(parts[1])
	if !ok {
		return Month{}, &ErrValidation{Field: "month", Value: raw, Message: "month is not numeric"}
	}
	if month < 1 || month > 12 {
		return Month{}, &ErrValidation{Field: "month", Value: raw, Message: "month must be between 01 and 12"}
	}

	return Month{Year: year, Month: month}, nil
}

func parseDigits(s string) (int, bool) {
	if s == "" || len(s) > 9 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// Label returns the long English month name and four digit year, e.g. "September 2025".
func (m Month) Label() string {
	return fmt.Sprintf("%s %04d", monthNames[m.Month], m.Year)
}
