// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/emi-calculator/pkg/constants"
)

const (
	// DateTimeLayout is the format expected for loan start dates and is also
	// the label format of dated schedule entries.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ValidateMonth checks that date is a YYYY-MM month.
func ValidateMonth(date string) error {
	if _, err := time.Parse(DateTimeLayout, date); err != nil {
		return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", date, err)
	}
	return nil
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// MonthSequence returns count consecutive YYYY-MM labels beginning at start.
func MonthSequence(start string, count int) ([]string, error) {
	startT, err := time.Parse(DateTimeLayout, start)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, nil
	}
	labels := make([]string, count)
	for i := range labels {
		labels[i] = startT.AddDate(0, i, 0).Format(DateTimeLayout)
	}
	return labels, nil
}
