package model

import (
	"fmt"
	"time"
)

// MonthLayout is the date format of every MonthlyReturn.
const MonthLayout = "2006-01"

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return t, nil
}

// PrevMonth returns the month before s.
func PrevMonth(s string) (string, error) {
	t, err := ParseMonth(s)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, -1, 0).Format(MonthLayout), nil
}

// NextMonth returns the month after s.
func NextMonth(s string) (string, error) {
	t, err := ParseMonth(s)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 1, 0).Format(MonthLayout), nil
}
