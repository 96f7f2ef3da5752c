package models

import (
	"fmt"
	"time"
)

// FlashMessage represents a flash message for user feedback
type FlashMessage struct {
	Type    string `json:"type"` // "success", "error", "warning", "info"
	Message string `json:"message"`
}

// PageData represents common data passed to templates
type PageData struct {
	Title        string        `json:"title"`
	CurrentPage  string        `json:"current_page"`
	FlashMessage *FlashMessage `json:"flash_message,omitempty"`
	Errors       []string      `json:"errors,omitempty"`
	Data         interface{}   `json:"data,omitempty"`
}

// Date layouts used by forms, views and audit details
const (
	DateLayout         = "2006-01-02"
	DateTimeLayout     = "2006-01-02 15:04"
	DayMonthYearLayout = "02/01/2006"
)

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatDayMonthYear formats an optional date as DD/MM/YYYY, or "" when absent
func FormatDayMonthYear(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DayMonthYearLayout)
}

// ParseDate parses a YYYY-MM-DD string into a UTC time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// ParseOptionalDate parses a YYYY-MM-DD string, treating "" as no date
func ParseOptionalDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}
	t, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SameDate reports whether two optional dates denote the same calendar day
func SameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// filterLayouts are the accepted spellings of a log filter bound, most precise first
var filterLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", DateTimeLayout}

// ParseFilterBound parses a log filter bound. "" means unbounded. Values without a
// zone are UTC; a date-only upper bound covers the whole day.
func ParseFilterBound(value string, upper bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	for _, layout := range filterLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	t, err := ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or YYYY-MM-DDTHH:MM", value)
	}
	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
