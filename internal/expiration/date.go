// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expiration

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date layout used on the wire and in the UI.
const DateLayout = "2006-01-02"

// looseLayouts are tried in order by ParseLooseDate.
var looseLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006.01.02",
}

// ParseDate parses a YYYY-MM-DD string into a civil date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseLooseDate accepts the date shapes a recognition backend tends to
// return (plain dates, RFC 3339 timestamps, slash or dot separated dates)
// and keeps only the calendar date as written.
func ParseLooseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Civil(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatDate renders a date in the YYYY-MM-DD layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Civil returns the calendar date of t, in t's own location, as UTC midnight.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
