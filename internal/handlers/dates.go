package handlers

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// dateLayouts are tried in order. Layouts without an offset are read in
// the server's configured location.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate reads a client-supplied date.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized date %q", s)
}

// RecentSince is the inclusive lower bound of a "last N days" window.
func RecentSince(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}
