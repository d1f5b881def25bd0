package utils

import (
	"time"
)

// deadline layouts accepted from clients, tried in order
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDeadline parses a request deadline permissively: an empty or
// unparseable value falls back to the current time instead of failing the
// request. Existing clients rely on this fallback.
// TODO: reject unparseable deadlines once every client sends RFC 3339.
func ParseDeadline(value string) time.Time {
	if value == "" {
		return time.Now().UTC()
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}

	return time.Now().UTC()
}
