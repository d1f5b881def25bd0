package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDeadline(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected time.Time
	}{
		{"rfc3339", "2026-09-15T10:30:00Z", time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", "2026-09-15T10:30:00+05:45", time.Date(2026, 9, 15, 4, 45, 0, 0, time.UTC)},
		{"no zone", "2026-09-15T10:30:00", time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)},
		{"no seconds", "2026-09-15T10:30", time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)},
		{"space separated", "2026-09-15 10:30:00", time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)},
		{"date only", "2026-09-15", time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseDeadline(tc.value))
		})
	}
}

func TestParseDeadlineFallback(t *testing.T) {
	for _, value := range []string{"", "next tuesday", "15/09/2026"} {
		parsed := ParseDeadline(value)
		assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)
	}
}
