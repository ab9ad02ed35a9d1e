package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain date", "2025-06-01", "2025-06-01"},
		{"rfc3339 timestamp", "2025-06-01T14:30:00Z", "2025-06-01"},
		{"rfc3339 with offset", "2025-06-01T23:30:00+03:00", "2025-06-01"},
		{"naive timestamp", "2025-06-01T14:30:00", "2025-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEventDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
			assert.Equal(t, 0, got.Hour())
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseEventDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "June 1st 2025", "01/06/2025", "2025-13-40"} {
		_, err := ParseEventDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestSpanDays(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseEventDate(s)
		require.NoError(t, err)
		return d
	}

	assert.Equal(t, 1, SpanDays(day("2025-06-01"), day("2025-06-01")))
	assert.Equal(t, 3, SpanDays(day("2025-06-01"), day("2025-06-03")))
	assert.Equal(t, 31, SpanDays(day("2025-07-01"), day("2025-07-31")))
	// Across a month boundary
	assert.Equal(t, 2, SpanDays(day("2025-06-30"), day("2025-07-01")))
}
