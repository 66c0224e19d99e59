package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "canonical UTC", input: "2026-03-10T12:00:00Z", want: true},
		{name: "with milliseconds", input: "2026-03-10T12:00:00.123Z", want: true},
		{name: "with numeric offset", input: "2026-03-10T12:00:00+02:00", want: true},
		{name: "no zone suffix", input: "2026-03-10T12:00:00", want: true},
		{name: "date only", input: "2026-03-10", want: false},
		{name: "space separator", input: "2026-03-10 12:00:00Z", want: false},
		{name: "free text", input: "yesterday", want: false},
		{name: "empty", input: "", want: false},
		{name: "trailing garbage", input: "2026-03-10T12:00:00Zabc", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.input))
		})
	}
}

func TestNow_IsValid(t *testing.T) {
	assert.True(t, Valid(Now()))
}

func TestParseFormat_RoundTrip(t *testing.T) {
	const stamp = "2026-03-10T12:34:56Z"

	parsed, err := Parse(stamp)
	require.NoError(t, err)
	assert.Equal(t, stamp, Format(parsed))
}

func TestFormat_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("CEST", 2*3600)
	local := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)

	assert.Equal(t, "2026-03-10T12:00:00Z", Format(local))
}
