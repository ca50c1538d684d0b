package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"2024-02-01", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{" 2024-02-01 ", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-02-01T23:00:00-05:00", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-02-01T01:00:00+08:00", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-02-30", time.Time{}, false},
		{"01/02/2024", time.Time{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := parseDate(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInclusiveDays(t *testing.T) {
	from := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, inclusiveDays(from, from))
	assert.Equal(t, 3, inclusiveDays(from, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}
