package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/useradmin/models"
)

func TestLogFilterFlags(t *testing.T) {
	tests := []struct {
		name         string
		flags        logFilterFlags
		expectedFrom *time.Time
		expectedTo   *time.Time
		expectErr    bool
	}{
		{
			name:  "when no bounds are given",
			flags: logFilterFlags{action: models.ActionCreate},
		},
		{
			name:         "when date bounds are given the upper bound covers the day",
			flags:        logFilterFlags{from: "2024-05-01", to: "2024-05-31"},
			expectedFrom: ptr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
			expectedTo:   ptr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)),
		},
		{
			name:         "when RFC 3339 bounds are given they are converted to UTC",
			flags:        logFilterFlags{from: "2024-05-01T10:00:00+02:00"},
			expectedFrom: ptr(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)),
		},
		{
			name:      "when a bound is not a date",
			flags:     logFilterFlags{to: "tomorrow"},
			expectErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filter, err := tc.flags.filter()
			if tc.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.flags.action, filter.Action)
			assert.Equal(t, tc.expectedFrom, filter.From)
			assert.Equal(t, tc.expectedTo, filter.To)
		})
	}
}

func TestRenderLogTable(t *testing.T) {
	page := models.NewLogPage([]models.LogSummary{
		{
			ID:         3,
			Action:     models.ActionCreate,
			EntityType: models.EntityTypeUser,
			EntityID:   12,
			Details:    "Created user: New User",
			Timestamp:  time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		},
	}, models.LogFilter{Page: 1, PageSize: 5}, 1)

	out := renderLogTable(page)

	assert.Contains(t, out, "TIMESTAMP (UTC)")
	assert.Contains(t, out, "2024-05-01 08:30:00")
	assert.Contains(t, out, "User #12")
	assert.Contains(t, out, "Created user: New User")
	assert.Contains(t, out, "page 1 of 1, 1 entries")
}

func ptr[T any](v T) *T {
	return &v
}
