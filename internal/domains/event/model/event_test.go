package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"deadparty-backend/internal/domains/event/model"
)

func TestIsPast(t *testing.T) {
	t.Parallel()
	today := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"yesterday", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), true},
		{"today is still upcoming", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), false},
		{"tomorrow", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), false},
		{"last year", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := model.Event{Date: tc.date}
			require.Equal(t, tc.want, e.IsPast(today))
		})
	}
}

func TestToResponseFormatsDate(t *testing.T) {
	t.Parallel()
	e := model.Event{
		Title: "Basement Show",
		Date:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}
	resp := e.ToResponse(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	require.Equal(t, "2026-09-12", resp.Date)
	require.False(t, resp.IsPast)
}
