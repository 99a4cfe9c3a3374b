package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthOf(t *testing.T) {
	jan := time.Date(2024, time.January, 5, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name   string
		post   Post
		expect MonthKey
	}{
		{
			name:   "dated post",
			post:   Post{PostedAt: &jan},
			expect: MonthKey{Year: 2024, Month: time.January},
		},
		{
			name:   "nil date",
			post:   Post{},
			expect: MonthKey{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, MonthOf(tc.post))
		})
	}
}

func TestMonthKeyString(t *testing.T) {
	require.Equal(t, "2024-01", MonthKey{Year: 2024, Month: time.January}.String())
	require.Equal(t, "2024-12", MonthKey{Year: 2024, Month: time.December}.String())
	require.Equal(t, "unknown", MonthKey{}.String())
}

func TestPostedDate(t *testing.T) {
	d := time.Date(2023, time.September, 9, 23, 59, 0, 0, time.UTC)
	require.Equal(t, "2023-09-09", Post{PostedAt: &d}.PostedDate())
	require.Equal(t, "unknown", Post{}.PostedDate())
}
