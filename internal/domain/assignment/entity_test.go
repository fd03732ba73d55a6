package assignment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStartOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			in:   time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC),
			want: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "wednesday maps back to monday",
			in:   time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday maps back six days",
			in:   time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC),
			want: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "crosses month boundary",
			in:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), // Friday
			want: time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeekStartOf(tc.in))
		})
	}
}

func TestAssignmentDate(t *testing.T) {
	a := Assignment{
		WeekStart: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		DayOfWeek: 6,
	}
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), a.Date())
}
