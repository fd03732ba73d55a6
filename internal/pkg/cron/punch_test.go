package cron

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
)

func sweepEvent(kind punch.Kind, hour int) punch.Event {
	return punch.Event{
		ID:         "punch",
		CompanyID:  "company-1",
		EmployeeID: "emp-1",
		Timestamp:  time.Date(2024, 3, 4, hour, 0, 0, 0, time.UTC),
		Kind:       kind,
	}
}

func TestDanglingKinds(t *testing.T) {
	tests := []struct {
		name   string
		events []punch.Event
		want   []punch.Kind
	}{
		{
			name: "closed day",
			events: []punch.Event{
				sweepEvent(punch.KindIn, 9),
				sweepEvent(punch.KindOut, 17),
			},
			want: nil,
		},
		{
			name: "open work interval",
			events: []punch.Event{
				sweepEvent(punch.KindIn, 9),
			},
			want: []punch.Kind{punch.KindIn},
		},
		{
			name: "open break interval",
			events: []punch.Event{
				sweepEvent(punch.KindIn, 9),
				sweepEvent(punch.KindBreak, 12),
				sweepEvent(punch.KindOut, 17),
			},
			want: []punch.Kind{punch.KindBreak},
		},
		{
			name: "both open",
			events: []punch.Event{
				sweepEvent(punch.KindIn, 9),
				sweepEvent(punch.KindBreak, 12),
			},
			want: []punch.Kind{punch.KindIn, punch.KindBreak},
		},
		{
			name: "unordered input sorts before scanning",
			events: []punch.Event{
				sweepEvent(punch.KindOut, 17),
				sweepEvent(punch.KindIn, 9),
			},
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DanglingKinds(tc.events))
		})
	}
}
