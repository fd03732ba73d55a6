package reconcile

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/assignment"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/metrics"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "emp-1"

var testDate = time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

func testShift(id string, startMinute, endMinute int) schedule.Shift {
	return schedule.Shift{
		ID:          id,
		CompanyID:   "company-1",
		Name:        id,
		StartMinute: startMinute,
		EndMinute:   endMinute,
	}
}

func testAssignment(shiftID string) assignment.Assignment {
	a := assignment.Assignment{
		ID:         "assign-" + shiftID,
		CompanyID:  "company-1",
		EmployeeID: testEmployeeID,
		WeekStart:  testDate,
		DayOfWeek:  0,
	}
	if shiftID != "" {
		a.ShiftID = &shiftID
	}
	return a
}

func testPunch(kind punch.Kind, hour, minute int) punch.Event {
	return punch.Event{
		ID:         "punch",
		CompanyID:  "company-1",
		EmployeeID: testEmployeeID,
		Timestamp:  time.Date(2024, 3, 4, hour, minute, 0, 0, time.UTC),
		Kind:       kind,
	}
}

func testBreakPunch(kind punch.Kind, hour, minute int, breakTypeID string) punch.Event {
	e := testPunch(kind, hour, minute)
	e.BreakTypeID = &breakTypeID
	return e
}

func TestDayFullShift(t *testing.T) {
	in := DayInput{
		EmployeeID:  testEmployeeID,
		Date:        testDate,
		Shifts:      []schedule.Shift{testShift("morning", 9*60, 17*60)},
		Assignments: []assignment.Assignment{testAssignment("morning")},
		Punches: []punch.Event{
			testPunch(punch.KindIn, 9, 10),
			testBreakPunch(punch.KindBreak, 12, 0, "lunch"),
			testBreakPunch(punch.KindResume, 12, 30, "lunch"),
			testPunch(punch.KindOut, 17, 5),
		},
	}

	m, err := Day(in)
	require.NoError(t, err)

	assert.Equal(t, 480, m.GrossMinutes)
	assert.Equal(t, 475, m.NetMinutes)
	assert.Equal(t, map[string]int{"lunch": 30}, m.BreakMinutesByType)
	assert.Equal(t, 10, m.DelayMinutes)
	assert.Equal(t, 0, m.OutOfScheduleCount)
	assert.True(t, m.HasAssignment)
	assert.False(t, m.IsExplicitRest)
	assert.True(t, m.Worked())
	assert.False(t, m.Absent())
}

func TestDayBreaksNotSubtractedFromNet(t *testing.T) {
	in := DayInput{
		EmployeeID: testEmployeeID,
		Date:       testDate,
		Punches: []punch.Event{
			testPunch(punch.KindIn, 9, 0),
			testBreakPunch(punch.KindBreak, 12, 0, "lunch"),
			testBreakPunch(punch.KindResume, 13, 0, "lunch"),
			testPunch(punch.KindOut, 17, 0),
		},
	}

	m, err := Day(in)
	require.NoError(t, err)

	// Net is wall-clock In..Out regardless of breaks inside it.
	assert.Equal(t, 480, m.NetMinutes)
	assert.Equal(t, 60, m.TotalBreakMinutes())
}

func TestDayOvernightShiftMetrics(t *testing.T) {
	night := testShift("night", 22*60, 6*60)

	tests := []struct {
		name       string
		punches    []punch.Event
		wantDelay  int
		wantOutOfS int
	}{
		{
			name: "on time",
			punches: []punch.Event{
				testPunch(punch.KindIn, 22, 0),
			},
			wantDelay:  0,
			wantOutOfS: 0,
		},
		{
			name: "late past midnight",
			punches: []punch.Event{
				testPunch(punch.KindIn, 0, 30),
			},
			wantDelay:  150,
			wantOutOfS: 0,
		},
		{
			name: "punch outside the window",
			punches: []punch.Event{
				testPunch(punch.KindIn, 12, 0),
			},
			wantDelay:  0,
			wantOutOfS: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Day(DayInput{
				EmployeeID:  testEmployeeID,
				Date:        testDate,
				Shifts:      []schedule.Shift{night},
				Assignments: []assignment.Assignment{testAssignment("night")},
				Punches:     tc.punches,
			})
			require.NoError(t, err)
			assert.Equal(t, 480, m.GrossMinutes)
			assert.Equal(t, tc.wantDelay, m.DelayMinutes)
			assert.Equal(t, tc.wantOutOfS, m.OutOfScheduleCount)
		})
	}
}

func TestDayDelay(t *testing.T) {
	morning := testShift("morning", 9*60, 17*60)

	tests := []struct {
		name string
		in   punch.Event
		want int
	}{
		{name: "fifteen late", in: testPunch(punch.KindIn, 9, 15), want: 15},
		{name: "exactly on time", in: testPunch(punch.KindIn, 9, 0), want: 0},
		{name: "early arrival", in: testPunch(punch.KindIn, 8, 45), want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Day(DayInput{
				EmployeeID: testEmployeeID,
				Date:       testDate,
				Shifts:     []schedule.Shift{morning},
				Punches:    []punch.Event{tc.in},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.DelayMinutes)
		})
	}
}

func TestDayDelayUsesEarliestShift(t *testing.T) {
	m, err := Day(DayInput{
		EmployeeID: testEmployeeID,
		Date:       testDate,
		Shifts: []schedule.Shift{
			testShift("afternoon", 13*60, 21*60),
			testShift("morning", 9*60, 13*60),
		},
		Punches: []punch.Event{testPunch(punch.KindIn, 9, 20)},
	})
	require.NoError(t, err)
	assert.Equal(t, 20, m.DelayMinutes)
}

func TestDayOutOfScheduleBoundaries(t *testing.T) {
	morning := testShift("morning", 9*60, 17*60)

	tests := []struct {
		name  string
		event punch.Event
		want  int
	}{
		{name: "start minute is in window", event: testPunch(punch.KindIn, 9, 0), want: 0},
		{name: "last minute is in window", event: testBreakPunch(punch.KindBreak, 16, 59, "lunch"), want: 0},
		{name: "break at end minute is outside", event: testBreakPunch(punch.KindBreak, 17, 0, "lunch"), want: 1},
		{name: "before start is outside", event: testPunch(punch.KindIn, 8, 59), want: 1},
		{name: "break in the evening is outside", event: testBreakPunch(punch.KindBreak, 20, 0, "lunch"), want: 1},
		{name: "late out is overtime, not flagged", event: testPunch(punch.KindOut, 17, 5), want: 0},
		{name: "late resume is not flagged", event: testBreakPunch(punch.KindResume, 17, 30, "lunch"), want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Day(DayInput{
				EmployeeID: testEmployeeID,
				Date:       testDate,
				Shifts:     []schedule.Shift{morning},
				Punches:    []punch.Event{tc.event},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.OutOfScheduleCount)
		})
	}
}

func TestDayNoShiftsMeansNothingFlagged(t *testing.T) {
	m, err := Day(DayInput{
		EmployeeID: testEmployeeID,
		Date:       testDate,
		Punches: []punch.Event{
			testPunch(punch.KindIn, 3, 0),
			testPunch(punch.KindOut, 4, 0),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, m.GrossMinutes)
	assert.Equal(t, 60, m.NetMinutes)
	assert.Equal(t, 0, m.DelayMinutes)
	assert.Equal(t, 0, m.OutOfScheduleCount)
	assert.False(t, m.HasAssignment)
}

func TestDayMalformedStreams(t *testing.T) {
	tests := []struct {
		name    string
		punches []punch.Event
		wantNet int
	}{
		{
			name: "orphan out ignored",
			punches: []punch.Event{
				testPunch(punch.KindOut, 8, 0),
				testPunch(punch.KindIn, 9, 0),
				testPunch(punch.KindOut, 10, 0),
			},
			wantNet: 60,
		},
		{
			name: "double in keeps the later one",
			punches: []punch.Event{
				testPunch(punch.KindIn, 9, 0),
				testPunch(punch.KindIn, 10, 0),
				testPunch(punch.KindOut, 11, 0),
			},
			wantNet: 60,
		},
		{
			name: "trailing in on a closed day contributes nothing",
			punches: []punch.Event{
				testPunch(punch.KindIn, 9, 0),
				testPunch(punch.KindOut, 10, 0),
				testPunch(punch.KindIn, 11, 0),
			},
			wantNet: 60,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Day(DayInput{
				EmployeeID: testEmployeeID,
				Date:       testDate,
				Punches:    tc.punches,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantNet, m.NetMinutes)
		})
	}
}

func TestDayOpenIntervalClosedAgainstNow(t *testing.T) {
	in := DayInput{
		EmployeeID: testEmployeeID,
		Date:       testDate,
		Punches:    []punch.Event{testPunch(punch.KindIn, 9, 0)},
		Now:        time.Date(2024, 3, 4, 11, 30, 0, 0, time.UTC),
	}

	m, err := Day(in)
	require.NoError(t, err)
	assert.Equal(t, 150, m.NetMinutes)
}

func TestDayIsDeterministicOverPunchOrder(t *testing.T) {
	punches := []punch.Event{
		testPunch(punch.KindIn, 9, 10),
		testBreakPunch(punch.KindBreak, 12, 0, "lunch"),
		testBreakPunch(punch.KindResume, 12, 30, "lunch"),
		testPunch(punch.KindOut, 17, 5),
	}
	reversed := []punch.Event{punches[3], punches[2], punches[1], punches[0]}

	base := DayInput{
		EmployeeID:  testEmployeeID,
		Date:        testDate,
		Shifts:      []schedule.Shift{testShift("morning", 9*60, 17*60)},
		Assignments: []assignment.Assignment{testAssignment("morning")},
	}

	first := base
	first.Punches = punches
	second := base
	second.Punches = reversed

	m1, err := Day(first)
	require.NoError(t, err)
	m2, err := Day(second)
	require.NoError(t, err)

	assert.Equal(t, m1, m2)
}

func TestDayExplicitRest(t *testing.T) {
	rest := testAssignment("")
	rest.IsRest = true

	m, err := Day(DayInput{
		EmployeeID:  testEmployeeID,
		Date:        testDate,
		Assignments: []assignment.Assignment{rest},
	})
	require.NoError(t, err)
	assert.True(t, m.HasAssignment)
	assert.True(t, m.IsExplicitRest)
	assert.Equal(t, 0, m.GrossMinutes)
}

func TestDayInvariantViolations(t *testing.T) {
	foreign := testPunch(punch.KindIn, 9, 0)
	foreign.EmployeeID = "emp-2"

	preEpoch := testPunch(punch.KindIn, 9, 0)
	preEpoch.Timestamp = time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   DayInput
	}{
		{
			name: "foreign punch",
			in: DayInput{
				EmployeeID: testEmployeeID,
				Date:       testDate,
				Punches:    []punch.Event{foreign},
			},
		},
		{
			name: "pre-epoch timestamp",
			in: DayInput{
				EmployeeID: testEmployeeID,
				Date:       testDate,
				Punches:    []punch.Event{preEpoch},
			},
		},
		{
			name: "zero-length shift",
			in: DayInput{
				EmployeeID: testEmployeeID,
				Date:       testDate,
				Shifts:     []schedule.Shift{testShift("broken", 9*60, 9*60)},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Day(tc.in)
			assert.ErrorIs(t, err, metrics.ErrInvariantViolation)
		})
	}
}

func TestAsOf(t *testing.T) {
	now := time.Date(2024, 3, 4, 14, 12, 0, 0, time.UTC)

	assert.Equal(t, now, AsOf(testDate, now))
	assert.True(t, AsOf(testDate.AddDate(0, 0, -1), now).IsZero())
	assert.True(t, AsOf(testDate.AddDate(0, 0, 1), now).IsZero())
}

func TestResolveShifts(t *testing.T) {
	catalog := map[string]schedule.Shift{
		"morning": testShift("morning", 9*60, 17*60),
	}

	live := testAssignment("morning")
	stale := testAssignment("deleted-shift")
	rest := testAssignment("")
	rest.IsRest = true

	shifts, warnings := ResolveShifts([]assignment.Assignment{live, stale, rest}, catalog)

	require.Len(t, shifts, 1)
	assert.Equal(t, "morning", shifts[0].ID)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "deleted-shift")
}
