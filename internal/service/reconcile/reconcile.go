package reconcile

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/assignment"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/metrics"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/schedule"
)

// DayInput is one employee-day, fully materialized. Shifts are the resolved
// shift definitions for the day's assignments (stale references already
// dropped by the caller, with a warning in Warnings). Now is the instant to
// close open-ended intervals against; the zero time means the day is closed
// and unmatched trailing events contribute nothing.
type DayInput struct {
	EmployeeID  string
	Date        time.Time
	Shifts      []schedule.Shift
	Assignments []assignment.Assignment
	Punches     []punch.Event
	Now         time.Time
	Warnings    []string
}

// Day reconciles one employee-day into a DayMetrics. It is a pure function:
// no clock reads, no I/O, and identical inputs yield identical outputs.
//
// Malformed-but-plausible input (unordered punches, orphan Out/Resume events,
// double In, zero shifts) degrades precision but never fails. It returns
// metrics.ErrInvariantViolation only for programmer error: punches belonging
// to another employee, timestamps before the epoch, or zero-length shifts.
func Day(in DayInput) (metrics.DayMetrics, error) {
	if err := checkInvariants(in); err != nil {
		return metrics.DayMetrics{}, err
	}

	events := make([]punch.Event, len(in.Punches))
	copy(events, in.Punches)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	m := metrics.DayMetrics{
		EmployeeID:         in.EmployeeID,
		Date:               in.Date,
		BreakMinutesByType: map[string]int{},
		Warnings:           in.Warnings,
	}

	for _, s := range in.Shifts {
		m.GrossMinutes += s.DurationMinutes()
	}

	for _, a := range in.Assignments {
		m.HasAssignment = true
		if a.IsRest {
			m.IsExplicitRest = true
		}
	}

	m.NetMinutes = scanIntervals(events, punch.KindIn, punch.KindOut, in.Now, nil)
	scanIntervals(events, punch.KindBreak, punch.KindResume, in.Now, m.BreakMinutesByType)
	m.DelayMinutes = delayMinutes(in.Shifts, events)
	m.OutOfScheduleCount = countOutOfSchedule(in.Shifts, events)

	return m, nil
}

func checkInvariants(in DayInput) error {
	for _, e := range in.Punches {
		if e.EmployeeID != in.EmployeeID {
			return metrics.InvariantViolationf("punch %s belongs to employee %s, reconciling %s", e.ID, e.EmployeeID, in.EmployeeID)
		}
		if e.Timestamp.Unix() < 0 {
			return metrics.InvariantViolationf("punch %s has a pre-epoch timestamp", e.ID)
		}
	}
	for _, s := range in.Shifts {
		if s.DurationMinutes() == 0 {
			return metrics.InvariantViolationf("shift %s has zero effective duration", s.ID)
		}
	}
	return nil
}

// scanIntervals walks the sorted event stream tracking a single open interval
// between openKind and closeKind events. The last open event wins when two
// occur back to back; a close with no open is ignored. A trailing open
// interval is closed against now when now is nonzero, otherwise dropped.
//
// When byType is non-nil, minutes accumulate per break type id (empty string
// for untyped events) and the total is still returned.
func scanIntervals(events []punch.Event, openKind, closeKind punch.Kind, now time.Time, byType map[string]int) int {
	total := 0
	var openedAt *time.Time
	openType := ""

	add := func(minutes int) {
		if minutes <= 0 {
			return
		}
		total += minutes
		if byType != nil {
			byType[openType] += minutes
		}
	}

	for _, e := range events {
		switch e.Kind {
		case openKind:
			ts := e.Timestamp
			openedAt = &ts
			openType = ""
			if e.BreakTypeID != nil {
				openType = *e.BreakTypeID
			}
		case closeKind:
			if openedAt == nil {
				continue
			}
			add(int(e.Timestamp.Sub(*openedAt).Minutes()))
			openedAt = nil
		}
	}

	if openedAt != nil && !now.IsZero() {
		add(int(now.Sub(*openedAt).Minutes()))
	}

	return total
}

// delayMinutes compares the first clock-in of the day with the earliest
// assigned shift start. The comparison runs in the shift's own reference
// frame: an arrival inside an overnight shift's past-midnight tail is late by
// its wrapped offset, while an arrival before the shift start yields zero.
func delayMinutes(shifts []schedule.Shift, events []punch.Event) int {
	if len(shifts) == 0 {
		return 0
	}

	earliest := shifts[0]
	for _, s := range shifts[1:] {
		if s.StartMinute < earliest.StartMinute {
			earliest = s
		}
	}

	for _, e := range events {
		if e.Kind != punch.KindIn {
			continue
		}
		firstIn := minuteOfDay(e.Timestamp)
		offset := (firstIn + schedule.MinutesPerDay - earliest.StartMinute) % schedule.MinutesPerDay
		if offset < earliest.DurationMinutes() {
			return offset
		}
		return max(0, firstIn-earliest.StartMinute)
	}

	return 0
}

// countOutOfSchedule flags interval-opening punches landing outside every
// shift window. Closing punches (Out, Resume) are exempt: running past the
// shift end is overtime, not a schedule violation.
func countOutOfSchedule(shifts []schedule.Shift, events []punch.Event) int {
	if len(shifts) == 0 {
		return 0
	}

	count := 0
	for _, e := range events {
		if e.Kind != punch.KindIn && e.Kind != punch.KindBreak {
			continue
		}
		minute := minuteOfDay(e.Timestamp)
		covered := false
		for _, s := range shifts {
			if s.Contains(minute) {
				covered = true
				break
			}
		}
		if !covered {
			count++
		}
	}
	return count
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
