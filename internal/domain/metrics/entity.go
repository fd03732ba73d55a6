package metrics

import "time"

// DayMetrics is the derived result of reconciling one employee's one
// calendar day. It is never persisted or mutated; identical inputs always
// produce identical values.
type DayMetrics struct {
	EmployeeID string
	Date       time.Time

	GrossMinutes       int
	NetMinutes         int
	BreakMinutesByType map[string]int
	DelayMinutes       int
	OutOfScheduleCount int

	// HasAssignment distinguishes "no schedule configured" from a day that
	// had at least one shift or rest row. IsExplicitRest is derived from the
	// presence of a rest row; a day can carry both a rest row and shifts.
	HasAssignment  bool
	IsExplicitRest bool

	// Warnings collects recovered degradations, e.g. stale shift references.
	Warnings []string
}

// Worked reports whether any net time was recorded.
func (m DayMetrics) Worked() bool {
	return m.NetMinutes > 0
}

// Absent reports a day where a shift was assigned but no time was worked.
// Rest-only days carry no gross minutes and never count as absences.
func (m DayMetrics) Absent() bool {
	return m.GrossMinutes > 0 && m.NetMinutes == 0
}

// TotalBreakMinutes sums all break buckets.
func (m DayMetrics) TotalBreakMinutes() int {
	total := 0
	for _, v := range m.BreakMinutesByType {
		total += v
	}
	return total
}
