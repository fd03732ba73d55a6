package assignment

import "time"

// Assignment binds an employee to a shift (or an explicit rest marker) for
// one weekday of one ISO week. Several rows may exist for the same day: a
// split shift produces two shift rows, and a rest row may coexist with shift
// rows. A day with no rows at all is simply unscheduled.
type Assignment struct {
	ID         string
	CompanyID  string
	EmployeeID string
	WeekStart  time.Time // Monday of the ISO week, at midnight UTC
	DayOfWeek  int       // 0=Monday .. 6=Sunday, offset from WeekStart
	ShiftID    *string   // nil for a rest row
	IsRest     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Date is the calendar day this assignment applies to.
func (a Assignment) Date() time.Time {
	return a.WeekStart.AddDate(0, 0, a.DayOfWeek)
}

// WeekStartOf returns the Monday of the ISO week containing t, truncated to
// midnight in t's location.
func WeekStartOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0
	return day.AddDate(0, 0, -offset)
}
