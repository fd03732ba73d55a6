package schedule

import "time"

// Shift is a named time-of-day interval employees can be scheduled to work.
// StartMinute and EndMinute are minutes of day (0..1439). A shift whose
// EndMinute is not after its StartMinute wraps past midnight.
type Shift struct {
	ID          string
	CompanyID   string
	Name        string
	StartMinute int
	EndMinute   int
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

const MinutesPerDay = 1440

// IsOvernight reports whether the shift crosses midnight.
func (s Shift) IsOvernight() bool {
	return s.EndMinute <= s.StartMinute
}

// DurationMinutes is the effective length of the shift. A shift with
// identical start and end would collapse to zero here; such shifts are
// rejected at validation time and treated as invalid by the engine.
func (s Shift) DurationMinutes() int {
	return (s.EndMinute + MinutesPerDay - s.StartMinute) % MinutesPerDay
}

// Contains reports whether the given minute of day falls inside the shift
// window [StartMinute, StartMinute+duration), evaluated modulo 24h so that
// overnight shifts cover the early-morning tail of the next day.
func (s Shift) Contains(minuteOfDay int) bool {
	offset := (minuteOfDay + MinutesPerDay - s.StartMinute) % MinutesPerDay
	return offset < s.DurationMinutes()
}
