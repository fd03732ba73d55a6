package breaktype

import "time"

// BreakType is a named category for break punches (lunch, prayer, rest...).
type BreakType struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
