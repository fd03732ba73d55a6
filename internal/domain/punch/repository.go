package punch

import (
	"context"
	"time"
)

// PunchRepository is the punch ledger. GetForDate returns events ascending by
// timestamp; GetForRange returns events ascending by (employee, timestamp) so
// per-day views can be sliced without re-sorting. GetAllForDate crosses
// company boundaries and exists for background sweeps only.
type PunchRepository interface {
	Create(ctx context.Context, e Event) (Event, error)
	GetForDate(ctx context.Context, employeeID string, date time.Time, companyID string) ([]Event, error)
	GetForRange(ctx context.Context, employeeIDs []string, startDate, endDate time.Time, companyID string) ([]Event, error)
	GetAllForDate(ctx context.Context, date time.Time) ([]Event, error)
}
