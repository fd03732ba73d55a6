package assignment

import (
	"context"
	"time"
)

// AssignmentRepository is the shift assignment index. GetForDate returns the
// empty slice when no schedule is configured for that day; the engine never
// guesses a default shift.
type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetForDate(ctx context.Context, employeeID string, date time.Time, companyID string) ([]Assignment, error)
	GetForRange(ctx context.Context, employeeIDs []string, startDate, endDate time.Time, companyID string) ([]Assignment, error)
	GetWeek(ctx context.Context, employeeID string, weekStart time.Time, companyID string) ([]Assignment, error)
	Delete(ctx context.Context, id, companyID string) error
}
