package punch

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

type CreatePunchRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Timestamp   string  `json:"timestamp"` // RFC3339; empty means "now"
	Kind        string  `json:"kind"`
	BreakTypeID *string `json:"break_type_id"`

	parsedAt time.Time
}

func (r *CreatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.Kind, KindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: " + strings.Join(KindValues, ", "),
		})
	}

	if r.Timestamp != "" {
		t, ok := validator.IsValidDateTime(r.Timestamp)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 datetime",
			})
		}
		r.parsedAt = t
	}

	if r.BreakTypeID != nil && !validator.IsValidUUID(*r.BreakTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_type_id",
			Message: "break_type_id must be a valid UUID",
		})
	}

	if Kind(r.Kind) != KindBreak && r.BreakTypeID != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "break_type_id",
			Message: "break_type_id is only allowed on break events",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// At returns the event timestamp, defaulting to now when the request omitted
// it. Validate must have been called first.
func (r *CreatePunchRequest) At(now time.Time) time.Time {
	if r.parsedAt.IsZero() {
		return now
	}
	return r.parsedAt.UTC()
}

type PunchResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Timestamp   string  `json:"timestamp"`
	Kind        string  `json:"kind"`
	BreakTypeID *string `json:"break_type_id,omitempty"`
}

type DayPunchesResponse struct {
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Punches    []PunchResponse `json:"punches"`
}
