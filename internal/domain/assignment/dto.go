package assignment

import (
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	EmployeeID string  `json:"employee_id"`
	WeekStart  string  `json:"week_start"` // YYYY-MM-DD, a Monday
	DayOfWeek  int     `json:"day_of_week"`
	ShiftID    *string `json:"shift_id"`
	IsRest     bool    `json:"is_rest"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	}

	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "day_of_week",
			Message: "day_of_week must be between 0 (Monday) and 6 (Sunday)",
		})
	}

	if r.ShiftID == nil && !r.IsRest {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required unless is_rest is true",
		})
	}

	if r.ShiftID != nil && !validator.IsValidUUID(*r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	WeekStart  string  `json:"week_start"`
	DayOfWeek  int     `json:"day_of_week"`
	Date       string  `json:"date"`
	ShiftID    *string `json:"shift_id,omitempty"`
	IsRest     bool    `json:"is_rest"`
}

type WeekAssignmentsResponse struct {
	EmployeeID  string               `json:"employee_id"`
	WeekStart   string               `json:"week_start"`
	Assignments []AssignmentResponse `json:"assignments"`
}
