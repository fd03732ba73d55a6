package breaktype

import (
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

type CreateBreakTypeRequest struct {
	Name string `json:"name"`
}

func (r *CreateBreakTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BreakTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BreakTypeListResponse struct {
	BreakTypes []BreakTypeResponse `json:"break_types"`
}
