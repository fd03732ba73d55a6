package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/assignment"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/breaktype"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/metrics"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Schedule catalog errors
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrShiftNameExists):
		Conflict(w, "Shift with this name already exists")
	case errors.Is(err, schedule.ErrZeroLengthShift):
		BadRequest(w, "Shift start and end times must differ", nil)

	// Assignment errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrDuplicateRestRow):
		Conflict(w, "Rest marker already set for this day")

	// Punch ledger errors
	case errors.Is(err, breaktype.ErrBreakTypeNotFound):
		NotFound(w, "Break type not found")
	case errors.Is(err, breaktype.ErrBreakTypeNameExists):
		Conflict(w, "Break type with this name already exists")

	// Report errors
	case errors.Is(err, metrics.ErrUnknownReportKind):
		BadRequest(w, "Unknown report kind", nil)
	case errors.Is(err, metrics.ErrInvariantViolation):
		InternalServerError(w, "Attendance data failed a consistency check")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
