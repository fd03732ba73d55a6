package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/assignment"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/schedule"
	"github.com/go-chi/jwtauth/v5"
)

type AssignmentServiceImpl struct {
	assignment.AssignmentRepository
	schedule.ShiftRepository
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// CreateAssignment implements assignment.AssignmentService. The referenced
// shift must exist at assignment time; later deletion of the shift leaves a
// stale reference that reconciliation recovers from.
func (s *AssignmentServiceImpl) CreateAssignment(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	if req.ShiftID != nil {
		if _, err := s.ShiftRepository.GetByID(ctx, *req.ShiftID, companyID); err != nil {
			if errors.Is(err, schedule.ErrShiftNotFound) {
				return assignment.AssignmentResponse{}, schedule.ErrShiftNotFound
			}
			return assignment.AssignmentResponse{}, fmt.Errorf("failed to get shift: %w", err)
		}
	}

	weekStart, _ := time.Parse("2006-01-02", req.WeekStart)
	weekStart = assignment.WeekStartOf(weekStart)

	created, err := s.AssignmentRepository.Create(ctx, assignment.Assignment{
		CompanyID:  companyID,
		EmployeeID: req.EmployeeID,
		WeekStart:  weekStart,
		DayOfWeek:  req.DayOfWeek,
		ShiftID:    req.ShiftID,
		IsRest:     req.IsRest,
	})
	if err != nil {
		if errors.Is(err, assignment.ErrDuplicateRestRow) {
			return assignment.AssignmentResponse{}, assignment.ErrDuplicateRestRow
		}
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return mapAssignmentToResponse(created), nil
}

// GetWeekAssignments implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) GetWeekAssignments(ctx context.Context, employeeID, weekStart string) (assignment.WeekAssignmentsResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return assignment.WeekAssignmentsResponse{}, err
	}

	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		return assignment.WeekAssignmentsResponse{}, fmt.Errorf("invalid week start date: %w", err)
	}
	start = assignment.WeekStartOf(start)

	assignments, err := s.AssignmentRepository.GetWeek(ctx, employeeID, start, companyID)
	if err != nil {
		return assignment.WeekAssignmentsResponse{}, fmt.Errorf("failed to get week assignments: %w", err)
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, mapAssignmentToResponse(a))
	}

	return assignment.WeekAssignmentsResponse{
		EmployeeID:  employeeID,
		WeekStart:   start.Format("2006-01-02"),
		Assignments: responses,
	}, nil
}

// DeleteAssignment implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.AssignmentRepository.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, assignment.ErrAssignmentNotFound) {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}

func mapAssignmentToResponse(a assignment.Assignment) assignment.AssignmentResponse {
	return assignment.AssignmentResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		WeekStart:  a.WeekStart.Format("2006-01-02"),
		DayOfWeek:  a.DayOfWeek,
		Date:       a.Date().Format("2006-01-02"),
		ShiftID:    a.ShiftID,
		IsRest:     a.IsRest,
	}
}

func NewAssignmentService(
	assignmentRepo assignment.AssignmentRepository,
	shiftRepo schedule.ShiftRepository,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		AssignmentRepository: assignmentRepo,
		ShiftRepository:      shiftRepo,
	}
}
