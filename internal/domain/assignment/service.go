package assignment

import "context"

type AssignmentService interface {
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetWeekAssignments(ctx context.Context, employeeID, weekStart string) (WeekAssignmentsResponse, error)
	DeleteAssignment(ctx context.Context, id string) error
}
