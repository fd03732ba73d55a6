package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/assignment"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/metrics"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/schedule"
	"github.com/go-chi/jwtauth/v5"
)

type DayServiceImpl struct {
	assignment.AssignmentRepository
	schedule.ShiftRepository
	punch.PunchRepository
	logger *slog.Logger
}

// ReconcileEmployeeDay implements metrics.ReconcileService. It materializes
// one employee-day's assignments, shifts and punches and runs the pure
// reconciliation over them.
func (s *DayServiceImpl) ReconcileEmployeeDay(ctx context.Context, employeeID string, date time.Time) (metrics.DayMetrics, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return metrics.DayMetrics{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return metrics.DayMetrics{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	assignments, err := s.AssignmentRepository.GetForDate(ctx, employeeID, date, companyID)
	if err != nil {
		return metrics.DayMetrics{}, fmt.Errorf("failed to get assignments: %w", err)
	}

	shiftIDs := distinctShiftIDs(assignments)
	catalog, err := s.ShiftRepository.GetByIDs(ctx, shiftIDs, companyID)
	if err != nil {
		return metrics.DayMetrics{}, fmt.Errorf("failed to resolve shifts: %w", err)
	}

	shifts, warnings := ResolveShifts(assignments, catalog)
	for _, w := range warnings {
		s.logger.Warn("degraded reconciliation input",
			slog.String("employee_id", employeeID),
			slog.String("date", date.Format("2006-01-02")),
			slog.String("warning", w),
		)
	}

	punches, err := s.PunchRepository.GetForDate(ctx, employeeID, date, companyID)
	if err != nil {
		return metrics.DayMetrics{}, fmt.Errorf("failed to get punches: %w", err)
	}

	return Day(DayInput{
		EmployeeID:  employeeID,
		Date:        date,
		Shifts:      shifts,
		Assignments: assignments,
		Punches:     punches,
		Now:         AsOf(date, time.Now().UTC()),
		Warnings:    warnings,
	})
}

// AsOf returns the instant to close open-ended intervals against: now when
// the reconciled date is the current day, the zero time for closed days.
func AsOf(date, now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	dy, dm, dd := date.UTC().Date()
	if y == dy && m == dm && d == dd {
		return now
	}
	return time.Time{}
}

// ResolveShifts maps assignment rows to shift definitions through the
// catalog. Assignments pointing at deleted shifts are skipped with a warning
// rather than failing the day.
func ResolveShifts(assignments []assignment.Assignment, catalog map[string]schedule.Shift) ([]schedule.Shift, []string) {
	var shifts []schedule.Shift
	var warnings []string
	for _, a := range assignments {
		if a.ShiftID == nil {
			continue
		}
		shift, ok := catalog[*a.ShiftID]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("assignment %s references deleted shift %s", a.ID, *a.ShiftID))
			continue
		}
		shifts = append(shifts, shift)
	}
	return shifts, warnings
}

func distinctShiftIDs(assignments []assignment.Assignment) []string {
	seen := map[string]struct{}{}
	var ids []string
	for _, a := range assignments {
		if a.ShiftID == nil {
			continue
		}
		if _, ok := seen[*a.ShiftID]; ok {
			continue
		}
		seen[*a.ShiftID] = struct{}{}
		ids = append(ids, *a.ShiftID)
	}
	return ids
}

func NewDayService(
	assignmentRepo assignment.AssignmentRepository,
	shiftRepo schedule.ShiftRepository,
	punchRepo punch.PunchRepository,
	logger *slog.Logger,
) metrics.ReconcileService {
	return &DayServiceImpl{
		AssignmentRepository: assignmentRepo,
		ShiftRepository:      shiftRepo,
		PunchRepository:      punchRepo,
		logger:               logger,
	}
}
