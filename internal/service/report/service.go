package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/assignment"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/metrics"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-engine-go/internal/service/reconcile"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	assignment.AssignmentRepository
	schedule.ShiftRepository
	punch.PunchRepository
	logger         *slog.Logger
	maxConcurrency int
	peakDaysTopN   int
}

// GenerateReport implements metrics.ReportService. It materializes the whole
// date range in bulk, reconciles every employee-day concurrently, and folds
// the results into the requested report shape. Employee-days that hit an
// invariant violation are reported as unavailable instead of failing the run.
func (s *ReportServiceImpl) GenerateReport(ctx context.Context, req metrics.ReportRequest) (metrics.ReportPayload, error) {
	if err := req.Validate(); err != nil {
		return metrics.ReportPayload{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return metrics.ReportPayload{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return metrics.ReportPayload{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	filter := req.ToFilter()
	if filter.TopN == 0 {
		filter.TopN = s.peakDaysTopN
	}

	assignments, err := s.AssignmentRepository.GetForRange(ctx, filter.EmployeeIDs, filter.StartDate, filter.EndDate, companyID)
	if err != nil {
		return metrics.ReportPayload{}, fmt.Errorf("failed to get assignments: %w", err)
	}

	punches, err := s.PunchRepository.GetForRange(ctx, filter.EmployeeIDs, filter.StartDate, filter.EndDate, companyID)
	if err != nil {
		return metrics.ReportPayload{}, fmt.Errorf("failed to get punches: %w", err)
	}

	catalog, err := s.ShiftRepository.GetByIDs(ctx, shiftIDsOf(assignments), companyID)
	if err != nil {
		return metrics.ReportPayload{}, fmt.Errorf("failed to resolve shifts: %w", err)
	}

	units := buildUnits(filter, assignments, punches, catalog)

	type outcome struct {
		day         metrics.DayMetrics
		unavailable *metrics.UnavailableDay
	}
	outcomes := make([]outcome, len(units))

	now := time.Now().UTC()
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, unit := range units {
		g.Go(func() error {
			unit.Now = reconcile.AsOf(unit.Date, now)
			day, err := reconcile.Day(unit)
			if err != nil {
				if !errors.Is(err, metrics.ErrInvariantViolation) {
					return err
				}
				s.logger.Warn("employee-day excluded from report",
					slog.String("employee_id", unit.EmployeeID),
					slog.String("date", unit.Date.Format("2006-01-02")),
					slog.String("reason", err.Error()),
				)
				outcomes[i] = outcome{unavailable: &metrics.UnavailableDay{
					EmployeeID: unit.EmployeeID,
					Date:       unit.Date.Format("2006-01-02"),
					Reason:     err.Error(),
				}}
				return nil
			}
			outcomes[i] = outcome{day: day}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return metrics.ReportPayload{}, fmt.Errorf("failed to reconcile range: %w", err)
	}

	days := make([]metrics.DayMetrics, 0, len(outcomes))
	var unavailable []metrics.UnavailableDay
	for _, o := range outcomes {
		if o.unavailable != nil {
			unavailable = append(unavailable, *o.unavailable)
			continue
		}
		days = append(days, o.day)
	}

	return BuildPayload(metrics.ReportKind(req.Kind), filter, days, unavailable, now)
}

// buildUnits expands the filtered range into one reconciliation unit per
// employee per calendar day. When the request names no employees, scope is
// every employee appearing in the range's assignments or punches.
func buildUnits(filter metrics.Filter, assignments []assignment.Assignment, punches []punch.Event, catalog map[string]schedule.Shift) []reconcile.DayInput {
	const dayKey = "2006-01-02"

	assignmentsByUnit := map[string][]assignment.Assignment{}
	for _, a := range assignments {
		key := a.EmployeeID + "|" + a.Date().Format(dayKey)
		assignmentsByUnit[key] = append(assignmentsByUnit[key], a)
	}

	punchesByUnit := map[string][]punch.Event{}
	for _, e := range punches {
		key := e.EmployeeID + "|" + e.Timestamp.UTC().Format(dayKey)
		punchesByUnit[key] = append(punchesByUnit[key], e)
	}

	employeeIDs := filter.EmployeeIDs
	if len(employeeIDs) == 0 {
		seen := map[string]struct{}{}
		for _, a := range assignments {
			seen[a.EmployeeID] = struct{}{}
		}
		for _, e := range punches {
			seen[e.EmployeeID] = struct{}{}
		}
		for id := range seen {
			employeeIDs = append(employeeIDs, id)
		}
	}

	var units []reconcile.DayInput
	for _, employeeID := range employeeIDs {
		for date := filter.StartDate; !date.After(filter.EndDate); date = date.AddDate(0, 0, 1) {
			key := employeeID + "|" + date.Format(dayKey)
			dayAssignments := assignmentsByUnit[key]
			shifts, warnings := reconcile.ResolveShifts(dayAssignments, catalog)
			units = append(units, reconcile.DayInput{
				EmployeeID:  employeeID,
				Date:        date,
				Shifts:      shifts,
				Assignments: dayAssignments,
				Punches:     punchesByUnit[key],
				Warnings:    warnings,
			})
		}
	}
	return units
}

func shiftIDsOf(assignments []assignment.Assignment) []string {
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

func NewReportService(
	assignmentRepo assignment.AssignmentRepository,
	shiftRepo schedule.ShiftRepository,
	punchRepo punch.PunchRepository,
	logger *slog.Logger,
	maxConcurrency int,
	peakDaysTopN int,
) metrics.ReportService {
	if maxConcurrency <= 0 {
		maxConcurrency = 8
	}
	return &ReportServiceImpl{
		AssignmentRepository: assignmentRepo,
		ShiftRepository:      shiftRepo,
		PunchRepository:      punchRepo,
		logger:               logger,
		maxConcurrency:       maxConcurrency,
		peakDaysTopN:         peakDaysTopN,
	}
}
