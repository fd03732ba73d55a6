package punch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/breaktype"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/punch"
	"github.com/go-chi/jwtauth/v5"
)

type PunchServiceImpl struct {
	punch.PunchRepository
	breaktype.BreakTypeRepository
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

// RecordPunch implements punch.PunchService. The ledger is append-only and
// deliberately enforces no ordering or pairing policy; reconciliation
// absorbs whatever sequence was captured.
func (s *PunchServiceImpl) RecordPunch(ctx context.Context, req punch.CreatePunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	if req.BreakTypeID != nil {
		if _, err := s.BreakTypeRepository.GetByID(ctx, *req.BreakTypeID, companyID); err != nil {
			if errors.Is(err, breaktype.ErrBreakTypeNotFound) {
				return punch.PunchResponse{}, breaktype.ErrBreakTypeNotFound
			}
			return punch.PunchResponse{}, fmt.Errorf("failed to get break type: %w", err)
		}
	}

	created, err := s.PunchRepository.Create(ctx, punch.Event{
		CompanyID:   companyID,
		EmployeeID:  req.EmployeeID,
		Timestamp:   req.At(time.Now().UTC()),
		Kind:        punch.Kind(req.Kind),
		BreakTypeID: req.BreakTypeID,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to record punch: %w", err)
	}

	return mapPunchToResponse(created), nil
}

// GetDayPunches implements punch.PunchService.
func (s *PunchServiceImpl) GetDayPunches(ctx context.Context, employeeID, date string) (punch.DayPunchesResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return punch.DayPunchesResponse{}, err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return punch.DayPunchesResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	events, err := s.PunchRepository.GetForDate(ctx, employeeID, day, companyID)
	if err != nil {
		return punch.DayPunchesResponse{}, fmt.Errorf("failed to get punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, mapPunchToResponse(e))
	}

	return punch.DayPunchesResponse{
		EmployeeID: employeeID,
		Date:       day.Format("2006-01-02"),
		Punches:    responses,
	}, nil
}

func mapPunchToResponse(e punch.Event) punch.PunchResponse {
	return punch.PunchResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Timestamp:   e.Timestamp.Format(time.RFC3339),
		Kind:        string(e.Kind),
		BreakTypeID: e.BreakTypeID,
	}
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	breakTypeRepo breaktype.BreakTypeRepository,
) punch.PunchService {
	return &PunchServiceImpl{
		PunchRepository:     punchRepo,
		BreakTypeRepository: breakTypeRepo,
	}
}
