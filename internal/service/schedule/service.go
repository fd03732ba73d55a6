package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type ShiftServiceImpl struct {
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

// CreateShift implements schedule.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req schedule.CreateShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}

	startMinute, _ := validator.ParseMinuteOfDay(req.StartTime)
	endMinute, _ := validator.ParseMinuteOfDay(req.EndTime)

	shift, err := s.ShiftRepository.Create(ctx, schedule.Shift{
		CompanyID:   companyID,
		Name:        req.Name,
		StartMinute: startMinute,
		EndMinute:   endMinute,
		Color:       req.Color,
	})
	if err != nil {
		if errors.Is(err, schedule.ErrShiftNameExists) {
			return schedule.ShiftResponse{}, schedule.ErrShiftNameExists
		}
		return schedule.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return mapShiftToResponse(shift), nil
}

// GetShift implements schedule.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (schedule.ShiftResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}

	shift, err := s.ShiftRepository.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return schedule.ShiftResponse{}, schedule.ErrShiftNotFound
		}
		return schedule.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return mapShiftToResponse(shift), nil
}

// ListShifts implements schedule.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context) (schedule.ListShiftResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return schedule.ListShiftResponse{}, err
	}

	shifts, total, err := s.ShiftRepository.List(ctx, companyID)
	if err != nil {
		return schedule.ListShiftResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]schedule.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, mapShiftToResponse(shift))
	}

	return schedule.ListShiftResponse{
		TotalCount: total,
		Shifts:     responses,
	}, nil
}

// UpdateShift implements schedule.ShiftService. Historical reports always
// read the latest definition; the engine resolves whatever the catalog holds
// at reconciliation time.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, req schedule.UpdateShiftRequest) (schedule.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return schedule.ShiftResponse{}, err
	}

	shift, err := s.ShiftRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return schedule.ShiftResponse{}, schedule.ErrShiftNotFound
		}
		return schedule.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		shift.StartMinute, _ = validator.ParseMinuteOfDay(*req.StartTime)
	}
	if req.EndTime != nil {
		shift.EndMinute, _ = validator.ParseMinuteOfDay(*req.EndTime)
	}
	if req.Color != nil {
		shift.Color = *req.Color
	}

	if shift.DurationMinutes() == 0 {
		return schedule.ShiftResponse{}, schedule.ErrZeroLengthShift
	}

	updated, err := s.ShiftRepository.Update(ctx, shift)
	if err != nil {
		return schedule.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return mapShiftToResponse(updated), nil
}

// DeleteShift implements schedule.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.ShiftRepository.SoftDelete(ctx, id, companyID); err != nil {
		if errors.Is(err, schedule.ErrShiftNotFound) {
			return schedule.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	return nil
}

func mapShiftToResponse(shift schedule.Shift) schedule.ShiftResponse {
	return schedule.ShiftResponse{
		ID:              shift.ID,
		Name:            shift.Name,
		StartTime:       validator.FormatMinuteOfDay(shift.StartMinute),
		EndTime:         validator.FormatMinuteOfDay(shift.EndMinute),
		Color:           shift.Color,
		DurationMinutes: shift.DurationMinutes(),
		IsOvernight:     shift.IsOvernight(),
		CreatedAt:       shift.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       shift.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewShiftService(shiftRepo schedule.ShiftRepository) schedule.ShiftService {
	return &ShiftServiceImpl{ShiftRepository: shiftRepo}
}
