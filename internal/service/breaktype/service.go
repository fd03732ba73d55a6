package breaktype

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/breaktype"
	"github.com/go-chi/jwtauth/v5"
)

type BreakTypeServiceImpl struct {
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

// CreateBreakType implements breaktype.BreakTypeService.
func (s *BreakTypeServiceImpl) CreateBreakType(ctx context.Context, req breaktype.CreateBreakTypeRequest) (breaktype.BreakTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return breaktype.BreakTypeResponse{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return breaktype.BreakTypeResponse{}, err
	}

	created, err := s.BreakTypeRepository.Create(ctx, breaktype.BreakType{
		CompanyID: companyID,
		Name:      req.Name,
	})
	if err != nil {
		if errors.Is(err, breaktype.ErrBreakTypeNameExists) {
			return breaktype.BreakTypeResponse{}, breaktype.ErrBreakTypeNameExists
		}
		return breaktype.BreakTypeResponse{}, fmt.Errorf("failed to create break type: %w", err)
	}

	return breaktype.BreakTypeResponse{ID: created.ID, Name: created.Name}, nil
}

// ListBreakTypes implements breaktype.BreakTypeService.
func (s *BreakTypeServiceImpl) ListBreakTypes(ctx context.Context) (breaktype.BreakTypeListResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return breaktype.BreakTypeListResponse{}, err
	}

	breakTypes, err := s.BreakTypeRepository.List(ctx, companyID)
	if err != nil {
		return breaktype.BreakTypeListResponse{}, fmt.Errorf("failed to list break types: %w", err)
	}

	responses := make([]breaktype.BreakTypeResponse, 0, len(breakTypes))
	for _, bt := range breakTypes {
		responses = append(responses, breaktype.BreakTypeResponse{ID: bt.ID, Name: bt.Name})
	}

	return breaktype.BreakTypeListResponse{BreakTypes: responses}, nil
}

func NewBreakTypeService(breakTypeRepo breaktype.BreakTypeRepository) breaktype.BreakTypeService {
	return &BreakTypeServiceImpl{
		BreakTypeRepository: breakTypeRepo,
	}
}
