package breaktype

import "context"

type BreakTypeRepository interface {
	Create(ctx context.Context, bt BreakType) (BreakType, error)
	GetByID(ctx context.Context, id, companyID string) (BreakType, error)
	List(ctx context.Context, companyID string) ([]BreakType, error)
}
