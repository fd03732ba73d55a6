package breaktype

import "context"

type BreakTypeService interface {
	CreateBreakType(ctx context.Context, req CreateBreakTypeRequest) (BreakTypeResponse, error)
	ListBreakTypes(ctx context.Context) (BreakTypeListResponse, error)
}
