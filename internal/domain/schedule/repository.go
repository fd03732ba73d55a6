package schedule

import "context"

// ShiftRepository is the schedule catalog lookup. GetByID returns
// ErrShiftNotFound for stale references; callers that resolve assignments
// must recover from that locally rather than failing the whole day.
type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id, companyID string) (Shift, error)
	GetByIDs(ctx context.Context, ids []string, companyID string) (map[string]Shift, error)
	List(ctx context.Context, companyID string) ([]Shift, int64, error)
	Update(ctx context.Context, shift Shift) (Shift, error)
	SoftDelete(ctx context.Context, id, companyID string) error
}
