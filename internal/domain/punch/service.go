package punch

import "context"

type PunchService interface {
	RecordPunch(ctx context.Context, req CreatePunchRequest) (PunchResponse, error)
	GetDayPunches(ctx context.Context, employeeID, date string) (DayPunchesResponse, error)
}
