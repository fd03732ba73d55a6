package metrics

import (
	"context"
	"time"
)

// ReconcileService resolves one employee-day's assignments and punches and
// reconciles them into a DayMetrics.
type ReconcileService interface {
	ReconcileEmployeeDay(ctx context.Context, employeeID string, date time.Time) (DayMetrics, error)
}

// ReportService folds reconciled employee-days into one of the six report
// shapes.
type ReportService interface {
	GenerateReport(ctx context.Context, req ReportRequest) (ReportPayload, error)
}
