package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/metrics"
	"github.com/cmlabs-hris/attendance-engine-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	ReconcileDay(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService    metrics.ReportService
	reconcileService metrics.ReconcileService
}

func NewReportHandler(reportService metrics.ReportService, reconcileService metrics.ReconcileService) ReportHandler {
	return &reportHandlerImpl{
		reportService:    reportService,
		reconcileService: reconcileService,
	}
}

// Generate implements ReportHandler. The report kind comes from the URL; the
// filter from the request body.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req metrics.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Kind = chi.URLParam(r, "kind")

	result, err := h.reportService.GenerateReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

type dayMetricsResponse struct {
	EmployeeID         string         `json:"employee_id"`
	Date               string         `json:"date"`
	GrossMinutes       int            `json:"gross_minutes"`
	NetMinutes         int            `json:"net_minutes"`
	BreakMinutesByType map[string]int `json:"break_minutes_by_type"`
	DelayMinutes       int            `json:"delay_minutes"`
	OutOfScheduleCount int            `json:"out_of_schedule_count"`
	HasAssignment      bool           `json:"has_assignment"`
	IsExplicitRest     bool           `json:"is_explicit_rest"`
	Warnings           []string       `json:"warnings,omitempty"`
}

// ReconcileDay implements ReportHandler. Exposes a single employee-day's
// metrics, mainly for timeline views and debugging.
func (h *reportHandlerImpl) ReconcileDay(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	dateStr := r.URL.Query().Get("date")

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.BadRequest(w, "Query parameter 'date' must be in YYYY-MM-DD format", nil)
		return
	}

	m, err := h.reconcileService.ReconcileEmployeeDay(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dayMetricsResponse{
		EmployeeID:         m.EmployeeID,
		Date:               m.Date.Format("2006-01-02"),
		GrossMinutes:       m.GrossMinutes,
		NetMinutes:         m.NetMinutes,
		BreakMinutesByType: m.BreakMinutesByType,
		DelayMinutes:       m.DelayMinutes,
		OutOfScheduleCount: m.OutOfScheduleCount,
		HasAssignment:      m.HasAssignment,
		IsExplicitRest:     m.IsExplicitRest,
		Warnings:           m.Warnings,
	})
}
