package metrics

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

// ReportKind discriminates the six report payload shapes.
type ReportKind string

const (
	ReportKindTime             ReportKind = "time"
	ReportKindAttendance       ReportKind = "attendance"
	ReportKindEmployeeSummary  ReportKind = "employee-summary"
	ReportKindBreakType        ReportKind = "break-type"
	ReportKindDelay            ReportKind = "delay"
	ReportKindMonthlyAnalytics ReportKind = "monthly-analytics"
)

var ReportKindValues = []string{
	string(ReportKindTime),
	string(ReportKindAttendance),
	string(ReportKindEmployeeSummary),
	string(ReportKindBreakType),
	string(ReportKindDelay),
	string(ReportKindMonthlyAnalytics),
}

type GroupBy string

const (
	GroupByDay   GroupBy = "day"
	GroupByWeek  GroupBy = "week"
	GroupByMonth GroupBy = "month"
)

var GroupByValues = []string{
	string(GroupByDay),
	string(GroupByWeek),
	string(GroupByMonth),
}

type ReportRequest struct {
	Kind        string   `json:"-"`
	EmployeeIDs []string `json:"employee_ids"`
	StartDate   string   `json:"start_date"` // YYYY-MM-DD
	EndDate     string   `json:"end_date"`   // YYYY-MM-DD
	GroupBy     string   `json:"group_by"`   // day (default), week, month
	TopN        int      `json:"top_n"`      // peak days, monthly analytics only
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, ReportKindValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: " + strings.Join(ReportKindValues, ", "),
		})
	}

	startDate, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	endDate, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && startDate.After(endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.GroupBy != "" && !validator.IsInSlice(r.GroupBy, GroupByValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "group_by",
			Message: "group_by must be one of: " + strings.Join(GroupByValues, ", "),
		})
	}

	if r.TopN < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "top_n",
			Message: "top_n must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter is the validated, typed form of a ReportRequest as consumed by the
// aggregator. An empty EmployeeIDs slice means all employees in the company.
type Filter struct {
	EmployeeIDs []string
	StartDate   time.Time
	EndDate     time.Time
	GroupBy     GroupBy
	TopN        int
}

// ToFilter converts a validated request. Validate must have been called.
func (r *ReportRequest) ToFilter() Filter {
	startDate, _ := time.Parse("2006-01-02", r.StartDate)
	endDate, _ := time.Parse("2006-01-02", r.EndDate)

	groupBy := GroupBy(r.GroupBy)
	if r.GroupBy == "" {
		groupBy = GroupByDay
	}

	return Filter{
		EmployeeIDs: r.EmployeeIDs,
		StartDate:   startDate,
		EndDate:     endDate,
		GroupBy:     groupBy,
		TopN:        r.TopN,
	}
}
