package metrics

// ReportPayload is a tagged union over the six report shapes: exactly one of
// the shape pointers is non-nil, matching Kind. Modeling it this way lets a
// renderer switch on Kind and handle exactly its shape.
type ReportPayload struct {
	Kind        ReportKind `json:"kind"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	GeneratedAt string     `json:"generated_at"`

	Time             *TimeReport             `json:"time,omitempty"`
	Attendance       *AttendanceReport       `json:"attendance,omitempty"`
	EmployeeSummary  *EmployeeSummaryReport  `json:"employee_summary,omitempty"`
	BreakType        *BreakTypeReport        `json:"break_type,omitempty"`
	Delay            *DelayReport            `json:"delay,omitempty"`
	MonthlyAnalytics *MonthlyAnalyticsReport `json:"monthly_analytics,omitempty"`

	// UnavailableDays lists employee-days whose reconciliation hit an
	// invariant violation; their contributions are excluded, not fatal.
	UnavailableDays []UnavailableDay `json:"unavailable_days,omitempty"`
}

type UnavailableDay struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Reason     string `json:"reason"`
}

// ========================================
// TIME REPORT
// ========================================

type TimeReport struct {
	GroupBy    string          `json:"group_by"`
	TotalHours float64         `json:"total_hours"`
	Groups     []TimeReportRow `json:"groups"`
}

type TimeReportRow struct {
	Period    string  `json:"period"` // 2024-03-04 | 2024-W10 | 2024-03
	Hours     float64 `json:"hours"`
	Entries   int     `json:"entries"`
	Employees int     `json:"employees"` // distinct employees with net time
}

// ========================================
// ATTENDANCE REPORT
// ========================================

type AttendanceReport struct {
	Rows []AttendanceRow `json:"rows"`
}

type AttendanceRow struct {
	EmployeeID         string  `json:"employee_id"`
	WorkedDays         int     `json:"worked_days"`
	AbsentDays         int     `json:"absent_days"` // assigned but zero net
	RestDays           int     `json:"rest_days"`
	UnscheduledDays    int     `json:"unscheduled_days"`
	DaysWithAssignment int     `json:"days_with_assignment"`
	AttendanceRate     float64 `json:"attendance_rate"` // worked / daysWithAssignment
}

// ========================================
// EMPLOYEE SUMMARY REPORT
// ========================================

type EmployeeSummaryReport struct {
	Rows []EmployeeSummaryRow `json:"rows"`
}

type EmployeeSummaryRow struct {
	EmployeeID         string  `json:"employee_id"`
	TotalNetMinutes    int     `json:"total_net_minutes"`
	TotalGrossMinutes  int     `json:"total_gross_minutes"`
	TotalBreakMinutes  int     `json:"total_break_minutes"`
	TotalDelayMinutes  int     `json:"total_delay_minutes"`
	WorkedDays         int     `json:"worked_days"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
}

// ========================================
// BREAK TYPE REPORT
// ========================================

type BreakTypeReport struct {
	Rows         []BreakTypeRow `json:"rows"`
	MostUsedType string         `json:"most_used_type,omitempty"`
}

type BreakTypeRow struct {
	BreakTypeID  string `json:"break_type_id"` // "" => unspecified
	TotalMinutes int    `json:"total_minutes"`
	DaysUsed     int    `json:"days_used"`
}

// ========================================
// DELAY REPORT
// ========================================

type DelayReport struct {
	Rows                []DelayRow `json:"rows"`
	TotalDelayMinutes   int        `json:"total_delay_minutes"`
	AverageDelayMinutes float64    `json:"average_delay_minutes"`
	MostDelayedEmployee string     `json:"most_delayed_employee,omitempty"`
}

type DelayRow struct {
	EmployeeID          string       `json:"employee_id"`
	Entries             []DelayEntry `json:"entries"`
	TotalDelayMinutes   int          `json:"total_delay_minutes"`
	AverageDelayMinutes float64      `json:"average_delay_minutes"`
}

type DelayEntry struct {
	Date         string `json:"date"`
	DelayMinutes int    `json:"delay_minutes"`
}

// ========================================
// MONTHLY ANALYTICS REPORT
// ========================================

type TrendDirection string

const (
	TrendIncreasing       TrendDirection = "increasing"
	TrendDecreasing       TrendDirection = "decreasing"
	TrendStable           TrendDirection = "stable"
	TrendInsufficientData TrendDirection = "insufficient_data"
)

type MonthlyAnalyticsReport struct {
	TotalHours          float64            `json:"total_hours"`
	WeekdayDistribution map[string]float64 `json:"weekday_distribution"` // Monday..Sunday -> hours
	Trend               TrendDirection     `json:"trend"`
	PeakDays            []PeakDay          `json:"peak_days"`
}

type PeakDay struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}
