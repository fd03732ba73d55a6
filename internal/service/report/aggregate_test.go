package report

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(employeeID string, date string, gross, net, delay int) metrics.DayMetrics {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return metrics.DayMetrics{
		EmployeeID:         employeeID,
		Date:               d,
		GrossMinutes:       gross,
		NetMinutes:         net,
		DelayMinutes:       delay,
		BreakMinutesByType: map[string]int{},
		HasAssignment:      gross > 0,
	}
}

func marchFilter() metrics.Filter {
	return metrics.Filter{
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildPayloadUnknownKind(t *testing.T) {
	_, err := BuildPayload("bogus", marchFilter(), nil, nil, time.Now())
	assert.ErrorIs(t, err, metrics.ErrUnknownReportKind)
}

func TestBuildPayloadExactlyOneShape(t *testing.T) {
	days := []metrics.DayMetrics{day("emp-1", "2024-03-04", 480, 475, 10)}

	kinds := []metrics.ReportKind{
		metrics.ReportKindTime,
		metrics.ReportKindAttendance,
		metrics.ReportKindEmployeeSummary,
		metrics.ReportKindBreakType,
		metrics.ReportKindDelay,
		metrics.ReportKindMonthlyAnalytics,
	}

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			payload, err := BuildPayload(kind, marchFilter(), days, nil, time.Now())
			require.NoError(t, err)
			assert.Equal(t, kind, payload.Kind)

			populated := 0
			for _, shape := range []bool{
				payload.Time != nil,
				payload.Attendance != nil,
				payload.EmployeeSummary != nil,
				payload.BreakType != nil,
				payload.Delay != nil,
				payload.MonthlyAnalytics != nil,
			} {
				if shape {
					populated++
				}
			}
			assert.Equal(t, 1, populated)
		})
	}
}

func TestBuildPayloadDayOrderIndependent(t *testing.T) {
	days := []metrics.DayMetrics{
		day("emp-2", "2024-03-05", 480, 460, 20),
		day("emp-1", "2024-03-04", 480, 475, 10),
		day("emp-1", "2024-03-05", 480, 480, 0),
	}
	reversed := []metrics.DayMetrics{days[2], days[1], days[0]}

	generatedAt := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	for _, kind := range []metrics.ReportKind{metrics.ReportKindTime, metrics.ReportKindAttendance, metrics.ReportKindDelay} {
		a, err := BuildPayload(kind, marchFilter(), days, nil, generatedAt)
		require.NoError(t, err)
		b, err := BuildPayload(kind, marchFilter(), reversed, nil, generatedAt)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestTimeReportGrouping(t *testing.T) {
	days := []metrics.DayMetrics{
		day("emp-1", "2024-03-04", 480, 480, 0), // Monday, ISO week 10
		day("emp-2", "2024-03-05", 480, 240, 0),
		day("emp-1", "2024-03-11", 480, 120, 0), // ISO week 11
		day("emp-1", "2024-03-12", 480, 0, 0),   // absent, excluded
	}

	tests := []struct {
		groupBy metrics.GroupBy
		want    []metrics.TimeReportRow
	}{
		{
			groupBy: metrics.GroupByDay,
			want: []metrics.TimeReportRow{
				{Period: "2024-03-04", Hours: 8, Entries: 1, Employees: 1},
				{Period: "2024-03-05", Hours: 4, Entries: 1, Employees: 1},
				{Period: "2024-03-11", Hours: 2, Entries: 1, Employees: 1},
			},
		},
		{
			groupBy: metrics.GroupByWeek,
			want: []metrics.TimeReportRow{
				{Period: "2024-W10", Hours: 12, Entries: 2, Employees: 2},
				{Period: "2024-W11", Hours: 2, Entries: 1, Employees: 1},
			},
		},
		{
			groupBy: metrics.GroupByMonth,
			want: []metrics.TimeReportRow{
				{Period: "2024-03", Hours: 14, Entries: 3, Employees: 2},
			},
		},
	}

	for _, tc := range tests {
		t.Run(string(tc.groupBy), func(t *testing.T) {
			report := buildTimeReport(days, tc.groupBy)
			assert.Equal(t, tc.want, report.Groups)
			assert.InDelta(t, 14.0, report.TotalHours, 1e-9)
		})
	}
}

func TestAttendanceReportClassification(t *testing.T) {
	rest := day("emp-1", "2024-03-06", 0, 0, 0)
	rest.HasAssignment = true
	rest.IsExplicitRest = true

	days := []metrics.DayMetrics{
		day("emp-1", "2024-03-04", 480, 475, 0), // worked
		day("emp-1", "2024-03-05", 480, 0, 0),   // absent
		rest,                                    // rest
		day("emp-1", "2024-03-07", 0, 0, 0),     // unscheduled
		day("emp-2", "2024-03-04", 480, 480, 0),
	}

	report := buildAttendanceReport(days)
	require.Len(t, report.Rows, 2)

	emp1 := report.Rows[0]
	assert.Equal(t, "emp-1", emp1.EmployeeID)
	assert.Equal(t, 1, emp1.WorkedDays)
	assert.Equal(t, 1, emp1.AbsentDays)
	assert.Equal(t, 1, emp1.RestDays)
	assert.Equal(t, 1, emp1.UnscheduledDays)
	assert.Equal(t, 2, emp1.DaysWithAssignment)
	assert.InDelta(t, 0.5, emp1.AttendanceRate, 1e-9)

	emp2 := report.Rows[1]
	assert.Equal(t, "emp-2", emp2.EmployeeID)
	assert.InDelta(t, 1.0, emp2.AttendanceRate, 1e-9)
}

func TestEmployeeSummaryReportAverages(t *testing.T) {
	d1 := day("emp-1", "2024-03-04", 480, 480, 10)
	d1.BreakMinutesByType = map[string]int{"lunch": 30}
	d2 := day("emp-1", "2024-03-05", 480, 240, 0)
	d3 := day("emp-1", "2024-03-06", 480, 0, 0) // absent day drags no average

	report := buildEmployeeSummaryReport([]metrics.DayMetrics{d1, d2, d3})
	require.Len(t, report.Rows, 1)

	row := report.Rows[0]
	assert.Equal(t, 720, row.TotalNetMinutes)
	assert.Equal(t, 1440, row.TotalGrossMinutes)
	assert.Equal(t, 30, row.TotalBreakMinutes)
	assert.Equal(t, 10, row.TotalDelayMinutes)
	assert.Equal(t, 2, row.WorkedDays)
	assert.InDelta(t, 6.0, row.AverageHoursPerDay, 1e-9)
}

func TestBreakTypeReportMostUsedTieBreak(t *testing.T) {
	d1 := day("emp-1", "2024-03-04", 480, 480, 0)
	d1.BreakMinutesByType = map[string]int{"coffee": 30, "lunch": 30}
	d2 := day("emp-2", "2024-03-04", 480, 480, 0)
	d2.BreakMinutesByType = map[string]int{"lunch": 15, "prayer": 0}

	report := buildBreakTypeReport([]metrics.DayMetrics{d1, d2})

	assert.Equal(t, []metrics.BreakTypeRow{
		{BreakTypeID: "coffee", TotalMinutes: 30, DaysUsed: 1},
		{BreakTypeID: "lunch", TotalMinutes: 45, DaysUsed: 2},
	}, report.Rows)
	assert.Equal(t, "lunch", report.MostUsedType)
}

func TestDelayReport(t *testing.T) {
	days := []metrics.DayMetrics{
		day("emp-2", "2024-03-05", 480, 480, 20),
		day("emp-1", "2024-03-04", 480, 480, 10),
		day("emp-1", "2024-03-06", 480, 480, 10),
		day("emp-1", "2024-03-05", 480, 480, 0), // on time, no entry
	}

	report := buildDelayReport(days)
	require.Len(t, report.Rows, 2)

	emp1 := report.Rows[0]
	assert.Equal(t, "emp-1", emp1.EmployeeID)
	assert.Equal(t, []metrics.DelayEntry{
		{Date: "2024-03-04", DelayMinutes: 10},
		{Date: "2024-03-06", DelayMinutes: 10},
	}, emp1.Entries)
	assert.Equal(t, 20, emp1.TotalDelayMinutes)
	assert.InDelta(t, 10.0, emp1.AverageDelayMinutes, 1e-9)

	assert.Equal(t, 40, report.TotalDelayMinutes)
	assert.InDelta(t, 40.0/3.0, report.AverageDelayMinutes, 1e-9)
	// Tie on total delay resolves to the lowest employee id.
	assert.Equal(t, "emp-1", report.MostDelayedEmployee)
}

func TestMonthlyAnalyticsReport(t *testing.T) {
	days := []metrics.DayMetrics{
		day("emp-1", "2024-03-04", 480, 120, 0), // Monday, first half
		day("emp-1", "2024-03-05", 480, 120, 0),
		day("emp-1", "2024-03-25", 480, 480, 0), // second half
		day("emp-1", "2024-03-26", 480, 480, 0),
	}

	report := buildMonthlyAnalyticsReport(days, marchFilter(), 2)

	assert.InDelta(t, 20.0, report.TotalHours, 1e-9)
	assert.InDelta(t, 10.0, report.WeekdayDistribution["Monday"], 1e-9)
	assert.InDelta(t, 10.0, report.WeekdayDistribution["Tuesday"], 1e-9)
	assert.Equal(t, metrics.TrendIncreasing, report.Trend)

	require.Len(t, report.PeakDays, 2)
	// Equal hours tie-break on date ascending.
	assert.Equal(t, metrics.PeakDay{Date: "2024-03-25", Hours: 8}, report.PeakDays[0])
	assert.Equal(t, metrics.PeakDay{Date: "2024-03-26", Hours: 8}, report.PeakDays[1])
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name       string
		first      int
		second     int
		dataPoints int
		want       metrics.TrendDirection
	}{
		{name: "single data point", first: 480, second: 0, dataPoints: 1, want: metrics.TrendInsufficientData},
		{name: "growth above threshold", first: 100, second: 110, dataPoints: 4, want: metrics.TrendIncreasing},
		{name: "drop below threshold", first: 110, second: 100, dataPoints: 4, want: metrics.TrendDecreasing},
		{name: "within threshold", first: 100, second: 104, dataPoints: 4, want: metrics.TrendStable},
		{name: "empty first half with work after", first: 0, second: 480, dataPoints: 2, want: metrics.TrendIncreasing},
		{name: "no work at all", first: 0, second: 0, dataPoints: 2, want: metrics.TrendStable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, trend(tc.first, tc.second, tc.dataPoints))
		})
	}
}

func TestBuildPayloadCarriesUnavailableDays(t *testing.T) {
	unavailable := []metrics.UnavailableDay{
		{EmployeeID: "emp-9", Date: "2024-03-04", Reason: "punch p-1 has a pre-epoch timestamp"},
	}

	payload, err := BuildPayload(metrics.ReportKindAttendance, marchFilter(),
		[]metrics.DayMetrics{day("emp-1", "2024-03-04", 480, 480, 0)}, unavailable, time.Now())
	require.NoError(t, err)

	assert.Equal(t, unavailable, payload.UnavailableDays)
	require.NotNil(t, payload.Attendance)
	require.Len(t, payload.Attendance.Rows, 1)
	assert.Equal(t, "emp-1", payload.Attendance.Rows[0].EmployeeID)
}
