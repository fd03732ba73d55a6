package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/metrics"
)

// trendThreshold is the relative change between period halves above which the
// naive trend flips from stable to increasing/decreasing.
const trendThreshold = 0.05

// BuildPayload folds reconciled employee-days into the requested report
// shape. It is a pure function over the day set: the fold runs through maps
// keyed by employee or period and every output slice is sorted
// deterministically, so day order never affects the result and partial day
// sets computed in parallel can be concatenated in any order.
func BuildPayload(kind metrics.ReportKind, filter metrics.Filter, days []metrics.DayMetrics, unavailable []metrics.UnavailableDay, generatedAt time.Time) (metrics.ReportPayload, error) {
	payload := metrics.ReportPayload{
		Kind:            kind,
		StartDate:       filter.StartDate.Format("2006-01-02"),
		EndDate:         filter.EndDate.Format("2006-01-02"),
		GeneratedAt:     generatedAt.Format("2006-01-02 15:04:05"),
		UnavailableDays: unavailable,
	}

	switch kind {
	case metrics.ReportKindTime:
		payload.Time = buildTimeReport(days, filter.GroupBy)
	case metrics.ReportKindAttendance:
		payload.Attendance = buildAttendanceReport(days)
	case metrics.ReportKindEmployeeSummary:
		payload.EmployeeSummary = buildEmployeeSummaryReport(days)
	case metrics.ReportKindBreakType:
		payload.BreakType = buildBreakTypeReport(days)
	case metrics.ReportKindDelay:
		payload.Delay = buildDelayReport(days)
	case metrics.ReportKindMonthlyAnalytics:
		payload.MonthlyAnalytics = buildMonthlyAnalyticsReport(days, filter, defaultTopN(filter.TopN))
	default:
		return metrics.ReportPayload{}, fmt.Errorf("%w: %q", metrics.ErrUnknownReportKind, kind)
	}

	return payload, nil
}

func defaultTopN(n int) int {
	if n <= 0 {
		return 5
	}
	return n
}

func hours(minutes int) float64 {
	return float64(minutes) / 60.0
}

// periodKey renders the grouping bucket for a date: the day itself, the ISO
// week, or the calendar month.
func periodKey(date time.Time, groupBy metrics.GroupBy) string {
	switch groupBy {
	case metrics.GroupByWeek:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case metrics.GroupByMonth:
		return date.Format("2006-01")
	default:
		return date.Format("2006-01-02")
	}
}

func buildTimeReport(days []metrics.DayMetrics, groupBy metrics.GroupBy) *metrics.TimeReport {
	type group struct {
		minutes   int
		entries   int
		employees map[string]struct{}
	}
	groups := map[string]*group{}
	totalMinutes := 0

	for _, d := range days {
		if !d.Worked() {
			continue
		}
		key := periodKey(d.Date, groupBy)
		g, ok := groups[key]
		if !ok {
			g = &group{employees: map[string]struct{}{}}
			groups[key] = g
		}
		g.minutes += d.NetMinutes
		g.entries++
		g.employees[d.EmployeeID] = struct{}{}
		totalMinutes += d.NetMinutes
	}

	rows := make([]metrics.TimeReportRow, 0, len(groups))
	for key, g := range groups {
		rows = append(rows, metrics.TimeReportRow{
			Period:    key,
			Hours:     hours(g.minutes),
			Entries:   g.entries,
			Employees: len(g.employees),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Period < rows[j].Period })

	return &metrics.TimeReport{
		GroupBy:    string(groupBy),
		TotalHours: hours(totalMinutes),
		Groups:     rows,
	}
}

func buildAttendanceReport(days []metrics.DayMetrics) *metrics.AttendanceReport {
	rowsByEmployee := map[string]*metrics.AttendanceRow{}

	for _, d := range days {
		row, ok := rowsByEmployee[d.EmployeeID]
		if !ok {
			row = &metrics.AttendanceRow{EmployeeID: d.EmployeeID}
			rowsByEmployee[d.EmployeeID] = row
		}
		switch {
		case d.Worked():
			row.WorkedDays++
		case d.Absent():
			row.AbsentDays++
		case d.IsExplicitRest:
			row.RestDays++
		case !d.HasAssignment:
			row.UnscheduledDays++
		}
		if d.GrossMinutes > 0 {
			row.DaysWithAssignment++
		}
	}

	rows := make([]metrics.AttendanceRow, 0, len(rowsByEmployee))
	for _, row := range rowsByEmployee {
		if row.DaysWithAssignment > 0 {
			row.AttendanceRate = float64(row.WorkedDays) / float64(row.DaysWithAssignment)
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].EmployeeID < rows[j].EmployeeID })

	return &metrics.AttendanceReport{Rows: rows}
}

func buildEmployeeSummaryReport(days []metrics.DayMetrics) *metrics.EmployeeSummaryReport {
	rowsByEmployee := map[string]*metrics.EmployeeSummaryRow{}

	for _, d := range days {
		row, ok := rowsByEmployee[d.EmployeeID]
		if !ok {
			row = &metrics.EmployeeSummaryRow{EmployeeID: d.EmployeeID}
			rowsByEmployee[d.EmployeeID] = row
		}
		row.TotalNetMinutes += d.NetMinutes
		row.TotalGrossMinutes += d.GrossMinutes
		row.TotalBreakMinutes += d.TotalBreakMinutes()
		row.TotalDelayMinutes += d.DelayMinutes
		if d.Worked() {
			row.WorkedDays++
		}
	}

	rows := make([]metrics.EmployeeSummaryRow, 0, len(rowsByEmployee))
	for _, row := range rowsByEmployee {
		if row.WorkedDays > 0 {
			row.AverageHoursPerDay = hours(row.TotalNetMinutes) / float64(row.WorkedDays)
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].EmployeeID < rows[j].EmployeeID })

	return &metrics.EmployeeSummaryReport{Rows: rows}
}

func buildBreakTypeReport(days []metrics.DayMetrics) *metrics.BreakTypeReport {
	rowsByType := map[string]*metrics.BreakTypeRow{}

	for _, d := range days {
		for typeID, minutes := range d.BreakMinutesByType {
			if minutes == 0 {
				continue
			}
			row, ok := rowsByType[typeID]
			if !ok {
				row = &metrics.BreakTypeRow{BreakTypeID: typeID}
				rowsByType[typeID] = row
			}
			row.TotalMinutes += minutes
			row.DaysUsed++
		}
	}

	rows := make([]metrics.BreakTypeRow, 0, len(rowsByType))
	for _, row := range rowsByType {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].BreakTypeID < rows[j].BreakTypeID })

	mostUsed := ""
	bestMinutes := 0
	for _, row := range rows {
		// rows are sorted by id, so the first maximum wins ties.
		if row.TotalMinutes > bestMinutes {
			mostUsed = row.BreakTypeID
			bestMinutes = row.TotalMinutes
		}
	}

	return &metrics.BreakTypeReport{Rows: rows, MostUsedType: mostUsed}
}

func buildDelayReport(days []metrics.DayMetrics) *metrics.DelayReport {
	rowsByEmployee := map[string]*metrics.DelayRow{}
	totalDelay := 0
	totalEntries := 0

	for _, d := range days {
		if d.DelayMinutes <= 0 {
			continue
		}
		row, ok := rowsByEmployee[d.EmployeeID]
		if !ok {
			row = &metrics.DelayRow{EmployeeID: d.EmployeeID}
			rowsByEmployee[d.EmployeeID] = row
		}
		row.Entries = append(row.Entries, metrics.DelayEntry{
			Date:         d.Date.Format("2006-01-02"),
			DelayMinutes: d.DelayMinutes,
		})
		row.TotalDelayMinutes += d.DelayMinutes
		totalDelay += d.DelayMinutes
		totalEntries++
	}

	rows := make([]metrics.DelayRow, 0, len(rowsByEmployee))
	for _, row := range rowsByEmployee {
		sort.Slice(row.Entries, func(i, j int) bool { return row.Entries[i].Date < row.Entries[j].Date })
		row.AverageDelayMinutes = float64(row.TotalDelayMinutes) / float64(len(row.Entries))
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].EmployeeID < rows[j].EmployeeID })

	mostDelayed := ""
	bestDelay := 0
	for _, row := range rows {
		// ties resolve to the lowest employee id via the sort above.
		if row.TotalDelayMinutes > bestDelay {
			mostDelayed = row.EmployeeID
			bestDelay = row.TotalDelayMinutes
		}
	}

	report := &metrics.DelayReport{
		Rows:                rows,
		TotalDelayMinutes:   totalDelay,
		MostDelayedEmployee: mostDelayed,
	}
	if totalEntries > 0 {
		report.AverageDelayMinutes = float64(totalDelay) / float64(totalEntries)
	}
	return report
}

func buildMonthlyAnalyticsReport(days []metrics.DayMetrics, filter metrics.Filter, topN int) *metrics.MonthlyAnalyticsReport {
	weekday := map[string]float64{}
	minutesByDate := map[string]int{}
	totalMinutes := 0
	firstHalfMinutes := 0
	secondHalfMinutes := 0
	dataPoints := 0

	// The period midpoint splits the naive trend halves.
	mid := filter.StartDate.Add(filter.EndDate.Sub(filter.StartDate) / 2)

	for _, d := range days {
		if !d.Worked() {
			continue
		}
		totalMinutes += d.NetMinutes
		weekday[d.Date.Weekday().String()] += hours(d.NetMinutes)
		minutesByDate[d.Date.Format("2006-01-02")] += d.NetMinutes
		dataPoints++
		if d.Date.After(mid) {
			secondHalfMinutes += d.NetMinutes
		} else {
			firstHalfMinutes += d.NetMinutes
		}
	}

	peaks := make([]metrics.PeakDay, 0, len(minutesByDate))
	for date, minutes := range minutesByDate {
		peaks = append(peaks, metrics.PeakDay{Date: date, Hours: hours(minutes)})
	}
	sort.Slice(peaks, func(i, j int) bool {
		if peaks[i].Hours != peaks[j].Hours {
			return peaks[i].Hours > peaks[j].Hours
		}
		return peaks[i].Date < peaks[j].Date
	})
	if len(peaks) > topN {
		peaks = peaks[:topN]
	}

	return &metrics.MonthlyAnalyticsReport{
		TotalHours:          hours(totalMinutes),
		WeekdayDistribution: weekday,
		Trend:               trend(firstHalfMinutes, secondHalfMinutes, dataPoints),
		PeakDays:            peaks,
	}
}

func trend(firstHalfMinutes, secondHalfMinutes, dataPoints int) metrics.TrendDirection {
	if dataPoints < 2 {
		return metrics.TrendInsufficientData
	}
	if firstHalfMinutes == 0 {
		if secondHalfMinutes > 0 {
			return metrics.TrendIncreasing
		}
		return metrics.TrendStable
	}
	change := (float64(secondHalfMinutes) - float64(firstHalfMinutes)) / float64(firstHalfMinutes)
	switch {
	case change > trendThreshold:
		return metrics.TrendIncreasing
	case change < -trendThreshold:
		return metrics.TrendDecreasing
	default:
		return metrics.TrendStable
	}
}
