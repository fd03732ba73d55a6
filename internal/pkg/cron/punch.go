package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/punch"
)

type PunchJobs struct {
	punchRepo punch.PunchRepository
}

func NewPunchJobs(punchRepo punch.PunchRepository) *PunchJobs {
	return &PunchJobs{punchRepo: punchRepo}
}

func (j *PunchJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("flag_dangling_punches", 1*time.Hour, j.FlagDanglingPunches)
}

// FlagDanglingPunches sweeps the previous day's ledger for employees whose
// last In or Break never got its closing event. Closed days drop trailing
// open intervals from the metrics, so a dangling punch is silent lost time
// unless someone sees it and appends the missing event.
func (j *PunchJobs) FlagDanglingPunches(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	events, err := j.punchRepo.GetAllForDate(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to get punches for sweep: %w", err)
	}

	byEmployee := map[string][]punch.Event{}
	for _, e := range events {
		byEmployee[e.EmployeeID] = append(byEmployee[e.EmployeeID], e)
	}

	flagged := 0
	for employeeID, employeeEvents := range byEmployee {
		for _, kind := range DanglingKinds(employeeEvents) {
			flagged++
			slog.Warn("Cron: dangling open punch",
				"employee_id", employeeID,
				"company_id", employeeEvents[0].CompanyID,
				"date", yesterday.Format("2006-01-02"),
				"open_kind", string(kind),
			)
		}
	}

	slog.Info("Cron: dangling punch sweep finished",
		"date", yesterday.Format("2006-01-02"),
		"employees", len(byEmployee),
		"flagged", flagged,
	)
	return nil
}

// DanglingKinds reports which interval kinds one employee's day leaves open:
// an In with no later Out, a Break with no later Resume, or both.
func DanglingKinds(events []punch.Event) []punch.Kind {
	sorted := make([]punch.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	openWork := false
	openBreak := false
	for _, e := range sorted {
		switch e.Kind {
		case punch.KindIn:
			openWork = true
		case punch.KindOut:
			openWork = false
		case punch.KindBreak:
			openBreak = true
		case punch.KindResume:
			openBreak = false
		}
	}

	var kinds []punch.Kind
	if openWork {
		kinds = append(kinds, punch.KindIn)
	}
	if openBreak {
		kinds = append(kinds, punch.KindBreak)
	}
	return kinds
}
