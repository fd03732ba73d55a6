package postgresql

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type punchRepository struct {
	db *database.DB
}

const punchColumns = `id, company_id, employee_id, ts, kind, break_type_id, created_at`

// Create implements punch.PunchRepository. Appends serialize per employee
// through an advisory lock so a concurrent reconciliation run never observes
// a half-written pair.
func (r *punchRepository) Create(ctx context.Context, e punch.Event) (punch.Event, error) {
	e.ID = uuid.NewString()

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, employeeLockKey(e.EmployeeID)); err != nil {
			return fmt.Errorf("failed to acquire punch lock: %w", err)
		}

		query := `
			INSERT INTO punches (id, company_id, employee_id, ts, kind, break_type_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at
		`
		return tx.QueryRow(ctx, query,
			e.ID, e.CompanyID, e.EmployeeID, e.Timestamp, string(e.Kind), e.BreakTypeID,
		).Scan(&e.CreatedAt)
	})
	if err != nil {
		return punch.Event{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return e, nil
}

// GetForDate implements punch.PunchRepository. Events come back ascending by
// timestamp.
func (r *punchRepository) GetForDate(ctx context.Context, employeeID string, date time.Time, companyID string) ([]punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE employee_id = $1
		  AND company_id = $2
		  AND ts >= $3::date AND ts < $3::date + 1
		ORDER BY ts
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get punches for date: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// GetForRange implements punch.PunchRepository. An empty employeeIDs slice
// selects all employees in the company.
func (r *punchRepository) GetForRange(ctx context.Context, employeeIDs []string, startDate, endDate time.Time, companyID string) ([]punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE company_id = $1
		  AND ts >= $2::date AND ts < $3::date + 1
		  AND (cardinality($4::text[]) = 0 OR employee_id = ANY($4))
		ORDER BY employee_id, ts
	`

	if employeeIDs == nil {
		employeeIDs = []string{}
	}

	rows, err := q.Query(ctx, query, companyID, startDate, endDate, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get punches for range: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

// GetAllForDate implements punch.PunchRepository. It ignores company scoping
// and feeds the dangling-punch sweep.
func (r *punchRepository) GetAllForDate(ctx context.Context, date time.Time) ([]punch.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punches
		WHERE ts >= $1::date AND ts < $1::date + 1
		ORDER BY employee_id, ts
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get punches for date: %w", err)
	}
	defer rows.Close()

	return scanPunches(rows)
}

func scanPunches(rows pgx.Rows) ([]punch.Event, error) {
	var events []punch.Event
	for rows.Next() {
		var e punch.Event
		var kind string
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.EmployeeID, &e.Timestamp, &kind, &e.BreakTypeID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		e.Kind = punch.Kind(kind)
		events = append(events, e)
	}
	return events, rows.Err()
}

func employeeLockKey(employeeID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(employeeID))
	return int64(h.Sum64())
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}
