package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/assignment"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type assignmentRepository struct {
	db *database.DB
}

const assignmentColumns = `id, company_id, employee_id, week_start, day_of_week, shift_id, is_rest, created_at, updated_at`

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepository) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assignments (company_id, employee_id, week_start, day_of_week, shift_id, is_rest)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.CompanyID,
		a.EmployeeID,
		a.WeekStart,
		a.DayOfWeek,
		a.ShiftID,
		a.IsRest,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return assignment.Assignment{}, assignment.ErrDuplicateRestRow
		}
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return a, nil
}

// GetForDate implements assignment.AssignmentRepository. Returns the empty
// slice for a day with no configured schedule.
func (r *assignmentRepository) GetForDate(ctx context.Context, employeeID string, date time.Time, companyID string) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE employee_id = $1
		  AND company_id = $2
		  AND week_start + day_of_week = $3::date
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments for date: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetForRange implements assignment.AssignmentRepository. An empty
// employeeIDs slice selects all employees in the company.
func (r *assignmentRepository) GetForRange(ctx context.Context, employeeIDs []string, startDate, endDate time.Time, companyID string) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE company_id = $1
		  AND week_start + day_of_week BETWEEN $2::date AND $3::date
		  AND (cardinality($4::text[]) = 0 OR employee_id = ANY($4))
		ORDER BY employee_id, week_start, day_of_week, created_at
	`

	if employeeIDs == nil {
		employeeIDs = []string{}
	}

	rows, err := q.Query(ctx, query, companyID, startDate, endDate, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments for range: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetWeek implements assignment.AssignmentRepository.
func (r *assignmentRepository) GetWeek(ctx context.Context, employeeID string, weekStart time.Time, companyID string) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE employee_id = $1 AND company_id = $2 AND week_start = $3
		ORDER BY day_of_week, created_at
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get week assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// Delete implements assignment.AssignmentRepository.
func (r *assignmentRepository) Delete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM assignments WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}

func scanAssignments(rows pgx.Rows) ([]assignment.Assignment, error) {
	var assignments []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.EmployeeID, &a.WeekStart, &a.DayOfWeek,
			&a.ShiftID, &a.IsRest, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepository{db: db}
}
