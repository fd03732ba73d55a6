package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftRepository struct {
	db *database.DB
}

// Create implements schedule.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (company_id, name, start_minute, end_minute, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		shift.CompanyID,
		shift.Name,
		shift.StartMinute,
		shift.EndMinute,
		shift.Color,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.Shift{}, schedule.ErrShiftNameExists
		}
		return schedule.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift, nil
}

// GetByID implements schedule.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id, companyID string) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, start_minute, end_minute, color, created_at, updated_at
		FROM shifts
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	var shift schedule.Shift
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&shift.ID, &shift.CompanyID, &shift.Name,
		&shift.StartMinute, &shift.EndMinute, &shift.Color,
		&shift.CreatedAt, &shift.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Shift{}, schedule.ErrShiftNotFound
		}
		return schedule.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return shift, nil
}

// GetByIDs implements schedule.ShiftRepository. Missing or deleted ids are
// simply absent from the result map; callers treat them as stale references.
func (r *shiftRepository) GetByIDs(ctx context.Context, ids []string, companyID string) (map[string]schedule.Shift, error) {
	result := make(map[string]schedule.Shift, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, start_minute, end_minute, color, created_at, updated_at
		FROM shifts
		WHERE id = ANY($1) AND company_id = $2 AND deleted_at IS NULL
	`

	rows, err := q.Query(ctx, query, ids, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var shift schedule.Shift
		if err := rows.Scan(
			&shift.ID, &shift.CompanyID, &shift.Name,
			&shift.StartMinute, &shift.EndMinute, &shift.Color,
			&shift.CreatedAt, &shift.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		result[shift.ID] = shift
	}

	return result, rows.Err()
}

// List implements schedule.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context, companyID string) ([]schedule.Shift, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, start_minute, end_minute, color, created_at, updated_at
		FROM shifts
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY start_minute, name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		var shift schedule.Shift
		if err := rows.Scan(
			&shift.ID, &shift.CompanyID, &shift.Name,
			&shift.StartMinute, &shift.EndMinute, &shift.Color,
			&shift.CreatedAt, &shift.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, int64(len(shifts)), rows.Err()
}

// Update implements schedule.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $1, start_minute = $2, end_minute = $3, color = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		shift.Name, shift.StartMinute, shift.EndMinute, shift.Color,
		shift.ID, shift.CompanyID,
	).Scan(&shift.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Shift{}, schedule.ErrShiftNotFound
		}
		return schedule.Shift{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return shift, nil
}

// SoftDelete implements schedule.ShiftRepository. Assignments keep pointing
// at the deleted shift; reconciliation degrades them to stale references.
func (r *shiftRepository) SoftDelete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrShiftNotFound
	}

	return nil
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepository{db: db}
}
