package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/breaktype"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type breakTypeRepository struct {
	db *database.DB
}

// Create implements breaktype.BreakTypeRepository.
func (r *breakTypeRepository) Create(ctx context.Context, bt breaktype.BreakType) (breaktype.BreakType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO break_types (company_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, bt.CompanyID, bt.Name).Scan(&bt.ID, &bt.CreatedAt, &bt.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return breaktype.BreakType{}, breaktype.ErrBreakTypeNameExists
		}
		return breaktype.BreakType{}, fmt.Errorf("failed to create break type: %w", err)
	}

	return bt, nil
}

// GetByID implements breaktype.BreakTypeRepository.
func (r *breakTypeRepository) GetByID(ctx context.Context, id, companyID string) (breaktype.BreakType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM break_types
		WHERE id = $1 AND company_id = $2
	`

	var bt breaktype.BreakType
	err := q.QueryRow(ctx, query, id, companyID).Scan(&bt.ID, &bt.CompanyID, &bt.Name, &bt.CreatedAt, &bt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return breaktype.BreakType{}, breaktype.ErrBreakTypeNotFound
		}
		return breaktype.BreakType{}, fmt.Errorf("failed to get break type: %w", err)
	}

	return bt, nil
}

// List implements breaktype.BreakTypeRepository.
func (r *breakTypeRepository) List(ctx context.Context, companyID string) ([]breaktype.BreakType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM break_types
		WHERE company_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list break types: %w", err)
	}
	defer rows.Close()

	var breakTypes []breaktype.BreakType
	for rows.Next() {
		var bt breaktype.BreakType
		if err := rows.Scan(&bt.ID, &bt.CompanyID, &bt.Name, &bt.CreatedAt, &bt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan break type: %w", err)
		}
		breakTypes = append(breakTypes, bt)
	}

	return breakTypes, rows.Err()
}

func NewBreakTypeRepository(db *database.DB) breaktype.BreakTypeRepository {
	return &breakTypeRepository{db: db}
}
