package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
)

// ShiftFilter captures schedule query parameters. From and To bound
// shift_date inclusively.
type ShiftFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// ShiftRepository encapsulates shift persistence. Ownership changes caused
// by an approved swap go through SwapRequestRepository so they commit in
// the same transaction as the swap status.
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	Update(ctx context.Context, shift *domain.Shift) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
	List(ctx context.Context, filter ShiftFilter) ([]domain.Shift, error)
}

type shiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository returns a Postgres-backed implementation.
func NewShiftRepository(pool *pgxpool.Pool) ShiftRepository {
	return &shiftRepository{pool: pool}
}

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	const query = `
        INSERT INTO shifts (employee_id, shift_date, shift_type)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		shift.EmployeeID,
		shift.Date,
		shift.Type,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *shiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	const query = `
        UPDATE shifts SET employee_id=$1, shift_date=$2, shift_type=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		shift.EmployeeID,
		shift.Date,
		shift.Type,
		shift.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shifts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	const query = `
        SELECT id, employee_id, shift_date, shift_type, created_at, updated_at
        FROM shifts WHERE id=$1`

	var shift domain.Shift
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&shift.ID,
		&shift.EmployeeID,
		&shift.Date,
		&shift.Type,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) List(ctx context.Context, filter ShiftFilter) ([]domain.Shift, error) {
	base := `SELECT id, employee_id, shift_date, shift_type, created_at, updated_at
             FROM shifts`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		clauses = append(clauses, fmt.Sprintf("employee_id=$%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		clauses = append(clauses, fmt.Sprintf("shift_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		clauses = append(clauses, fmt.Sprintf("shift_date <= $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY shift_date ASC, employee_id ASC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShifts(rows)
}

func scanShifts(rows pgx.Rows) ([]domain.Shift, error) {
	var result []domain.Shift
	for rows.Next() {
		var shift domain.Shift
		if err := rows.Scan(
			&shift.ID,
			&shift.EmployeeID,
			&shift.Date,
			&shift.Type,
			&shift.CreatedAt,
			&shift.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, shift)
	}
	return result, rows.Err()
}
