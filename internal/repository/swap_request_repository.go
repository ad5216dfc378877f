package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
	"github.com/AhmedEssamEsmail/SwapTool/internal/workflow"
)

// SwapRequestFilter captures swap listing parameters. ParticipantID matches
// either side of the request.
type SwapRequestFilter struct {
	ParticipantID *string
	Statuses      []domain.SwapStatus
	Limit         int
	Offset        int
}

// SwapRequestRepository encapsulates swap request persistence. Status
// writes compare-and-swap on the expected current status; an approval's
// shift exchange commits in the same transaction as the status change.
type SwapRequestRepository interface {
	Create(ctx context.Context, request *domain.SwapRequest) error
	GetByID(ctx context.Context, id string) (*domain.SwapRequest, error)
	List(ctx context.Context, filter SwapRequestFilter) ([]domain.SwapRequest, error)
	ApplyTransition(ctx context.Context, request *domain.SwapRequest, from domain.SwapStatus, exchange *workflow.ShiftExchange) error
}

type swapRequestRepository struct {
	pool *pgxpool.Pool
}

// NewSwapRequestRepository returns a Postgres-backed implementation.
func NewSwapRequestRepository(pool *pgxpool.Pool) SwapRequestRepository {
	return &swapRequestRepository{pool: pool}
}

func (r *swapRequestRepository) Create(ctx context.Context, request *domain.SwapRequest) error {
	const query = `
        INSERT INTO swap_requests
            (requester_id, target_id, requester_shift_id, target_shift_id,
             requester_shift_date, requester_shift_type, target_shift_date, target_shift_type,
             status, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$10)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		request.RequesterID,
		request.TargetID,
		request.RequesterShiftID,
		request.TargetShiftID,
		request.RequesterShiftDate,
		request.RequesterShiftType,
		request.TargetShiftDate,
		request.TargetShiftType,
		request.Status,
		request.CreatedAt,
	).Scan(&request.ID)
}

func (r *swapRequestRepository) GetByID(ctx context.Context, id string) (*domain.SwapRequest, error) {
	const query = `
        SELECT id, requester_id, target_id, requester_shift_id, target_shift_id,
               requester_shift_date, requester_shift_type, target_shift_date, target_shift_type,
               status, created_at, updated_at
        FROM swap_requests WHERE id=$1`

	var request domain.SwapRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.RequesterID,
		&request.TargetID,
		&request.RequesterShiftID,
		&request.TargetShiftID,
		&request.RequesterShiftDate,
		&request.RequesterShiftType,
		&request.TargetShiftDate,
		&request.TargetShiftType,
		&request.Status,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *swapRequestRepository) List(ctx context.Context, filter SwapRequestFilter) ([]domain.SwapRequest, error) {
	base := `SELECT id, requester_id, target_id, requester_shift_id, target_shift_id,
                    requester_shift_date, requester_shift_type, target_shift_date, target_shift_type,
                    status, created_at, updated_at
             FROM swap_requests`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ParticipantID != nil {
		args = append(args, *filter.ParticipantID)
		clauses = append(clauses, fmt.Sprintf("(requester_id=$%d OR target_id=$%d)", len(args), len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SwapRequest
	for rows.Next() {
		var request domain.SwapRequest
		if err := rows.Scan(
			&request.ID,
			&request.RequesterID,
			&request.TargetID,
			&request.RequesterShiftID,
			&request.TargetShiftID,
			&request.RequesterShiftDate,
			&request.RequesterShiftType,
			&request.TargetShiftDate,
			&request.TargetShiftType,
			&request.Status,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}

// ApplyTransition persists a responded or decided swap. The status UPDATE
// only matches while the row still holds the status the decision was
// computed against. A non-nil exchange reassigns both shift owners inside
// the same transaction, so an approved swap and its shift moves land
// atomically or not at all.
func (r *swapRequestRepository) ApplyTransition(ctx context.Context, request *domain.SwapRequest, from domain.SwapStatus, exchange *workflow.ShiftExchange) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const statusQuery = `
        UPDATE swap_requests SET status=$1, updated_at=NOW()
        WHERE id=$2 AND status=$3
        RETURNING updated_at`

	err = tx.QueryRow(ctx, statusQuery, request.Status, request.ID, from).Scan(&request.UpdatedAt)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		return r.classifyMiss(ctx, tx, request.ID)
	}

	if exchange != nil {
		if err := reassignShift(ctx, tx, exchange.RequesterShiftID, exchange.RequesterShiftNewOwner); err != nil {
			return err
		}
		if err := reassignShift(ctx, tx, exchange.TargetShiftID, exchange.TargetShiftNewOwner); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *swapRequestRepository) classifyMiss(ctx context.Context, tx pgx.Tx, id string) error {
	var current domain.SwapStatus
	switch err := tx.QueryRow(ctx, `SELECT status FROM swap_requests WHERE id=$1`, id).Scan(&current); {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case err != nil:
		return err
	}
	return ErrConflict
}

func reassignShift(ctx context.Context, tx pgx.Tx, shiftID, newOwnerID string) error {
	cmd, err := tx.Exec(ctx, `UPDATE shifts SET employee_id=$1, updated_at=NOW() WHERE id=$2`, newOwnerID, shiftID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
