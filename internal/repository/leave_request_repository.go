package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
)

// LeaveRequestFilter captures leave listing parameters.
type LeaveRequestFilter struct {
	OwnerID  *string
	Statuses []domain.LeaveStatus
	Limit    int
	Offset   int
}

// LeaveRequestRepository encapsulates leave request persistence.
// ApplyTransition is the only status writer; it compare-and-swaps on the
// expected current status so concurrent decisions linearize.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request *domain.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]domain.LeaveRequest, error)
	ApplyTransition(ctx context.Context, request *domain.LeaveRequest, from domain.LeaveStatus) error
}

type leaveRequestRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRequestRepository returns a Postgres-backed implementation.
func NewLeaveRequestRepository(pool *pgxpool.Pool) LeaveRequestRepository {
	return &leaveRequestRepository{pool: pool}
}

func (r *leaveRequestRepository) Create(ctx context.Context, request *domain.LeaveRequest) error {
	const query = `
        INSERT INTO leave_requests
            (owner_id, leave_type, start_date, end_date, notes, status, team_lead_decided_at, manager_decided_at, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		request.OwnerID,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.Notes,
		request.Status,
		request.TeamLeadDecidedAt,
		request.ManagerDecidedAt,
		request.CreatedAt,
	).Scan(&request.ID)
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	const query = `
        SELECT id, owner_id, leave_type, start_date, end_date, notes, status,
               team_lead_decided_at, manager_decided_at, created_at, updated_at
        FROM leave_requests WHERE id=$1`

	var request domain.LeaveRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.OwnerID,
		&request.LeaveType,
		&request.StartDate,
		&request.EndDate,
		&request.Notes,
		&request.Status,
		&request.TeamLeadDecidedAt,
		&request.ManagerDecidedAt,
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

func (r *leaveRequestRepository) List(ctx context.Context, filter LeaveRequestFilter) ([]domain.LeaveRequest, error) {
	base := `SELECT id, owner_id, leave_type, start_date, end_date, notes, status,
                    team_lead_decided_at, manager_decided_at, created_at, updated_at
             FROM leave_requests`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		clauses = append(clauses, fmt.Sprintf("owner_id=$%d", len(args)))
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

	var result []domain.LeaveRequest
	for rows.Next() {
		var request domain.LeaveRequest
		if err := rows.Scan(
			&request.ID,
			&request.OwnerID,
			&request.LeaveType,
			&request.StartDate,
			&request.EndDate,
			&request.Notes,
			&request.Status,
			&request.TeamLeadDecidedAt,
			&request.ManagerDecidedAt,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}

// ApplyTransition persists a decided request. The UPDATE only matches while
// the row still holds the status the decision was computed against; zero
// rows means either the row vanished (ErrNotFound) or a concurrent decision
// won (ErrConflict).
func (r *leaveRequestRepository) ApplyTransition(ctx context.Context, request *domain.LeaveRequest, from domain.LeaveStatus) error {
	const query = `
        UPDATE leave_requests
        SET status=$1, team_lead_decided_at=$2, manager_decided_at=$3, updated_at=NOW()
        WHERE id=$4 AND status=$5
        RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		request.Status,
		request.TeamLeadDecidedAt,
		request.ManagerDecidedAt,
		request.ID,
		from,
	).Scan(&request.UpdatedAt)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	var current domain.LeaveStatus
	switch err := r.pool.QueryRow(ctx, `SELECT status FROM leave_requests WHERE id=$1`, request.ID).Scan(&current); {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case err != nil:
		return err
	}
	return ErrConflict
}
