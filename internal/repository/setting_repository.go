package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
)

// SettingRepository encapsulates the key/value settings table. Get returns
// ErrNotFound for keys that were never written; callers decide the default.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, setting *domain.Setting) error
}

type settingRepository struct {
	pool *pgxpool.Pool
}

// NewSettingRepository returns a Postgres-backed implementation.
func NewSettingRepository(pool *pgxpool.Pool) SettingRepository {
	return &settingRepository{pool: pool}
}

func (r *settingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	const query = `SELECT key, value, updated_at FROM settings WHERE key=$1`

	var setting domain.Setting
	if err := r.pool.QueryRow(ctx, query, key).Scan(
		&setting.Key,
		&setting.Value,
		&setting.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) Upsert(ctx context.Context, setting *domain.Setting) error {
	const query = `
        INSERT INTO settings (key, value)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query, setting.Key, setting.Value).Scan(&setting.UpdatedAt)
}
