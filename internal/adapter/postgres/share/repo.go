// Package share implements list share token persistence using PostgreSQL.
package share

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/gameitems-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// Repo provides share token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new share token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const shareColumns = `id, list_id, token, created_at, revoked_at`

const getActiveByListSQL = `
SELECT ` + shareColumns + `
FROM list_share_tokens
WHERE list_id = $1 AND revoked_at IS NULL
ORDER BY created_at DESC, id
LIMIT 1`

const getActiveByTokenSQL = `
SELECT ` + shareColumns + `
FROM list_share_tokens
WHERE token = $1 AND revoked_at IS NULL`

const createSQL = `
INSERT INTO list_share_tokens (id, list_id, token, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + shareColumns

const revokeAllForListSQL = `
UPDATE list_share_tokens
SET revoked_at = $2
WHERE list_id = $1 AND revoked_at IS NULL`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetActiveByList returns the newest active token of a list.
// Returns domain.ErrNotFound if the list has none.
func (r *Repo) GetActiveByList(ctx context.Context, listID uuid.UUID) (*domain.ListShareToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanShareToken(q.QueryRow(ctx, getActiveByListSQL, listID))
	if err != nil {
		return nil, postgres.MapError(err, "share_token", listID)
	}

	return t, nil
}

// GetActiveByToken resolves an active token value.
// Unknown and revoked tokens both yield domain.ErrNotFound.
func (r *Repo) GetActiveByToken(ctx context.Context, token string) (*domain.ListShareToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanShareToken(q.QueryRow(ctx, getActiveByTokenSQL, token))
	if err != nil {
		return nil, postgres.MapError(err, "share_token", uuid.Nil)
	}

	return t, nil
}

// Create inserts a new share token.
func (r *Repo) Create(ctx context.Context, t *domain.ListShareToken) (*domain.ListShareToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanShareToken(q.QueryRow(ctx, createSQL,
		t.ID, t.ListID, t.Token, t.CreatedAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "share_token", t.ID)
	}

	return created, nil
}

// RevokeAllForList revokes every active token of a list and returns how many were revoked.
func (r *Repo) RevokeAllForList(ctx context.Context, listID uuid.UUID, at time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, revokeAllForListSQL, listID, at.UTC().Truncate(time.Microsecond))
	if err != nil {
		return 0, postgres.MapError(err, "share_token", listID)
	}

	return int(ct.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanShareToken(row pgx.Row) (*domain.ListShareToken, error) {
	var t domain.ListShareToken
	if err := row.Scan(&t.ID, &t.ListID, &t.Token, &t.CreatedAt, &t.RevokedAt); err != nil {
		return nil, fmt.Errorf("scan share token: %w", err)
	}
	return &t, nil
}
