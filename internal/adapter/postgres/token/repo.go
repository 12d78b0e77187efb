// Package token implements refresh session and refresh token persistence using PostgreSQL.
// Tokens are stored only as SHA-256 hashes. Revocation is soft (revoked_at).
package token

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

// Repo provides refresh session and token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const createSessionSQL = `
INSERT INTO refresh_sessions (id, account_id, created_at, expires_at)
VALUES ($1, $2, $3, $4)`

const createTokenSQL = `
INSERT INTO refresh_tokens (id, session_id, account_id, token_hash, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const getByHashSQL = `
SELECT t.id, t.session_id, t.account_id, t.token_hash, t.created_at, t.expires_at, t.used_at, t.revoked_at,
       s.id, s.account_id, s.created_at, s.expires_at, s.revoked_at
FROM refresh_tokens t
JOIN refresh_sessions s ON s.id = t.session_id
WHERE t.token_hash = $1`

// Only the first caller to present an unused token wins.
const markUsedSQL = `
UPDATE refresh_tokens
SET used_at = $2
WHERE id = $1 AND used_at IS NULL AND revoked_at IS NULL`

const revokeTokenSQL = `
UPDATE refresh_tokens
SET revoked_at = $2
WHERE id = $1 AND revoked_at IS NULL`

const revokeSessionSQL = `
WITH s AS (
    UPDATE refresh_sessions
    SET revoked_at = COALESCE(revoked_at, $2)
    WHERE id = $1
    RETURNING id
)
UPDATE refresh_tokens
SET revoked_at = $2
WHERE session_id IN (SELECT id FROM s) AND revoked_at IS NULL`

const revokeAllForAccountSQL = `
WITH s AS (
    UPDATE refresh_sessions
    SET revoked_at = $2
    WHERE account_id = $1 AND revoked_at IS NULL
    RETURNING id
)
UPDATE refresh_tokens
SET revoked_at = $2
WHERE account_id = $1 AND revoked_at IS NULL`

const deleteStaleSQL = `
DELETE FROM refresh_sessions
WHERE expires_at <= $1
   OR (revoked_at IS NOT NULL AND revoked_at <= $2)`

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

// CreateSession inserts a new refresh session.
func (r *Repo) CreateSession(ctx context.Context, s *domain.RefreshSession) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSessionSQL, s.ID, s.AccountID, utc(s.CreatedAt), utc(s.ExpiresAt))
	if err != nil {
		return postgres.MapError(err, "refresh_session", s.ID)
	}

	return nil
}

// RevokeSession revokes a session and every still-active token in it with one statement.
// Revoking an already revoked session is not an error.
func (r *Repo) RevokeSession(ctx context.Context, sessionID uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, revokeSessionSQL, sessionID, utc(at)); err != nil {
		return postgres.MapError(err, "refresh_session", sessionID)
	}

	return nil
}

// RevokeAllForAccount revokes every active session and token of accountID.
func (r *Repo) RevokeAllForAccount(ctx context.Context, accountID uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, revokeAllForAccountSQL, accountID, utc(at)); err != nil {
		return postgres.MapError(err, "refresh_session", accountID)
	}

	return nil
}

// DeleteStale removes sessions that expired before now or were revoked before
// revokedBefore. Their tokens go with them through ON DELETE CASCADE.
// Returns the number of deleted sessions.
func (r *Repo) DeleteStale(ctx context.Context, now, revokedBefore time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteStaleSQL, utc(now), utc(revokedBefore))
	if err != nil {
		return 0, postgres.MapError(err, "refresh_session", uuid.Nil)
	}

	return int(ct.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Tokens
// ---------------------------------------------------------------------------

// CreateToken inserts a new refresh token.
func (r *Repo) CreateToken(ctx context.Context, t *domain.RefreshToken) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createTokenSQL, t.ID, t.SessionID, t.AccountID, t.TokenHash, utc(t.CreatedAt), utc(t.ExpiresAt))
	if err != nil {
		return postgres.MapError(err, "refresh_token", t.ID)
	}

	return nil
}

// GetByHash returns a token by hash in any state, with its session populated.
// Returns domain.ErrNotFound if no token has that hash.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanToken(q.QueryRow(ctx, getByHashSQL, tokenHash))
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	return t, nil
}

// MarkUsed sets used_at if the token is still unused and unrevoked.
// It reports false when another caller got there first.
func (r *Repo) MarkUsed(ctx context.Context, tokenID uuid.UUID, at time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, markUsedSQL, tokenID, utc(at))
	if err != nil {
		return false, postgres.MapError(err, "refresh_token", tokenID)
	}

	return ct.RowsAffected() == 1, nil
}

// RevokeToken revokes a single token. Idempotent.
func (r *Repo) RevokeToken(ctx context.Context, tokenID uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, revokeTokenSQL, tokenID, utc(at)); err != nil {
		return postgres.MapError(err, "refresh_token", tokenID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := row.Scan(
		&t.ID, &t.SessionID, &t.AccountID, &t.TokenHash, &t.CreatedAt, &t.ExpiresAt, &t.UsedAt, &t.RevokedAt,
		&t.Session.ID, &t.Session.AccountID, &t.Session.CreatedAt, &t.Session.ExpiresAt, &t.Session.RevokedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan refresh token: %w", err)
	}
	return &t, nil
}

func utc(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
