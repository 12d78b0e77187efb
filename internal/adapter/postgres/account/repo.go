// Package account implements the Account repository using PostgreSQL.
package account

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/gameitems-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const accountColumns = `id, email, password_hash, is_admin, created_at`

const getByIDSQL = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + accountColumns + `
FROM accounts
WHERE email = $1`

const createSQL = `
INSERT INTO accounts (id, email, password_hash, is_admin, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + accountColumns

const setAdminSQL = `
UPDATE accounts
SET is_admin = $2
WHERE email = $1
RETURNING ` + accountColumns

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	acc, err := scanAccount(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "account", id)
	}

	return acc, nil
}

// GetByEmail returns an account by its normalized email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	acc, err := scanAccount(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "account", uuid.Nil)
	}

	return acc, nil
}

// Create inserts a new account. A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanAccount(q.QueryRow(ctx, createSQL,
		acc.ID, acc.Email, acc.PasswordHash, acc.IsAdmin, acc.CreatedAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "account", acc.ID)
	}

	return created, nil
}

// SetAdmin sets the admin flag of the account with the given normalized email.
// Returns domain.ErrNotFound if no such account exists.
func (r *Repo) SetAdmin(ctx context.Context, email string, isAdmin bool) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	acc, err := scanAccount(q.QueryRow(ctx, setAdminSQL, email, isAdmin))
	if err != nil {
		return nil, postgres.MapError(err, "account", uuid.Nil)
	}

	return acc, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.IsAdmin, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
