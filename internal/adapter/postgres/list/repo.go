// Package list implements the GameList repository using PostgreSQL.
package list

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

// Repo provides list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const listColumns = `l.id, l.owner_account_id, l.name, l.description, l.is_published, l.created_at, l.updated_at,
       g.id, g.name, g.created_at`

const listFrom = `
FROM lists l
JOIN games g ON g.id = l.game_id`

const getByIDSQL = `
SELECT ` + listColumns + listFrom + `
WHERE l.id = $1`

const getByIDForOwnerSQL = `
SELECT ` + listColumns + listFrom + `
WHERE l.id = $1 AND l.owner_account_id = $2`

const listByOwnerSQL = `
SELECT ` + listColumns + listFrom + `
WHERE l.owner_account_id = $1
ORDER BY l.created_at DESC, l.id`

const createSQL = `
INSERT INTO lists (id, owner_account_id, game_id, name, description, is_published, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const publishSQL = `
UPDATE lists
SET is_published = true,
    updated_at = CASE WHEN is_published THEN updated_at ELSE now() END
WHERE id = $1 AND owner_account_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a list regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.GameList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanList(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "list", id)
	}

	return l, nil
}

// GetByIDForOwner returns the list only if ownerID owns it.
// Returns domain.ErrNotFound otherwise.
func (r *Repo) GetByIDForOwner(ctx context.Context, listID, ownerID uuid.UUID) (*domain.GameList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanList(q.QueryRow(ctx, getByIDForOwnerSQL, listID, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}

	return l, nil
}

// ListByOwner returns every list of ownerID, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.GameList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list lists by owner: %w", err)
	}
	defer rows.Close()

	lists := []domain.GameList{}
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a list. An unknown game yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, l *domain.GameList) (*domain.GameList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL,
		l.ID, l.OwnerAccountID, l.Game.ID, l.Name, l.Description, l.IsPublished,
		l.CreatedAt.UTC().Truncate(time.Microsecond), l.UpdatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return nil, postgres.MapError(err, "list", l.ID)
	}

	return r.GetByID(ctx, l.ID)
}

// Publish marks the list as published. Publishing twice is not an error.
// Returns domain.ErrNotFound if ownerID does not own the list.
func (r *Repo) Publish(ctx context.Context, listID, ownerID uuid.UUID) (*domain.GameList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, publishSQL, listID, ownerID)
	if err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("list %s: %w", listID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, listID)
}

// UpdateMetadata applies a partial update of name and description and stamps
// updated_at with at. An empty patch returns the list unchanged.
func (r *Repo) UpdateMetadata(ctx context.Context, listID uuid.UUID, patch domain.ListMetadataPatch, at time.Time) (*domain.GameList, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, listID)
	}

	b := postgres.Builder.Update("lists").
		Set("updated_at", at.UTC().Truncate(time.Microsecond)).
		Where("id = ?", listID)
	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.Description.Set {
		b = b.Set("description", patch.Description.Value)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update list: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	ct, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("list %s: %w", listID, domain.ErrNotFound)
	}

	return r.GetByID(ctx, listID)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanList(row pgx.Row) (*domain.GameList, error) {
	var l domain.GameList
	err := row.Scan(
		&l.ID, &l.OwnerAccountID, &l.Name, &l.Description, &l.IsPublished, &l.CreatedAt, &l.UpdatedAt,
		&l.Game.ID, &l.Game.Name, &l.Game.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
