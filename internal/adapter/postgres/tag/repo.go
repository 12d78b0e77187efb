// Package tag implements the list Tag repository using PostgreSQL.
package tag

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

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tagColumns = `id, list_id, name, color, created_at`

const listByListSQL = `
SELECT ` + tagColumns + `
FROM list_tags
WHERE list_id = $1
ORDER BY name, id`

const createSQL = `
INSERT INTO list_tags (id, list_id, name, color, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + tagColumns

// ListByList returns the tags of a list ordered by name.
func (r *Repo) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Tag, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByListSQL, listID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// GetByIDs returns the tags of listID whose ids are in ids. Ids belonging to
// other lists or not existing are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, listID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}

	sql, args, err := postgres.Builder.
		Select(tagColumns).
		From("list_tags").
		Where("list_id = ?", listID).
		Where("id = ANY(?::uuid[])", ids).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tags by ids: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("tags by ids: %w", err)
	}
	defer rows.Close()

	return scanTags(rows)
}

// Create inserts a tag. An unknown list yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanTag(q.QueryRow(ctx, createSQL,
		t.ID, t.ListID, t.Name, t.Color, t.CreatedAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "tag", t.ID)
	}

	return created, nil
}

func scanTag(row pgx.Row) (*domain.Tag, error) {
	var t domain.Tag
	if err := row.Scan(&t.ID, &t.ListID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTags(rows pgx.Rows) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
