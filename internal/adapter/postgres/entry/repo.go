// Package entry implements the personal ItemEntry repository using PostgreSQL.
// Values live in one typed column per storage type; the item's storage type
// selects which one is meaningful.
package entry

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

// Repo provides item entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const entryColumns = `e.list_id, e.item_id, e.account_id, i.storage_type,
       e.value_boolean, e.value_integer, e.value_text, e.updated_at`

const listByListAndAccountSQL = `
SELECT ` + entryColumns + `
FROM item_entries e
JOIN item_definitions i ON i.id = e.item_id
WHERE e.list_id = $1 AND e.account_id = $2
ORDER BY i.name, i.id`

const getSQL = `
SELECT ` + entryColumns + `
FROM item_entries e
JOIN item_definitions i ON i.id = e.item_id
WHERE e.item_id = $1 AND e.account_id = $2`

const upsertSQL = `
INSERT INTO item_entries (list_id, item_id, account_id, value_boolean, value_integer, value_text, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (item_id, account_id) DO UPDATE
SET value_boolean = EXCLUDED.value_boolean,
    value_integer = EXCLUDED.value_integer,
    value_text    = EXCLUDED.value_text,
    updated_at    = EXCLUDED.updated_at`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// ListByListAndAccount returns accountID's entries on listID, ordered by item name.
func (r *Repo) ListByListAndAccount(ctx context.Context, listID, accountID uuid.UUID) ([]domain.ItemEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByListAndAccountSQL, listID, accountID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.ItemEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Upsert stores the entry value in the column matching its kind and clears the others.
func (r *Repo) Upsert(ctx context.Context, e *domain.ItemEntry) (*domain.ItemEntry, error) {
	var (
		b *bool
		n *int64
		s *string
	)
	switch e.Value.Kind {
	case domain.StorageTypeBoolean:
		b = &e.Value.Bool
	case domain.StorageTypeCount:
		n = &e.Value.Count
	case domain.StorageTypeText:
		s = &e.Value.Text
	default:
		return nil, fmt.Errorf("entry %s: %w", e.ItemID, domain.ErrInvalidStorageType)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, upsertSQL,
		e.ListID, e.ItemID, e.AccountID, b, n, s, e.UpdatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return nil, postgres.MapError(err, "entry", e.ItemID)
	}

	saved, err := scanEntry(q.QueryRow(ctx, getSQL, e.ItemID, e.AccountID))
	if err != nil {
		return nil, postgres.MapError(err, "entry", e.ItemID)
	}

	return saved, nil
}

func scanEntry(row pgx.Row) (*domain.ItemEntry, error) {
	var (
		e           domain.ItemEntry
		storageType string
		b           *bool
		n           *int64
		s           *string
	)
	if err := row.Scan(&e.ListID, &e.ItemID, &e.AccountID, &storageType, &b, &n, &s, &e.UpdatedAt); err != nil {
		return nil, err
	}

	e.Value.Kind = domain.StorageType(storageType)
	switch e.Value.Kind {
	case domain.StorageTypeBoolean:
		e.Value.Bool = b != nil && *b
	case domain.StorageTypeCount:
		if n != nil {
			e.Value.Count = *n
		}
	case domain.StorageTypeText:
		if s != nil {
			e.Value.Text = *s
		}
	}

	return &e, nil
}
