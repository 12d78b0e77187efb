// Package item implements the ItemDefinition repository using PostgreSQL.
// Tags are stored in item_definition_tags and loaded in one batch per listing.
package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/gameitems-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// Repo provides item definition persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const itemColumns = `i.id, i.list_id, i.name, i.description, i.image_url, i.storage_type, i.created_at, i.updated_at`

const getByIDForListSQL = `
SELECT ` + itemColumns + `
FROM item_definitions i
WHERE i.id = $1 AND i.list_id = $2`

const createSQL = `
INSERT INTO item_definitions (id, list_id, name, description, image_url, storage_type, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const tagsForItemsSQL = `
SELECT it.item_id, t.id, t.list_id, t.name, t.color, t.created_at
FROM item_definition_tags it
JOIN list_tags t ON t.id = it.tag_id
WHERE it.item_id = ANY($1::uuid[])
ORDER BY t.name, t.id`

const clearTagsSQL = `DELETE FROM item_definition_tags WHERE item_id = $1`

// Only tags of the item's own list are linked; unknown ids are skipped.
const linkTagsSQL = `
INSERT INTO item_definition_tags (item_id, tag_id)
SELECT $1, t.id
FROM list_tags t
WHERE t.list_id = $2 AND t.id = ANY($3::uuid[])
ON CONFLICT DO NOTHING`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByList returns the items of listID matching filter, ordered by name.
func (r *Repo) ListByList(ctx context.Context, listID uuid.UUID, filter domain.ItemFilter) ([]domain.ItemDefinition, error) {
	b := postgres.Builder.
		Select(itemColumns).
		From("item_definitions i").
		Where(squirrel.Eq{"i.list_id": listID}).
		OrderBy("i.name", "i.id")

	if filter.TagID != nil {
		b = b.Where("EXISTS (SELECT 1 FROM item_definition_tags x WHERE x.item_id = i.id AND x.tag_id = ?)", *filter.TagID)
	}
	if filter.Owned != nil {
		owned := "EXISTS (SELECT 1 FROM item_entries e WHERE e.item_id = i.id AND e.account_id = ?)"
		if !*filter.Owned {
			owned = "NOT " + owned
		}
		b = b.Where(owned, filter.AccountID)
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		pattern := "%" + escapeLike(strings.TrimSpace(*filter.Search)) + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"i.name": pattern},
			squirrel.ILike{"i.description": pattern},
		})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []domain.ItemDefinition{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachTags(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

// GetByIDForList returns an item only if it belongs to listID.
func (r *Repo) GetByIDForList(ctx context.Context, listID, itemID uuid.UUID) (*domain.ItemDefinition, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	it, err := scanItem(q.QueryRow(ctx, getByIDForListSQL, itemID, listID))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}

	items := []domain.ItemDefinition{*it}
	if err := r.attachTags(ctx, items); err != nil {
		return nil, err
	}

	return &items[0], nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an item and links tagIDs that belong to the same list.
func (r *Repo) Create(ctx context.Context, it *domain.ItemDefinition, tagIDs []uuid.UUID) (*domain.ItemDefinition, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL,
		it.ID, it.ListID, it.Name, it.Description, it.ImageURL, string(it.StorageType),
		it.CreatedAt.UTC().Truncate(time.Microsecond), it.UpdatedAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}

	if err := r.linkTags(ctx, it.ID, it.ListID, tagIDs); err != nil {
		return nil, err
	}

	return r.GetByIDForList(ctx, it.ListID, it.ID)
}

// Update applies a partial update to an item of listID and stamps updated_at
// with at. A set TagIDs replaces the item's tags. An empty patch returns the
// item unchanged.
func (r *Repo) Update(ctx context.Context, itemID, listID uuid.UUID, patch domain.ItemPatch, at time.Time) (*domain.ItemDefinition, error) {
	if patch.IsEmpty() {
		return r.GetByIDForList(ctx, listID, itemID)
	}

	b := postgres.Builder.Update("item_definitions").
		Set("updated_at", at.UTC().Truncate(time.Microsecond)).
		Where(squirrel.Eq{"id": itemID, "list_id": listID})
	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.StorageType != nil {
		b = b.Set("storage_type", string(*patch.StorageType))
	}
	if patch.Description.Set {
		b = b.Set("description", patch.Description.Value)
	}
	if patch.ImageURL.Set {
		b = b.Set("image_url", patch.ImageURL.Value)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update item: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	ct, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}

	if patch.TagIDs != nil {
		if _, err := q.Exec(ctx, clearTagsSQL, itemID); err != nil {
			return nil, postgres.MapError(err, "item", itemID)
		}
		if err := r.linkTags(ctx, itemID, listID, *patch.TagIDs); err != nil {
			return nil, err
		}
	}

	return r.GetByIDForList(ctx, listID, itemID)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) linkTags(ctx context.Context, itemID, listID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, linkTagsSQL, itemID, listID, tagIDs); err != nil {
		return postgres.MapError(err, "item", itemID)
	}

	return nil
}

// attachTags loads tags for all items with a single query.
func (r *Repo) attachTags(ctx context.Context, items []domain.ItemDefinition) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(items))
	index := make(map[uuid.UUID]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
		index[items[i].ID] = i
		items[i].Tags = []domain.Tag{}
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, tagsForItemsSQL, ids)
	if err != nil {
		return fmt.Errorf("load item tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID uuid.UUID
			t      domain.Tag
		)
		if err := rows.Scan(&itemID, &t.ID, &t.ListID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return fmt.Errorf("scan item tag: %w", err)
		}
		i := index[itemID]
		items[i].Tags = append(items[i].Tags, t)
	}

	return rows.Err()
}

func scanItem(row pgx.Row) (*domain.ItemDefinition, error) {
	var (
		it          domain.ItemDefinition
		storageType string
	)
	err := row.Scan(&it.ID, &it.ListID, &it.Name, &it.Description, &it.ImageURL, &storageType, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	it.StorageType = domain.StorageType(storageType)
	return &it, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
