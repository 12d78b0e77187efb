// Package listchange implements the ListChange log using PostgreSQL.
// The payload column is JSONB and is stored as the change's opaque document.
package listchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/gameitems-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// Repo provides list change persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new list change repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const changeColumns = `id, list_id, actor_account_id, type, payload, status, created_at, reviewed_by, reviewed_at`

const createSQL = `
INSERT INTO list_changes (id, list_id, actor_account_id, type, payload, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + changeColumns

// Row lock on the pending change; a concurrent reviewer blocks here and then
// sees no row once the first transaction has flipped the status.
const getPendingForUpdateSQL = `
SELECT ` + changeColumns + `
FROM list_changes
WHERE id = $1 AND status = 'pending'
FOR UPDATE`

const markReviewedSQL = `
UPDATE list_changes
SET status = $2, reviewed_by = $3, reviewed_at = $4
WHERE id = $1 AND status = 'pending'
RETURNING ` + changeColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByStatus returns changes newest first. A nil status returns every change.
func (r *Repo) ListByStatus(ctx context.Context, status *domain.ChangeStatus) ([]domain.ListChange, error) {
	b := postgres.Builder.
		Select(changeColumns).
		From("list_changes").
		OrderBy("created_at DESC", "id")
	if status != nil {
		b = b.Where("status = ?", string(*status))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list changes: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}
	defer rows.Close()

	changes := []domain.ListChange{}
	for rows.Next() {
		c, err := scanChange(rows)
		if err != nil {
			return nil, err
		}
		changes = append(changes, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return changes, nil
}

// GetPendingForUpdate returns a pending change and locks its row until the
// surrounding transaction ends. Must be called inside TxManager.RunInTx.
// Returns domain.ErrChangeNotFound if the change does not exist or was already reviewed,
// and postgres.ErrNoTx when ctx carries no transaction.
func (r *Repo) GetPendingForUpdate(ctx context.Context, id uuid.UUID) (*domain.ListChange, error) {
	q, err := postgres.LockingQuerierFromCtx(ctx)
	if err != nil {
		return nil, fmt.Errorf("list_change %s: %w", id, err)
	}

	c, err := scanChange(q.QueryRow(ctx, getPendingForUpdateSQL, id))
	if err != nil {
		return nil, mapChangeError(err, id)
	}

	return c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a pending change to the log.
func (r *Repo) Create(ctx context.Context, c *domain.ListChange) (*domain.ListChange, error) {
	doc, err := marshalPayload(c.Payload)
	if err != nil {
		return nil, fmt.Errorf("list_change %s: %w", c.ID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanChange(q.QueryRow(ctx, createSQL,
		c.ID, c.ListID, c.ActorAccountID, string(c.Type), doc, string(c.Status),
		c.CreatedAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "list_change", c.ID)
	}

	return created, nil
}

// MarkApproved flips a pending change to approved and records the reviewer.
func (r *Repo) MarkApproved(ctx context.Context, id, reviewerID uuid.UUID, at time.Time) (*domain.ListChange, error) {
	return r.markReviewed(ctx, id, domain.ChangeStatusApproved, reviewerID, at)
}

// MarkRejected flips a pending change to rejected and records the reviewer.
func (r *Repo) MarkRejected(ctx context.Context, id, reviewerID uuid.UUID, at time.Time) (*domain.ListChange, error) {
	return r.markReviewed(ctx, id, domain.ChangeStatusRejected, reviewerID, at)
}

func (r *Repo) markReviewed(ctx context.Context, id uuid.UUID, status domain.ChangeStatus, reviewerID uuid.UUID, at time.Time) (*domain.ListChange, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanChange(q.QueryRow(ctx, markReviewedSQL, id, string(status), reviewerID, at.UTC().Truncate(time.Microsecond)))
	if err != nil {
		return nil, mapChangeError(err, id)
	}

	return c, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanChange(row pgx.Row) (*domain.ListChange, error) {
	var (
		c          domain.ListChange
		changeType string
		status     string
		doc        []byte
	)
	err := row.Scan(&c.ID, &c.ListID, &c.ActorAccountID, &changeType, &doc, &status, &c.CreatedAt, &c.ReviewedBy, &c.ReviewedAt)
	if err != nil {
		return nil, err
	}

	c.Type = domain.ChangeType(changeType)
	c.Status = domain.ChangeStatus(status)

	payload, err := unmarshalPayload(doc)
	if err != nil {
		return nil, fmt.Errorf("list_change %s: %w", c.ID, err)
	}
	c.Payload = payload

	return &c, nil
}

func mapChangeError(err error, id uuid.UUID) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("list_change %s: %w", id, domain.ErrChangeNotFound)
	}
	return postgres.MapError(err, "list_change", id)
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers
// ---------------------------------------------------------------------------

func marshalPayload(payload map[string]any) ([]byte, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return b, nil
}

func unmarshalPayload(data []byte) (map[string]any, error) {
	payload := map[string]any{}
	if len(data) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	return payload, nil
}
