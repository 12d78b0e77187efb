// Package game implements read access to the game catalog.
package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/gameitems-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// Repo provides game lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new game repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `SELECT id, name, created_at FROM games WHERE id = $1`

const listSQL = `SELECT id, name, created_at FROM games ORDER BY name`

// GetByID returns a game by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.Game
	if err := q.QueryRow(ctx, getByIDSQL, id).Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "game", id)
	}

	return &g, nil
}

// List returns every game ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Game, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := []domain.Game{}
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}

	return games, rows.Err()
}
