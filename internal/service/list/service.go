// Package list implements owner actions on game lists: creating and
// publishing lists, proposing moderated changes, and recording personal
// entry values.
package list

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// listRepo defines the list persistence operations needed by the service.
type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GameList, error)
	GetByIDForOwner(ctx context.Context, listID, ownerID uuid.UUID) (*domain.GameList, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.GameList, error)
	Create(ctx context.Context, l *domain.GameList) (*domain.GameList, error)
	Publish(ctx context.Context, listID, ownerID uuid.UUID) (*domain.GameList, error)
}

// gameRepo defines the game catalog reads needed by the service.
type gameRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	List(ctx context.Context) ([]domain.Game, error)
}

// tagRepo defines the tag reads needed by the service.
type tagRepo interface {
	ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Tag, error)
	GetByIDs(ctx context.Context, listID uuid.UUID, ids []uuid.UUID) ([]domain.Tag, error)
}

// itemRepo defines the item reads needed by the service.
type itemRepo interface {
	ListByList(ctx context.Context, listID uuid.UUID, filter domain.ItemFilter) ([]domain.ItemDefinition, error)
	GetByIDForList(ctx context.Context, listID, itemID uuid.UUID) (*domain.ItemDefinition, error)
}

// entryRepo defines the personal entry operations needed by the service.
type entryRepo interface {
	ListByListAndAccount(ctx context.Context, listID, accountID uuid.UUID) ([]domain.ItemEntry, error)
	Upsert(ctx context.Context, e *domain.ItemEntry) (*domain.ItemEntry, error)
}

// changeLog appends pending changes.
type changeLog interface {
	Create(ctx context.Context, c *domain.ListChange) (*domain.ListChange, error)
}

// Service handles owner actions on lists.
type Service struct {
	log     *slog.Logger
	lists   listRepo
	games   gameRepo
	tags    tagRepo
	items   itemRepo
	entries entryRepo
	changes changeLog
	clock   clockwork.Clock
}

// NewService creates a new list service.
func NewService(
	logger *slog.Logger,
	lists listRepo,
	games gameRepo,
	tags tagRepo,
	items itemRepo,
	entries entryRepo,
	changes changeLog,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:     logger.With("service", "list"),
		lists:   lists,
		games:   games,
		tags:    tags,
		items:   items,
		entries: entries,
		changes: changes,
		clock:   clock,
	}
}
