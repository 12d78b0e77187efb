// Package moderation implements the moderation queue: reviewers approve
// or reject pending list changes, and approved changes are applied to the
// list aggregates in the same transaction.
package moderation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// changeRepo defines the change log operations needed by the engine.
type changeRepo interface {
	ListByStatus(ctx context.Context, status *domain.ChangeStatus) ([]domain.ListChange, error)
	GetPendingForUpdate(ctx context.Context, id uuid.UUID) (*domain.ListChange, error)
	MarkApproved(ctx context.Context, id, reviewerID uuid.UUID, at time.Time) (*domain.ListChange, error)
	MarkRejected(ctx context.Context, id, reviewerID uuid.UUID, at time.Time) (*domain.ListChange, error)
}

// listRepo defines the list operations needed by the engine.
type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GameList, error)
	UpdateMetadata(ctx context.Context, listID uuid.UUID, patch domain.ListMetadataPatch, at time.Time) (*domain.GameList, error)
}

// tagRepo defines the tag operations needed by the engine.
type tagRepo interface {
	Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
}

// itemRepo defines the item definition operations needed by the engine.
type itemRepo interface {
	Create(ctx context.Context, it *domain.ItemDefinition, tagIDs []uuid.UUID) (*domain.ItemDefinition, error)
	Update(ctx context.Context, itemID, listID uuid.UUID, patch domain.ItemPatch, at time.Time) (*domain.ItemDefinition, error)
}

// txManager defines the transaction manager interface needed by the engine.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// detailInvalidator drops the cached detail view of a list.
type detailInvalidator interface {
	Invalidate(ctx context.Context, accountID, listID uuid.UUID)
}

// Service approves and rejects list changes.
type Service struct {
	log     *slog.Logger
	changes changeRepo
	lists   listRepo
	tags    tagRepo
	items   itemRepo
	tx      txManager
	details detailInvalidator
	clock   clockwork.Clock
}

// NewService creates a new moderation service.
func NewService(
	logger *slog.Logger,
	changes changeRepo,
	lists listRepo,
	tags tagRepo,
	items itemRepo,
	tx txManager,
	details detailInvalidator,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:     logger.With("service", "moderation"),
		changes: changes,
		lists:   lists,
		tags:    tags,
		items:   items,
		tx:      tx,
		details: details,
		clock:   clock,
	}
}
