// Package share manages anonymous read access to published lists through
// unguessable share tokens.
package share

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/gameitems-backend/internal/auth"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// shareRepo defines the share token persistence needed by the service.
type shareRepo interface {
	GetActiveByList(ctx context.Context, listID uuid.UUID) (*domain.ListShareToken, error)
	GetActiveByToken(ctx context.Context, token string) (*domain.ListShareToken, error)
	Create(ctx context.Context, t *domain.ListShareToken) (*domain.ListShareToken, error)
	RevokeAllForList(ctx context.Context, listID uuid.UUID, at time.Time) (int, error)
}

// listRepo defines the list operations needed by the service.
type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GameList, error)
	Publish(ctx context.Context, listID, ownerID uuid.UUID) (*domain.GameList, error)
}

// ownerGuard resolves a list the caller owns.
type ownerGuard interface {
	RequireOwned(ctx context.Context, accountID, listID uuid.UUID) (*domain.GameList, error)
}

// detailBuilder loads the uncached detail view of a list.
type detailBuilder interface {
	Build(ctx context.Context, list *domain.GameList) (*domain.ListDetail, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service issues, revokes and resolves share tokens.
type Service struct {
	log      *slog.Logger
	shares   shareRepo
	lists    listRepo
	guard    ownerGuard
	details  detailBuilder
	tx       txManager
	clock    clockwork.Clock
	newToken func() (string, error)
}

// NewService creates a new share service.
func NewService(
	logger *slog.Logger,
	shares shareRepo,
	lists listRepo,
	guard ownerGuard,
	details detailBuilder,
	tx txManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:      logger.With("service", "share"),
		shares:   shares,
		lists:    lists,
		guard:    guard,
		details:  details,
		tx:       tx,
		clock:    clock,
		newToken: auth.GenerateShareToken,
	}
}
