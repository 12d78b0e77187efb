package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
	"github.com/heartmarshall/gameitems-backend/pkg/ctxutil"
)

// RequireOwned returns the list if accountID owns it. A list that exists but
// belongs to someone else yields domain.ErrForbidden, a missing one
// domain.ErrNotFound.
func (s *Service) RequireOwned(ctx context.Context, accountID, listID uuid.UUID) (*domain.GameList, error) {
	l, err := s.lists.GetByIDForOwner(ctx, listID, accountID)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("list.RequireOwned: %w", err)
	}

	_, err = s.lists.GetByID(ctx, listID)
	switch {
	case err == nil:
		return nil, domain.ErrForbidden
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrNotFound
	default:
		return nil, fmt.Errorf("list.RequireOwned: %w", err)
	}
}

// requireCaller resolves the authenticated account and the list it owns.
func (s *Service) requireCaller(ctx context.Context, listID uuid.UUID) (uuid.UUID, *domain.GameList, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, nil, domain.ErrUnauthorized
	}

	l, err := s.RequireOwned(ctx, accountID, listID)
	if err != nil {
		return uuid.Nil, nil, err
	}

	return accountID, l, nil
}
