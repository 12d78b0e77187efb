package share

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
	"github.com/heartmarshall/gameitems-backend/pkg/ctxutil"
)

// ShareInput holds the parameters of a share request.
type ShareInput struct {
	ListID uuid.UUID
	// Rotate revokes every existing token before minting a new one.
	Rotate bool
}

// Get returns the active share token of a list the caller owns, or nil.
func (s *Service) Get(ctx context.Context, listID uuid.UUID) (*domain.ListShareToken, error) {
	if _, err := s.requireCaller(ctx, listID); err != nil {
		return nil, err
	}

	tok, err := s.shares.GetActiveByList(ctx, listID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("share.Get: %w", err)
	}

	return tok, nil
}

// Share publishes the list and returns its active share token, minting one
// when none exists or when rotation is requested.
func (s *Service) Share(ctx context.Context, input ShareInput) (*domain.ListShareToken, error) {
	accountID, err := s.requireCaller(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	var tok *domain.ListShareToken

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.lists.Publish(ctx, input.ListID, accountID); err != nil {
			return fmt.Errorf("publish: %w", err)
		}

		if input.Rotate {
			if _, err := s.shares.RevokeAllForList(ctx, input.ListID, s.clock.Now()); err != nil {
				return fmt.Errorf("revoke: %w", err)
			}
		} else {
			existing, err := s.shares.GetActiveByList(ctx, input.ListID)
			if err == nil {
				tok = existing
				return nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("get active: %w", err)
			}
		}

		raw, err := s.newToken()
		if err != nil {
			return fmt.Errorf("generate token: %w", err)
		}

		tok, err = s.shares.Create(ctx, &domain.ListShareToken{
			ID:        uuid.New(),
			ListID:    input.ListID,
			Token:     raw,
			CreatedAt: s.clock.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("share.Share: %w", err)
	}

	s.log.InfoContext(ctx, "list shared",
		slog.String("list_id", input.ListID.String()),
		slog.Bool("rotated", input.Rotate),
	)

	return tok, nil
}

// Revoke revokes every share token of a list the caller owns. The list stays published.
func (s *Service) Revoke(ctx context.Context, listID uuid.UUID) error {
	if _, err := s.requireCaller(ctx, listID); err != nil {
		return err
	}

	n, err := s.shares.RevokeAllForList(ctx, listID, s.clock.Now())
	if err != nil {
		return fmt.Errorf("share.Revoke: %w", err)
	}

	s.log.InfoContext(ctx, "share tokens revoked",
		slog.String("list_id", listID.String()),
		slog.Int("count", n),
	)

	return nil
}

// Resolve returns the fresh detail view behind an anonymous share token.
// Unknown or revoked tokens yield domain.ErrNotFound, an unpublished list
// domain.ErrForbidden.
func (s *Service) Resolve(ctx context.Context, token string) (*domain.ListDetail, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}

	tok, err := s.shares.GetActiveByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("share.Resolve token: %w", err)
	}

	list, err := s.lists.GetByID(ctx, tok.ListID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("share.Resolve list: %w", err)
	}
	if !list.IsPublished {
		return nil, domain.ErrForbidden
	}

	return s.details.Build(ctx, list)
}

func (s *Service) requireCaller(ctx context.Context, listID uuid.UUID) (uuid.UUID, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if _, err := s.guard.RequireOwned(ctx, accountID, listID); err != nil {
		return uuid.Nil, err
	}
	return accountID, nil
}
