package list

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
	"github.com/heartmarshall/gameitems-backend/pkg/ctxutil"
)

// ListGames returns the game catalog lists can be created for.
func (s *Service) ListGames(ctx context.Context) ([]domain.Game, error) {
	games, err := s.games.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list.ListGames: %w", err)
	}
	return games, nil
}

// ListLists returns the caller's lists, newest first.
func (s *Service) ListLists(ctx context.Context) ([]domain.GameList, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lists, err := s.lists.ListByOwner(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list.ListLists: %w", err)
	}
	return lists, nil
}

// CreateList creates an unpublished list for an existing game.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (*domain.GameList, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	game, err := s.games.GetByID(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	var description *string
	if input.Description != nil {
		description = domain.TrimToNil(*input.Description)
	}

	now := s.clock.Now().UTC()
	created, err := s.lists.Create(ctx, &domain.GameList{
		ID:             uuid.New(),
		OwnerAccountID: accountID,
		Game:           *game,
		Name:           strings.TrimSpace(input.Name),
		Description:    description,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("list.CreateList: %w", err)
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("list_id", created.ID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("game_id", game.ID.String()),
	)

	return created, nil
}

// Publish marks a list the caller owns as published. Publishing twice is a no-op.
func (s *Service) Publish(ctx context.Context, listID uuid.UUID) (*domain.GameList, error) {
	accountID, _, err := s.requireCaller(ctx, listID)
	if err != nil {
		return nil, err
	}

	published, err := s.lists.Publish(ctx, listID, accountID)
	if err != nil {
		return nil, fmt.Errorf("list.Publish: %w", err)
	}
	return published, nil
}
