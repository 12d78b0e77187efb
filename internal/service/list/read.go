package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// ListTags returns the tags of a list the caller owns.
func (s *Service) ListTags(ctx context.Context, listID uuid.UUID) ([]domain.Tag, error) {
	if _, _, err := s.requireCaller(ctx, listID); err != nil {
		return nil, err
	}

	tags, err := s.tags.ListByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list.ListTags: %w", err)
	}
	return tags, nil
}

// ListItems returns the items of a list the caller owns, ordered by name.
// The owned filter is evaluated against the caller's entries.
func (s *Service) ListItems(ctx context.Context, input ListItemsInput) ([]domain.ItemDefinition, error) {
	accountID, _, err := s.requireCaller(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	filter := domain.ItemFilter{
		TagID:     input.TagID,
		Owned:     input.Owned,
		AccountID: accountID,
	}
	if input.Search != nil {
		filter.Search = domain.TrimToNil(*input.Search)
	}

	items, err := s.items.ListByList(ctx, input.ListID, filter)
	if err != nil {
		return nil, fmt.Errorf("list.ListItems: %w", err)
	}
	return items, nil
}

// ListEntries returns the caller's personal entries on a list.
func (s *Service) ListEntries(ctx context.Context, listID uuid.UUID) ([]domain.ItemEntry, error) {
	accountID, _, err := s.requireCaller(ctx, listID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.ListByListAndAccount(ctx, listID, accountID)
	if err != nil {
		return nil, fmt.Errorf("list.ListEntries: %w", err)
	}
	return entries, nil
}
