package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// apply re-validates the stored payload and mutates the owning aggregate.
// Rows created or touched by the change are stamped with now.
func (s *Service) apply(ctx context.Context, change *domain.ListChange, list *domain.GameList, now time.Time) error {
	if !change.Type.IsAppliable() {
		s.log.ErrorContext(ctx, "change type cannot be applied",
			slog.String("change_id", change.ID.String()),
			slog.String("type", change.Type.String()),
		)
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedChangeType, change.Type)
	}

	payload, err := domain.ParseChangePayload(change.Type, change.Payload)
	if err != nil {
		return err
	}

	switch p := payload.(type) {
	case domain.AddTagPayload:
		return s.applyAddTag(ctx, list.ID, p, now)
	case domain.AddItemPayload:
		return s.applyAddItem(ctx, list.ID, p, now)
	case domain.EditItemPayload:
		return s.applyEditItem(ctx, list.ID, p, now)
	case domain.ListMetadataPayload:
		return s.applyListMetadata(ctx, list.ID, p, now)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedChangeType, change.Type)
	}
}

func (s *Service) applyAddTag(ctx context.Context, listID uuid.UUID, p domain.AddTagPayload, now time.Time) error {
	_, err := s.tags.Create(ctx, &domain.Tag{
		ID:        uuid.New(),
		ListID:    listID,
		Name:      p.Name,
		Color:     p.Color,
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

func (s *Service) applyAddItem(ctx context.Context, listID uuid.UUID, p domain.AddItemPayload, now time.Time) error {
	_, err := s.items.Create(ctx, &domain.ItemDefinition{
		ID:          uuid.New(),
		ListID:      listID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		StorageType: p.StorageType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, p.TagIDs)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (s *Service) applyEditItem(ctx context.Context, listID uuid.UUID, p domain.EditItemPayload, now time.Time) error {
	if p.Patch.IsEmpty() {
		return nil
	}

	if _, err := s.items.Update(ctx, p.ItemID, listID, p.Patch, now); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (s *Service) applyListMetadata(ctx context.Context, listID uuid.UUID, p domain.ListMetadataPayload, now time.Time) error {
	if _, err := s.lists.UpdateMetadata(ctx, listID, p.Patch, now); err != nil {
		return fmt.Errorf("update list metadata: %w", err)
	}
	return nil
}
