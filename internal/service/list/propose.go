package list

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// ProposeMetadata proposes a list_metadata change holding only the fields
// that differ from the current list.
func (s *Service) ProposeMetadata(ctx context.Context, input ProposeInput) (*domain.ListChange, error) {
	accountID, current, err := s.requireCaller(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	parsed, err := domain.ParseChangePayload(domain.ChangeTypeListMetadata, input.Payload)
	if err != nil {
		return nil, err
	}
	patch := parsed.(domain.ListMetadataPayload).Patch

	if patch.Name != nil && *patch.Name == current.Name {
		patch.Name = nil
	}
	if patch.Description.Set && equalStrings(patch.Description.Value, current.Description) {
		patch.Description = domain.Nullable{}
	}
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyChangeSet
	}

	return s.propose(ctx, accountID, current.ID, domain.ListMetadataPayload{Patch: patch})
}

// ProposeTag proposes an add_tag change.
func (s *Service) ProposeTag(ctx context.Context, input ProposeInput) (*domain.ListChange, error) {
	accountID, current, err := s.requireCaller(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	parsed, err := domain.ParseChangePayload(domain.ChangeTypeAddTag, input.Payload)
	if err != nil {
		return nil, err
	}

	return s.propose(ctx, accountID, current.ID, parsed)
}

// ProposeItem proposes an add_item change. Every referenced tag must belong
// to the list.
func (s *Service) ProposeItem(ctx context.Context, input ProposeInput) (*domain.ListChange, error) {
	accountID, current, err := s.requireCaller(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	parsed, err := domain.ParseChangePayload(domain.ChangeTypeAddItem, input.Payload)
	if err != nil {
		return nil, err
	}
	if err := s.checkTags(ctx, current.ID, parsed.(domain.AddItemPayload).TagIDs); err != nil {
		return nil, err
	}

	return s.propose(ctx, accountID, current.ID, parsed)
}

// ProposeItemEdit proposes an edit_item change holding only the fields that
// differ from the current item. Tag ids are compared as a set.
func (s *Service) ProposeItemEdit(ctx context.Context, input ProposeInput) (*domain.ListChange, error) {
	accountID, current, err := s.requireCaller(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByIDForList(ctx, current.ID, input.ItemID)
	if err != nil {
		return nil, err
	}

	raw := maps.Clone(input.Payload)
	if raw == nil {
		raw = map[string]any{}
	}
	raw["itemId"] = item.ID.String()

	parsed, err := domain.ParseChangePayload(domain.ChangeTypeEditItem, raw)
	if err != nil {
		return nil, err
	}
	patch := parsed.(domain.EditItemPayload).Patch

	if patch.TagIDs != nil {
		if err := s.checkTags(ctx, current.ID, *patch.TagIDs); err != nil {
			return nil, err
		}
	}

	patch = diffItem(patch, item)
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyChangeSet
	}

	return s.propose(ctx, accountID, current.ID, domain.EditItemPayload{ItemID: item.ID, Patch: patch})
}

func (s *Service) propose(ctx context.Context, accountID, listID uuid.UUID, payload domain.ChangePayload) (*domain.ListChange, error) {
	change := domain.NewListChange(listID, accountID, payload, s.clock.Now().UTC())

	created, err := s.changes.Create(ctx, change)
	if err != nil {
		return nil, fmt.Errorf("list.propose %s: %w", payload.ChangeType(), err)
	}

	s.log.InfoContext(ctx, "change proposed",
		slog.String("change_id", created.ID.String()),
		slog.String("list_id", listID.String()),
		slog.String("type", created.Type.String()),
		slog.String("account_id", accountID.String()),
	)

	return created, nil
}

// checkTags fails when any id is not a tag of listID.
func (s *Service) checkTags(ctx context.Context, listID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := s.tags.GetByIDs(ctx, listID, ids)
	if err != nil {
		return fmt.Errorf("list.checkTags: %w", err)
	}
	if len(found) == len(ids) {
		return nil
	}

	known := make(map[uuid.UUID]struct{}, len(found))
	for _, t := range found {
		known[t.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return domain.NewValidationError("tagIds", fmt.Sprintf("tag %s does not belong to the list", id))
		}
	}
	return nil
}

// diffItem drops patch fields that already match item.
func diffItem(patch domain.ItemPatch, item *domain.ItemDefinition) domain.ItemPatch {
	if patch.Name != nil && *patch.Name == item.Name {
		patch.Name = nil
	}
	if patch.StorageType != nil && *patch.StorageType == item.StorageType {
		patch.StorageType = nil
	}
	if patch.Description.Set && equalStrings(patch.Description.Value, item.Description) {
		patch.Description = domain.Nullable{}
	}
	if patch.ImageURL.Set && equalStrings(patch.ImageURL.Value, item.ImageURL) {
		patch.ImageURL = domain.Nullable{}
	}
	if patch.TagIDs != nil && sameIDSet(*patch.TagIDs, item.TagIDs()) {
		patch.TagIDs = nil
	}
	return patch
}

func equalStrings(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameIDSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}
