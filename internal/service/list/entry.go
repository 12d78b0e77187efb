package list

import (
	"context"
	"fmt"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// SetEntry records the caller's personal value for an item. The value is
// checked against the item's storage type. Entries are not moderated.
func (s *Service) SetEntry(ctx context.Context, input SetEntryInput) (*domain.ItemEntry, error) {
	accountID, _, err := s.requireCaller(ctx, input.ListID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByIDForList(ctx, input.ListID, input.ItemID)
	if err != nil {
		return nil, err
	}

	value, err := domain.ParseEntryValue(item.StorageType, input.Value)
	if err != nil {
		return nil, err
	}

	saved, err := s.entries.Upsert(ctx, &domain.ItemEntry{
		ListID:    input.ListID,
		ItemID:    item.ID,
		AccountID: accountID,
		Value:     value,
		UpdatedAt: s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("list.SetEntry: %w", err)
	}

	return saved, nil
}
