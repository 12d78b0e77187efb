package moderation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// ListChanges returns changes newest first. A nil or empty filter selects
// pending changes and "all" disables filtering.
func (s *Service) ListChanges(ctx context.Context, filter *string) ([]domain.ListChange, error) {
	status, err := domain.ParseChangeStatusFilter(filter)
	if err != nil {
		return nil, err
	}

	changes, err := s.changes.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("moderation.ListChanges: %w", err)
	}

	return changes, nil
}
