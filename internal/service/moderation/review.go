package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// Approve applies a pending change to its list and marks it approved.
// The list detail cache of the list owner is invalidated after commit.
func (s *Service) Approve(ctx context.Context, changeID, reviewerID uuid.UUID) (*domain.ListChange, error) {
	var (
		approved *domain.ListChange
		list     *domain.GameList
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		change, err := s.lockPending(ctx, changeID, reviewerID)
		if err != nil {
			return err
		}

		list, err = s.lists.GetByID(ctx, change.ListID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.ErrorContext(ctx, "list missing for change",
					slog.String("change_id", change.ID.String()),
					slog.String("list_id", change.ListID.String()),
				)
				return domain.ErrListMissingForChange
			}
			return fmt.Errorf("get list: %w", err)
		}

		now := s.clock.Now()
		if err := s.apply(ctx, change, list, now); err != nil {
			return err
		}

		approved, err = s.changes.MarkApproved(ctx, change.ID, reviewerID, now)
		if err != nil {
			return fmt.Errorf("mark approved: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapReviewError("moderation.Approve", err)
	}

	s.details.Invalidate(context.WithoutCancel(ctx), list.OwnerAccountID, list.ID)

	s.log.InfoContext(ctx, "change approved",
		slog.String("change_id", approved.ID.String()),
		slog.String("list_id", approved.ListID.String()),
		slog.String("type", approved.Type.String()),
		slog.String("reviewer_id", reviewerID.String()),
	)

	return approved, nil
}

// Reject marks a pending change rejected without touching the list.
func (s *Service) Reject(ctx context.Context, changeID, reviewerID uuid.UUID) (*domain.ListChange, error) {
	var rejected *domain.ListChange

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		change, err := s.lockPending(ctx, changeID, reviewerID)
		if err != nil {
			return err
		}

		rejected, err = s.changes.MarkRejected(ctx, change.ID, reviewerID, s.clock.Now())
		if err != nil {
			return fmt.Errorf("mark rejected: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapReviewError("moderation.Reject", err)
	}

	s.log.InfoContext(ctx, "change rejected",
		slog.String("change_id", rejected.ID.String()),
		slog.String("reviewer_id", reviewerID.String()),
	)

	return rejected, nil
}

// lockPending loads a pending change under a row lock and enforces the
// self-review guard. Must be called inside a transaction.
func (s *Service) lockPending(ctx context.Context, changeID, reviewerID uuid.UUID) (*domain.ListChange, error) {
	change, err := s.changes.GetPendingForUpdate(ctx, changeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrChangeNotFound
		}
		return nil, fmt.Errorf("lock change: %w", err)
	}

	if change.ProposedBy(reviewerID) {
		return nil, domain.ErrSelfReviewForbidden
	}

	return change, nil
}

// wrapReviewError adds operation context to infrastructure failures.
// Domain errors are returned as is so callers see the original kind.
func wrapReviewError(op string, err error) error {
	if isDomainError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isDomainError(err error) bool {
	for _, kind := range []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrForbidden,
		domain.ErrUnsupported,
		domain.ErrAlreadyExists,
		domain.ErrConflict,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
