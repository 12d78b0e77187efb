package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// Refresh rotates the refresh token and signs a new access token.
// Rotation failures (invalid, reused, expired) are returned as-is; they all
// match domain.ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Rotate
	issued, err := s.refresh.Rotate(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
		return nil, fmt.Errorf("auth.Refresh rotate: %w", err)
	}

	// Step 3: Load account for the access token claims
	account, err := s.accounts.GetByID(ctx, issued.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted account",
				slog.String("account_id", issued.AccountID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get account: %w", err)
	}

	// Step 4: Sign access token
	result, err := s.withAccessToken(account, issued)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
