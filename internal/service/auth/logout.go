package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/gameitems-backend/internal/auth"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
	"github.com/heartmarshall/gameitems-backend/pkg/ctxutil"
)

// Logout revokes every refresh session of the authenticated account.
// Returns ErrUnauthorized if no account ID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.refresh.RevokeAll(ctx, accountID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "account logged out", slog.String("account_id", accountID.String()))
	return nil
}

// ValidateToken validates an access token and returns its claims.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (auth.Claims, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return auth.Claims{}, domain.ErrUnauthorized
	}
	return claims, nil
}
