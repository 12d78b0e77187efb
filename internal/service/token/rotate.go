package token

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/auth"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// errLostRace signals that another rotation marked the token used first.
var errLostRace = errors.New("token already used")

// Rotate exchanges a presented refresh token for a new one in the same session.
//
// Presenting a revoked or already used token kills the whole session and
// raises a reuse alert. An expired token or session fails with
// domain.ErrExpiredRefreshToken.
func (s *Service) Rotate(ctx context.Context, raw string) (*Issued, error) {
	if raw == "" {
		return nil, domain.ErrInvalidRefreshToken
	}

	t, err := s.tokens.GetByHash(ctx, auth.HashToken(raw))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("token.Rotate get token: %w", err)
	}

	if t.IsRevoked() || t.Session.IsRevoked() || t.IsUsed() {
		return nil, s.reuseDetected(ctx, t)
	}

	now := s.clock.Now()

	if t.IsExpired(now) {
		if err := s.tokens.RevokeToken(ctx, t.ID, now); err != nil {
			return nil, fmt.Errorf("token.Rotate revoke expired token: %w", err)
		}
		return nil, domain.ErrExpiredRefreshToken
	}

	if t.Session.IsExpired(now) {
		if err := s.tokens.RevokeSession(ctx, t.SessionID, now); err != nil {
			return nil, fmt.Errorf("token.Rotate revoke expired session: %w", err)
		}
		return nil, domain.ErrExpiredRefreshToken
	}

	var issued *Issued
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ok, err := s.tokens.MarkUsed(txCtx, t.ID, now)
		if err != nil {
			return fmt.Errorf("mark used: %w", err)
		}
		if !ok {
			return errLostRace
		}

		issued, err = s.mint(txCtx, &t.Session, now)
		return err
	})
	if errors.Is(err, errLostRace) {
		return nil, s.reuseDetected(ctx, t)
	}
	if err != nil {
		return nil, fmt.Errorf("token.Rotate: %w", err)
	}

	return issued, nil
}

// reuseDetected revokes the token's session, fires the alert and returns the reuse error.
// The alert fires even when the revoke fails.
func (s *Service) reuseDetected(ctx context.Context, t *domain.RefreshToken) error {
	revokeErr := s.tokens.RevokeSession(ctx, t.SessionID, s.clock.Now())

	s.alerts.NotifyRefreshTokenReuse(ctx, t.AccountID)

	if revokeErr != nil {
		s.log.ErrorContext(ctx, "revoke session after reuse failed",
			slog.String("session_id", t.SessionID.String()),
			slog.String("error", revokeErr.Error()))
		return fmt.Errorf("token.Rotate revoke session: %w", errors.Join(domain.ErrRefreshTokenReuse, revokeErr))
	}

	return domain.ErrRefreshTokenReuse
}

// RevokeAll revokes every session and token of accountID.
func (s *Service) RevokeAll(ctx context.Context, accountID uuid.UUID) error {
	if err := s.tokens.RevokeAllForAccount(ctx, accountID, s.clock.Now()); err != nil {
		return fmt.Errorf("token.RevokeAll: %w", err)
	}
	return nil
}

// Cleanup deletes expired sessions and sessions revoked longer ago than the
// retention window. Returns the number of deleted sessions.
func (s *Service) Cleanup(ctx context.Context) (int, error) {
	now := s.clock.Now()

	count, err := s.tokens.DeleteStale(ctx, now, now.Add(-s.revokedRetention))
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("token.Cleanup: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up refresh sessions", slog.Int("count", count))
	}

	return count, nil
}
