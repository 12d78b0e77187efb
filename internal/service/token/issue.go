package token

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/auth"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// Issue opens a new refresh session for account and mints its first token.
func (s *Service) Issue(ctx context.Context, account *domain.Account) (*Issued, error) {
	now := s.clock.Now()
	session := &domain.RefreshSession{
		ID:        uuid.New(),
		AccountID: account.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	var issued *Issued
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.CreateSession(txCtx, session); err != nil {
			return fmt.Errorf("create session: %w", err)
		}

		var err error
		issued, err = s.mint(txCtx, session, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("token.Issue: %w", err)
	}

	s.log.InfoContext(ctx, "refresh session opened",
		slog.String("account_id", account.ID.String()),
		slog.String("session_id", session.ID.String()))

	return issued, nil
}

// mint stores a new token under session, expiring no later than the session.
func (s *Service) mint(ctx context.Context, session *domain.RefreshSession, now time.Time) (*Issued, error) {
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	t := &domain.RefreshToken{
		ID:        uuid.New(),
		SessionID: session.ID,
		AccountID: session.AccountID,
		TokenHash: hash,
		CreatedAt: now,
		ExpiresAt: s.tokenExpiry(now, session.ExpiresAt),
	}
	if err := s.tokens.CreateToken(ctx, t); err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	return &Issued{
		AccountID: session.AccountID,
		SessionID: session.ID,
		Token:     raw,
		ExpiresAt: t.ExpiresAt,
	}, nil
}
