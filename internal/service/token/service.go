// Package token implements the refresh token rotation engine: session issue,
// single-use rotation with reuse detection, and revocation.
package token

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/gameitems-backend/internal/config"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// tokenRepo defines the refresh session and token persistence needed by the engine.
type tokenRepo interface {
	CreateSession(ctx context.Context, s *domain.RefreshSession) error
	CreateToken(ctx context.Context, t *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	MarkUsed(ctx context.Context, tokenID uuid.UUID, at time.Time) (bool, error)
	RevokeToken(ctx context.Context, tokenID uuid.UUID, at time.Time) error
	RevokeSession(ctx context.Context, sessionID uuid.UUID, at time.Time) error
	RevokeAllForAccount(ctx context.Context, accountID uuid.UUID, at time.Time) error
	DeleteStale(ctx context.Context, now, revokedBefore time.Time) (int, error)
}

// txManager defines the transaction manager interface needed by the engine.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service issues and rotates refresh tokens.
type Service struct {
	log              *slog.Logger
	tokens           tokenRepo
	tx               txManager
	alerts           AlertSink
	clock            clockwork.Clock
	sessionTTL       time.Duration
	tokenTTL         time.Duration
	revokedRetention time.Duration
}

// NewService creates a new refresh token service.
func NewService(
	logger *slog.Logger,
	tokens tokenRepo,
	tx txManager,
	alerts AlertSink,
	clock clockwork.Clock,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:              logger.With("service", "token"),
		tokens:           tokens,
		tx:               tx,
		alerts:           alerts,
		clock:            clock,
		sessionTTL:       cfg.RefreshSessionTTL,
		tokenTTL:         cfg.RefreshTokenTTL,
		revokedRetention: cfg.RevokedRetention,
	}
}

// Issued is a freshly minted refresh credential.
type Issued struct {
	AccountID uuid.UUID
	SessionID uuid.UUID
	Token     string // raw token, NOT hash
	ExpiresAt time.Time
}

// tokenExpiry caps the token lifetime at the session ceiling.
func (s *Service) tokenExpiry(now, sessionExpiresAt time.Time) time.Time {
	exp := now.Add(s.tokenTTL)
	if sessionExpiresAt.Before(exp) {
		return sessionExpiresAt
	}
	return exp
}
