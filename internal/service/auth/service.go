package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/gameitems-backend/internal/auth"
	"github.com/heartmarshall/gameitems-backend/internal/config"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
	"github.com/heartmarshall/gameitems-backend/internal/service/token"
)

// accountRepo defines the account repository interface needed by auth service.
type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, acc *domain.Account) (*domain.Account, error)
}

// refreshTokens defines the rotation engine operations needed by auth service.
type refreshTokens interface {
	Issue(ctx context.Context, account *domain.Account) (*token.Issued, error)
	Rotate(ctx context.Context, raw string) (*token.Issued, error)
	RevokeAll(ctx context.Context, accountID uuid.UUID) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(accountID uuid.UUID, email, role string) (string, time.Time, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	refresh  refreshTokens
	jwt      jwtManager
	clock    clockwork.Clock
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	refresh refreshTokens,
	jwt jwtManager,
	clock clockwork.Clock,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		accounts: accounts,
		refresh:  refresh,
		jwt:      jwt,
		clock:    clock,
		cfg:      cfg,
	}
}

// issueTokens opens a new refresh session for account and signs an access token.
func (s *Service) issueTokens(ctx context.Context, account *domain.Account) (*AuthResult, error) {
	issued, err := s.refresh.Issue(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return s.withAccessToken(account, issued)
}

func (s *Service) withAccessToken(account *domain.Account, issued *token.Issued) (*AuthResult, error) {
	accessToken, accessExp, err := s.jwt.GenerateAccessToken(account.ID, account.Email, account.Role().String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &AuthResult{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     issued.Token,
		RefreshExpiresAt: issued.ExpiresAt,
		Account:          account,
	}, nil
}
