package auth

import (
	"time"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// AuthResult is returned by Register, Login and Refresh operations.
type AuthResult struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string // raw token, NOT hash
	RefreshExpiresAt time.Time
	Account          *domain.Account
}
