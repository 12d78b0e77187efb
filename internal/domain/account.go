package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user of the checklist API.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Role maps the admin flag onto the role carried in access tokens.
func (a *Account) Role() UserRole {
	if a.IsAdmin {
		return UserRoleAdmin
	}
	return UserRoleUser
}

// RefreshSession is a long-lived grant that owns a chain of single-use refresh tokens.
type RefreshSession struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the session has been revoked.
func (s *RefreshSession) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsExpired returns true once now has reached the session ceiling.
func (s *RefreshSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// RefreshToken represents a hashed, single-use refresh token stored in the database.
// Session is populated by lookups that join the owning session.
type RefreshToken struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	AccountID uuid.UUID
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
	UsedAt    *time.Time
	RevokedAt *time.Time
	Session   RefreshSession
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsUsed returns true if the token was already exchanged.
func (t *RefreshToken) IsUsed() bool {
	return t.UsedAt != nil
}

// IsExpired returns true once now has reached the token expiry.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
