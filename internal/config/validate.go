package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if c.Redis.Enabled() && c.Redis.ListDetailTTL <= 0 {
		return fmt.Errorf("redis.list_detail_ttl must be > 0 (got %v)", c.Redis.ListDetailTTL)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if a.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be > 0 (got %v)", a.AccessTokenTTL)
	}
	if a.RefreshSessionTTL <= 0 {
		return fmt.Errorf("refresh_session_ttl must be > 0 (got %v)", a.RefreshSessionTTL)
	}
	if a.RefreshTokenTTL <= 0 {
		return fmt.Errorf("refresh_token_ttl must be > 0 (got %v)", a.RefreshTokenTTL)
	}
	if a.BcryptCost < bcrypt.MinCost || a.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be within [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, a.BcryptCost)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be within [0, max_conns] (got %d)", d.MinConns)
	}
	if d.StatementTimeout < 0 || d.LockTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}
