package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// StatementTimeout and LockTimeout are sent as runtime parameters on every connection.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"5s"`
	LockTimeout      time.Duration `yaml:"lock_timeout"       env:"DATABASE_LOCK_TIMEOUT"       env-default:"3s"`
}

// RedisConfig holds the list detail cache settings. An empty URL disables the cache.
type RedisConfig struct {
	URL           string        `yaml:"url"             env:"REDIS_URL"`
	ListDetailTTL time.Duration `yaml:"list_detail_ttl" env:"REDIS_LIST_DETAIL_TTL" env-default:"60s"`
	KeyPrefix     string        `yaml:"key_prefix"      env:"REDIS_KEY_PREFIX"      env-default:"gil:list-detail:v1:"`
}

// Enabled reports whether a Redis backend is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.URL) != ""
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"gameitems"`
	JWTAudience       string        `yaml:"jwt_audience"        env:"AUTH_JWT_AUDIENCE"        env-default:"gameitems-api"`
	AccessTokenTTL    time.Duration `yaml:"access_token_ttl"    env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"15m"`
	RefreshSessionTTL time.Duration `yaml:"refresh_session_ttl" env:"AUTH_REFRESH_SESSION_TTL" env-default:"720h"`
	RefreshTokenTTL   time.Duration `yaml:"refresh_token_ttl"   env:"AUTH_REFRESH_TOKEN_TTL"   env-default:"336h"`
	BcryptCost        int           `yaml:"bcrypt_cost"         env:"AUTH_BCRYPT_COST"         env-default:"12"`
	// RevokedRetention is how long revoked sessions are kept before cleanup-tokens purges them.
	RevokedRetention time.Duration `yaml:"revoked_retention" env:"AUTH_REVOKED_RETENTION" env-default:"168h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits unauthenticated auth endpoints per client address.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
