package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// postgres
	PostgresHost string `toml:"postgres_host"`
	PostgresPort string `toml:"postgres_port"`
	PostgresUser string `toml:"postgres_user"`
	PostgresDB   string `toml:"postgres_db"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// auth
	TokenTTL               Duration `toml:"token_ttl"`
	TokenCacheTTL          Duration `toml:"token_cache_ttl"`
	SessionCleanupInterval Duration `toml:"session_cleanup_interval"`
	// rate limiting, requests per minute per client
	RateLimitPerMinute      int `toml:"rate_limit_per_minute"`
	LoginRateLimitPerMinute int `toml:"login_rate_limit_per_minute"`

	AllowedOrigins   []string `toml:"allowed_origins"`
	HoneycombEnabled bool     `toml:"honeycomb_enabled"`
	SentryEnabled    bool     `toml:"sentry_enabled"`

	// secrets, read from env
	PostgresPassword string `toml:"-"`
	RedisPassword    string `toml:"-"`
	JWTSecret        string `toml:"-"`
	SentryDSN        string `toml:"-"`
}

// Duration lets TOML carry values like "720h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
	Testing     *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "test", "testing":
		cfg = t.Testing
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file, picks the env section, applies defaults
// and reads secrets from the environment.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.PostgresPassword = os.Getenv("SWIMCOACH_DB_PASSWORD")
	cfg.RedisPassword = os.Getenv("SWIMCOACH_REDIS_PASSWORD")
	cfg.JWTSecret = os.Getenv("SWIMCOACH_JWT_SECRET")
	cfg.SentryDSN = os.Getenv("SENTRY_DSN")

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("SWIMCOACH_JWT_SECRET not set")
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5000
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.TokenTTL.Duration == 0 {
		c.TokenTTL.Duration = 30 * 24 * time.Hour
	}
	if c.TokenCacheTTL.Duration == 0 {
		c.TokenCacheTTL.Duration = time.Minute
	}
	if c.SessionCleanupInterval.Duration == 0 {
		c.SessionCleanupInterval.Duration = 30 * time.Minute
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 300
	}
	if c.LoginRateLimitPerMinute == 0 {
		c.LoginRateLimitPerMinute = 10
	}
}
