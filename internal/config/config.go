// Package config はアプリケーション全体の設定を環境変数から読み込みます。
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings. Database settings live in platform/db.
type Config struct {
	Port string

	JWTSecret string
	JWTTTL    time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string

	// IdempotencyTTL is how long an order request key stays reserved.
	IdempotencyTTL time.Duration

	LogLevel  slog.Level
	LogFormat string

	// CORSAllowedOrigins が空の場合 CORS ミドルウェアは登録しない
	CORSAllowedOrigins []string
}

const (
	defaultPort           = "8080"
	defaultJWTTTL         = 24 * time.Hour
	defaultIdempotencyTTL = 24 * time.Hour

	// devJWTSecret は JWT_SECRET 未設定時にのみ使われます。本番では必ず上書きしてください。
	devJWTSecret = "dev-secret-change-me"
)

// Load reads .env (if present) and then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("no .env file found, using process environment")
		} else {
			slog.Warn("failed to load .env file", "error", err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	cfg := Config{
		Port:           getEnv("PORT", defaultPort),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTTTL:         getDuration("JWT_TTL", defaultJWTTTL),
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		IdempotencyTTL: getDuration("IDEMPOTENCY_TTL", defaultIdempotencyTTL),
		LogLevel:       parseLevel(os.Getenv("LOG_LEVEL")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "json")),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
		cfg.JWTSecret = devJWTSecret
	}
	return cfg
}

// RedisEnabled reports whether a Redis host was configured.
func (c Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// RedisAddr returns host:port for the Redis client.
func (c Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma separated list, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
