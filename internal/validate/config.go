package validate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Env validates the service configuration. Fail-fast on bad config.
func Env() error {
	switch b := strings.ToLower(os.Getenv("BOOKS_BACKEND")); b {
	case "", "memory", "sqlite":
	default:
		return fmt.Errorf("BOOKS_BACKEND: unknown backend %q (memory|sqlite)", b)
	}

	switch b := strings.ToLower(os.Getenv("BOOKSV2_BACKEND")); b {
	case "", "memory":
	case "postgres":
		if os.Getenv("DATABASE_URL") == "" {
			return errors.New("BOOKSV2_BACKEND=postgres requires DATABASE_URL")
		}
		switch d := os.Getenv("PG_DRIVER"); d {
		case "", "pgx", "postgres":
		default:
			return fmt.Errorf("PG_DRIVER: unknown driver %q (pgx|postgres)", d)
		}
	default:
		return fmt.Errorf("BOOKSV2_BACKEND: unknown backend %q (memory|postgres)", b)
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err != nil || f <= 0 {
			return fmt.Errorf("RATE_LIMIT_RPS: invalid rate %q", v)
		}
	}
	if err := envMinUint("RATE_LIMIT_BURST", 1); err != nil {
		return fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if err := envMinUint("MAX_BODY_SIZE", 1); err != nil {
		return fmt.Errorf("MAX_BODY_SIZE: %w", err)
	}

	if (os.Getenv("TLS_CERT") == "") != (os.Getenv("TLS_KEY") == "") {
		return errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	return nil
}

// HardeningWarnings returns non-fatal warnings you may want to log on startup.
func HardeningWarnings(appEnv string) []string {
	var warns []string

	if !strings.EqualFold(appEnv, "production") {
		return warns
	}
	if os.Getenv("TLS_CERT") == "" {
		warns = append(warns, "TLS_CERT/TLS_KEY not set; serving plain HTTP in production")
	}
	if u := os.Getenv("UPSTASH_REDIS_URL"); u != "" && strings.HasPrefix(u, "redis://") {
		warns = append(warns, "UPSTASH_REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
	}
	if os.Getenv("UPSTASH_REDIS_URL") == "" && os.Getenv("REDIS_ADDR") == "" {
		warns = append(warns, "no Redis configured; rate limiting is disabled")
	}
	if os.Getenv("REDIS_ADDR") != "" && (os.Getenv("REDIS_PASSWORD") == "" || os.Getenv("REDIS_USER") == "") {
		warns = append(warns, "REDIS_ADDR provided without REDIS_USER/REDIS_PASSWORD; require auth in production")
	}
	return warns
}

// PingRedis checks connectivity with a short timeout.
func PingRedis(rdb *redis.Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_, err := rdb.Ping(ctx).Result()
	return err
}

// Getenv returns the variable or def when unset.
func Getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvFloat returns a positive float variable or def.
func EnvFloat(key string, def float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && f > 0 {
		return f
	}
	return def
}

// EnvInt returns a positive int variable or def.
func EnvInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return def
}

// --- helpers ---

func envMinUint(key string, min uint64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil // unset -> code defaults apply elsewhere
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fmt.Errorf("not a number: %v", err)
	}
	if n < min {
		return fmt.Errorf("must be >= %d", min)
	}
	return nil
}
