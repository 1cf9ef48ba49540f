package server

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	mw "github.com/5w1tchy/books-store/internal/api/middlewares"
	"github.com/5w1tchy/books-store/internal/validate"
)

const shutdownTimeout = 5 * time.Second

// Config describes one book service process.
type Config struct {
	Service string // log tag and rate limit key prefix, e.g. "books"
	Addr    string
	Redis   *redis.Client // nil disables rate limiting
}

// Secure wraps h with the middleware chain shared by both services. The
// last middleware listed runs first, so Recovery sees every panic.
func Secure(h http.Handler, cfg Config) http.Handler {
	var tb, sw, writes mw.Middleware
	if cfg.Redis != nil {
		rate := validate.EnvFloat("RATE_LIMIT_RPS", 5)
		burst := validate.EnvInt("RATE_LIMIT_BURST", 20)
		tb = mw.NewRedisTokenBucket(cfg.Redis, rate, burst, mw.PerIPKey(cfg.Service+":tb")).Middleware
		sw = mw.NewRedisSlidingWindow(cfg.Redis, 3000, time.Hour, mw.PerIPKey(cfg.Service+":sw")).Middleware
		writes = mw.WriteRateLimit(cfg.Redis, cfg.Service, 300, time.Minute)
	}

	return mw.Apply(h,
		mw.BodySizeLimit,
		mw.Compression,
		writes,
		sw,
		tb,
		mw.HPP(mw.DefaultHPPOptions()),
		mw.Cors(mw.AllowedOrigins()),
		mw.SecurityHeaders,
		mw.ResponseTime(cfg.Service),
		mw.RequestID,
		mw.Recovery,
	)
}

// New builds the http.Server with the timeouts used in production.
func New(h http.Handler, cfg Config) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           Secure(h, cfg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
	}
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully. HTTPS is
// used when TLS_CERT and TLS_KEY are both set.
func Run(srv *http.Server, service string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, srv, service, os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY"))
}

func serve(ctx context.Context, srv *http.Server, service, cert, key string) error {
	errCh := make(chan error, 1)
	go func() {
		var err error
		if cert != "" && key != "" {
			log.Printf("[%s] listening on %s (TLS)", service, srv.Addr)
			err = srv.ListenAndServeTLS(cert, key)
		} else {
			log.Printf("[%s] listening on %s", service, srv.Addr)
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("[%s] shutting down", service)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
