package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/5w1tchy/books-store/internal/api/router"
	"github.com/5w1tchy/books-store/internal/api/server"
	"github.com/5w1tchy/books-store/internal/models"
	"github.com/5w1tchy/books-store/internal/repo/booksrepo"
	"github.com/5w1tchy/books-store/internal/repository/redisconnect"
	"github.com/5w1tchy/books-store/internal/repository/sqlconnect"
	"github.com/5w1tchy/books-store/internal/validate"
)

func main() {
	_ = godotenv.Load()

	if err := validate.Env(); err != nil {
		log.Fatalf("config: %v", err)
	}
	for _, w := range validate.HardeningWarnings(os.Getenv("APP_ENV")) {
		log.Printf("[books] warning: %s", w)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var store booksrepo.Store
	switch backend := strings.ToLower(validate.Getenv("BOOKS_BACKEND", "memory")); backend {
	case "sqlite":
		db, err := sqlconnect.ConnectSQLite(ctx, validate.Getenv("SQLITE_PATH", sqlconnect.DefaultSQLitePath))
		if err != nil {
			log.Fatalf("sqlite: %v", err)
		}
		defer db.Close()
		s, err := booksrepo.NewSQLiteStore(ctx, db)
		if err != nil {
			log.Fatalf("sqlite: %v", err)
		}
		store = s
	default:
		store = booksrepo.NewMemoryStore(nil)
	}
	if err := store.Reset(ctx, models.SeedBooks()); err != nil {
		log.Fatalf("seed: %v", err)
	}

	rdb, err := redisconnect.FromEnv()
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
		// limiters fail open, so an unreachable Redis is only worth a warning
		if err := validate.PingRedis(rdb, 2*time.Second); err != nil {
			log.Printf("[books] warning: redis unreachable: %v", err)
		}
	}

	log.Printf("[books] backend=%s", validate.Getenv("BOOKS_BACKEND", "memory"))
	cfg := server.Config{
		Service: "books",
		Addr:    validate.Getenv("BOOKS_ADDR", ":8000"),
		Redis:   rdb,
	}
	if err := server.Run(server.New(router.Books(store), cfg), cfg.Service); err != nil {
		log.Fatalf("[books] server: %v", err)
	}
}
