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
	"github.com/5w1tchy/books-store/internal/repo/booksv2repo"
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
		log.Printf("[booksv2] warning: %s", w)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var store booksv2repo.Store
	switch backend := strings.ToLower(validate.Getenv("BOOKSV2_BACKEND", "memory")); backend {
	case "postgres":
		db, err := sqlconnect.ConnectPostgres(ctx, os.Getenv("PG_DRIVER"), os.Getenv("DATABASE_URL"))
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer db.Close()
		s := booksv2repo.NewPostgresStore(db)
		if err := s.Migrate(ctx); err != nil {
			log.Fatalf("postgres migrate: %v", err)
		}
		store = s
	default:
		store = booksv2repo.NewMemoryStore(nil)
	}
	if err := store.Reset(ctx, models.SeedBooksV2()); err != nil {
		log.Fatalf("seed: %v", err)
	}

	rdb, err := redisconnect.FromEnv()
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
		if err := validate.PingRedis(rdb, 2*time.Second); err != nil {
			log.Printf("[booksv2] warning: redis unreachable: %v", err)
		}
	}

	log.Printf("[booksv2] backend=%s", validate.Getenv("BOOKSV2_BACKEND", "memory"))
	cfg := server.Config{
		Service: "booksv2",
		Addr:    validate.Getenv("BOOKSV2_ADDR", ":8001"),
		Redis:   rdb,
	}
	if err := server.Run(server.New(router.BooksV2(store), cfg), cfg.Service); err != nil {
		log.Fatalf("[booksv2] server: %v", err)
	}
}
