package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"goeed/adapters/postgres"
	"goeed/app"
	"goeed/internal/api"
	"goeed/ports"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var repo ports.RunRepository
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			log.Fatalf("[api] connecting to postgres: %v", err)
		}
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("[api] preparing schema: %v", err)
		}
		repo = postgres.NewRunRepository(db)
		log.Printf("[api] run persistence enabled")
	} else {
		log.Printf("[api] DATABASE_URL not set, run persistence disabled")
	}

	workers := 0 // one per CPU
	service := app.NewEvalService(repo, workers)

	router := gin.Default()
	api.NewScoreHandler(service, repo).RegisterRoutes(router)

	addr := ":" + envOr("PORT", "8080")
	log.Printf("[api] listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("[api] server failed: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
