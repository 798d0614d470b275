package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"tasks-api/internal/config"
	dbpkg "tasks-api/internal/db"
	httpx "tasks-api/internal/http"
	"tasks-api/internal/task"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := dbpkg.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := dbpkg.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	srv := httpx.NewServer(task.NewRepo(pool))
	log.Println("listening on :3000")
	log.Fatal(http.ListenAndServe(":3000", srv.R))
}
