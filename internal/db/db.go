package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tasks-api/internal/config"
)

const maxConns = 10

// Connect opens the shared pool and verifies it responds before the
// service accepts traffic. The caller decides what to do on failure;
// no retry happens here.
func Connect(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	pc.MaxConns = maxConns

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	// Trivial computation query; a mismatch means the pool is not
	// talking to a sane server.
	var one int
	if err := pool.QueryRow(ctx, `select 1`).Scan(&one); err != nil {
		pool.Close()
		return nil, fmt.Errorf("health check: %w", err)
	}
	if one != 1 {
		pool.Close()
		return nil, fmt.Errorf("health check: got %d, want 1", one)
	}
	return pool, nil
}

// EnsureSchema creates the tasks table if it does not exist yet. Runs
// once at startup, after Connect and before the listener binds.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		create table if not exists tasks (
			id bigserial primary key,
			title text not null,
			description text,
			created_at timestamptz not null default now()
		)`)
	if err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}
