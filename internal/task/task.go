package task

import (
	"context"
	"time"
)

// Task is the single persisted entity: a titled note with an optional
// description and a server-assigned id and creation timestamp.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repo is what the HTTP handlers depend on; tests substitute a fake.
type Repo interface {
	List(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, title string, description *string) (int64, error)
}
