package task

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tasksCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasksapi_tasks_created_total",
			Help: "Total number of task insert operations",
		},
		[]string{"status"},
	)

	tasksListed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasksapi_tasks_listed_total",
			Help: "Total number of task list operations",
		},
		[]string{"status"},
	)

	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tasksapi_query_duration_seconds",
			Help:    "Duration of task table queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

// PGRepo runs each operation as a single statement against the shared
// pool; the pool hands out and returns connections per call.
type PGRepo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *PGRepo {
	return &PGRepo{pool: pool}
}

func (r *PGRepo) List(ctx context.Context) ([]Task, error) {
	start := time.Now()
	defer func() {
		queryDuration.WithLabelValues("list").Observe(time.Since(start).Seconds())
	}()

	rows, err := r.pool.Query(ctx,
		`select id, title, description, created_at from tasks order by created_at desc`)
	if err != nil {
		tasksListed.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	out := []Task{}
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedAt); err != nil {
			tasksListed.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		tasksListed.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	tasksListed.WithLabelValues("success").Inc()
	return out, nil
}

func (r *PGRepo) Create(ctx context.Context, title string, description *string) (int64, error) {
	start := time.Now()
	defer func() {
		queryDuration.WithLabelValues("create").Observe(time.Since(start).Seconds())
	}()

	var id int64
	err := r.pool.QueryRow(ctx,
		`insert into tasks (title, description) values ($1, $2) returning id`,
		title, description).Scan(&id)
	if err != nil {
		tasksCreated.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("insert task: %w", err)
	}

	tasksCreated.WithLabelValues("success").Inc()
	return id, nil
}
