package storage

import (
	"context"
	"time"
)

// Task statuses. New tasks start open; closing a task records the time.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Task is a unit of tracked work
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Project   string     `json:"project,omitempty"`
	Assignee  string     `json:"assignee,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// QueryOptions contains options for querying tasks
type QueryOptions struct {
	Statuses []string  // Task statuses to filter by
	Project  string    // Project to filter by
	Assignee string    // Assignee to filter by
	Since    time.Time // Start of creation-time range
	Until    time.Time // End of creation-time range
	Limit    int       // Maximum number of tasks to return
	Offset   int       // Offset for pagination
}

// StatusStat represents per-status task counts
type StatusStat struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Store defines the interface for task storage
type Store interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id string) (*Task, error)
	ListTasks(ctx context.Context, opts QueryOptions) ([]*Task, int, error)
	CountTasks(ctx context.Context, opts QueryOptions) (int, error)
	UpdateTaskStatus(ctx context.Context, id, status string) error
	GetStats(ctx context.Context, since time.Time) (map[string]int64, error)
	CreateSchema(ctx context.Context) error
	Close() error
}
