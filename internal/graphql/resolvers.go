package graphql

import (
	"fmt"
	"time"

	"gqlgate/internal/storage"

	"github.com/graphql-go/graphql"
)

// resolveTasks handles the tasks query
func (s *Schema) resolveTasks(p graphql.ResolveParams) (interface{}, error) {
	opts := storage.QueryOptions{
		Limit:  50, // Default limit
		Offset: 0,  // Default offset
	}

	if status, ok := p.Args["status"].(string); ok && status != "" {
		opts.Statuses = []string{status}
	}

	if project, ok := p.Args["project"].(string); ok && project != "" {
		opts.Project = project
	}

	if assignee, ok := p.Args["assignee"].(string); ok && assignee != "" {
		opts.Assignee = assignee
	}

	if since, ok := p.Args["since"].(time.Time); ok {
		opts.Since = since
	}

	if until, ok := p.Args["until"].(time.Time); ok {
		opts.Until = until
	}

	if limit, ok := p.Args["limit"].(int); ok && limit > 0 {
		opts.Limit = limit
	}

	if offset, ok := p.Args["offset"].(int); ok && offset >= 0 {
		opts.Offset = offset
	}

	tasks, total, err := s.store.ListTasks(p.Context, opts)
	if err != nil {
		s.logger.Error("Error listing tasks", "error", err)
		return nil, err
	}

	return map[string]interface{}{
		"tasks": tasks,
		"total": total,
	}, nil
}

// resolveTask handles the task query
func (s *Schema) resolveTask(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("invalid task ID")
	}

	task, err := s.store.GetTask(p.Context, id)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("task not found")
		}
		s.logger.Error("Error getting task", "error", err)
		return nil, err
	}

	return task, nil
}

// resolveStats handles the stats query
func (s *Schema) resolveStats(p graphql.ResolveParams) (interface{}, error) {
	var since time.Time
	if sinceArg, ok := p.Args["since"].(time.Time); ok {
		since = sinceArg
	}

	statsMap, err := s.store.GetStats(p.Context, since)
	if err != nil {
		s.logger.Error("Error getting stats", "error", err)
		return nil, err
	}

	stats := make([]map[string]interface{}, 0, len(statsMap))
	for status, count := range statsMap {
		stats = append(stats, map[string]interface{}{
			"status": status,
			"count":  count,
		})
	}

	return stats, nil
}

// resolveCreateTask handles the createTask mutation
func (s *Schema) resolveCreateTask(p graphql.ResolveParams) (interface{}, error) {
	title, ok := p.Args["title"].(string)
	if !ok || title == "" {
		return nil, fmt.Errorf("invalid task title")
	}

	task := &storage.Task{
		Title:     title,
		Status:    storage.StatusOpen,
		CreatedAt: time.Now().UTC(),
	}

	if project, ok := p.Args["project"].(string); ok {
		task.Project = project
	}
	if assignee, ok := p.Args["assignee"].(string); ok {
		task.Assignee = assignee
	}

	if err := s.store.CreateTask(p.Context, task); err != nil {
		s.logger.Error("Error creating task", "error", err)
		return nil, err
	}

	return task, nil
}

// resolveCloseTask handles the closeTask mutation
func (s *Schema) resolveCloseTask(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("invalid task ID")
	}

	if err := s.store.UpdateTaskStatus(p.Context, id, storage.StatusClosed); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("task not found")
		}
		s.logger.Error("Error closing task", "error", err)
		return nil, err
	}

	task, err := s.store.GetTask(p.Context, id)
	if err != nil {
		s.logger.Error("Error getting closed task", "error", err)
		return nil, err
	}

	return task, nil
}
