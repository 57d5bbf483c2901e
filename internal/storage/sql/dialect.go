package sql

import "fmt"

// Dialect defines database-specific SQL syntax
type Dialect interface {
	// PlaceholderFormat returns the format for SQL placeholders ("?" or "$")
	PlaceholderFormat() string

	// TimeType returns the column type for storing timestamps
	TimeType() string

	// CreateTableSQL returns SQL for creating the tasks table
	CreateTableSQL(tableName string) string
}

// BaseDialect provides common implementations
type BaseDialect struct{}

// PlaceholderFormat returns "$" as the default placeholder format
func (d *BaseDialect) PlaceholderFormat() string {
	return "$"
}

// TimeType returns timestamp as the default time type
func (d *BaseDialect) TimeType() string {
	return "timestamp"
}

// CreateTableSQL returns the default table creation SQL
func (d *BaseDialect) CreateTableSQL(tableName string) string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id VARCHAR(36) PRIMARY KEY,
			title TEXT NOT NULL,
			project VARCHAR(255),
			assignee VARCHAR(255),
			status VARCHAR(20) NOT NULL,
			created_at %s NOT NULL,
			closed_at %s
		);
		CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON %s (created_at);
		CREATE INDEX IF NOT EXISTS idx_tasks_status ON %s (status);
		CREATE INDEX IF NOT EXISTS idx_tasks_project ON %s (project);
		CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON %s (assignee);
	`, tableName, d.TimeType(), d.TimeType(),
		tableName, tableName, tableName, tableName)
}
