package sql

import "fmt"

// SQLiteDialect implements Dialect for SQLite
type SQLiteDialect struct {
	BaseDialect
}

func (d *SQLiteDialect) PlaceholderFormat() string {
	return "?"
}

func (d *SQLiteDialect) TimeType() string {
	return "DATETIME"
}

// PostgresDialect implements Dialect for PostgreSQL
type PostgresDialect struct {
	BaseDialect
}

func (d *PostgresDialect) PlaceholderFormat() string {
	return "$"
}

func (d *PostgresDialect) TimeType() string {
	return "TIMESTAMP WITH TIME ZONE"
}

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct {
	BaseDialect
}

func (d *MySQLDialect) PlaceholderFormat() string {
	return "?"
}

func (d *MySQLDialect) TimeType() string {
	return "DATETIME"
}

// CreateTableSQL declares indexes inline; MySQL has no
// CREATE INDEX IF NOT EXISTS and the driver rejects multi-statement exec.
func (d *MySQLDialect) CreateTableSQL(tableName string) string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id VARCHAR(36) PRIMARY KEY,
			title TEXT NOT NULL,
			project VARCHAR(255),
			assignee VARCHAR(255),
			status VARCHAR(20) NOT NULL,
			created_at %s NOT NULL,
			closed_at %s,
			INDEX idx_tasks_created_at (created_at),
			INDEX idx_tasks_status (status),
			INDEX idx_tasks_project (project),
			INDEX idx_tasks_assignee (assignee)
		)
	`, tableName, d.TimeType(), d.TimeType())
}
