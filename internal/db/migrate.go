package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/dfields/schedtrack/internal/domain"
)

// Migrate runs all schema migrations. The projects table is generated from
// the field registry so the schema cannot drift from the record shape.
func Migrate(db *sql.DB) error {
	stmts := append([]string{projectsTableDDL()}, migrations...)
	for i, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// projectsTableDDL builds the projects table: one column per registry field
// plus the bookkeeping columns the merge and store layers maintain.
func projectsTableDDL() string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS projects (\n")
	b.WriteString("\tid INTEGER PRIMARY KEY,\n")
	for _, f := range domain.Fields {
		switch f.Kind {
		case domain.KindYear:
			fmt.Fprintf(&b, "\t%s INTEGER NOT NULL DEFAULT 0,\n", f.Column)
		default:
			fmt.Fprintf(&b, "\t%s TEXT NOT NULL DEFAULT '',\n", f.Column)
		}
	}
	b.WriteString("\tversion INTEGER NOT NULL DEFAULT 0,\n")
	b.WriteString("\tis_changed INTEGER NOT NULL DEFAULT 0,\n")
	b.WriteString("\tlast_updated TEXT NOT NULL DEFAULT ''\n")
	b.WriteString(")")
	return b.String()
}

var migrations = []string{
	`CREATE INDEX IF NOT EXISTS idx_projects_pmo_id ON projects(pmo_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_order ON projects(order_number)`,

	`CREATE TABLE IF NOT EXISTS project_changes (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id  INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		field_name  TEXT NOT NULL,
		old_value   TEXT,
		new_value   TEXT,
		changed_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_project_changes_project ON project_changes(project_id)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}
