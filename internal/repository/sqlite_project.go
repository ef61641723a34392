package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dfields/schedtrack/internal/db"
	"github.com/dfields/schedtrack/internal/domain"
)

// SQLiteProjectStore implements ProjectStore using a SQLite database. All SQL
// is generated from the field registry, so the column set follows the record
// shape without hand-maintained lists.
type SQLiteProjectStore struct {
	db db.DBTX
}

// NewSQLiteProjectStore creates a SQLiteProjectStore. Pass a *sql.DB for
// standalone use or the DBTX from a UnitOfWork callback for tx-scoped use.
func NewSQLiteProjectStore(conn db.DBTX) *SQLiteProjectStore {
	return &SQLiteProjectStore{db: conn}
}

var (
	projectColumns = buildProjectColumns()
	selectProjects = "SELECT " + strings.Join(projectColumns, ", ") + " FROM projects"
	insertProject  = "INSERT INTO projects (" + strings.Join(projectColumns, ", ") + ") VALUES (" + placeholders(len(projectColumns)) + ")"
	updateProject  = buildUpdateProject()
)

func buildProjectColumns() []string {
	cols := make([]string, 0, len(domain.Fields)+4)
	cols = append(cols, "id")
	for _, f := range domain.Fields {
		cols = append(cols, f.Column)
	}
	return append(cols, "version", "is_changed", "last_updated")
}

func buildUpdateProject() string {
	var b strings.Builder
	b.WriteString("UPDATE projects SET ")
	for _, f := range domain.Fields {
		fmt.Fprintf(&b, "%s = ?, ", f.Column)
	}
	b.WriteString("version = ?, is_changed = ?, last_updated = ? WHERE id = ?")
	return b.String()
}

func (r *SQLiteProjectStore) Create(ctx context.Context, p *domain.Project) error {
	args := make([]any, 0, len(projectColumns))
	args = append(args, p.ID)
	for _, f := range domain.Fields {
		args = append(args, f.Get(p))
	}
	args = append(args, p.Version, boolToInt(p.IsChanged), p.LastUpdated)

	if _, err := r.db.ExecContext(ctx, insertProject, args...); err != nil {
		return fmt.Errorf("inserting project %d: %w", p.ID, err)
	}
	return nil
}

func (r *SQLiteProjectStore) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, selectProjects+" WHERE id = ?", id)
	p, err := scanProject(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project %d: %w", id, err)
	}
	return p, nil
}

func (r *SQLiteProjectStore) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectProjects+" ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

// Update overwrites the stored row with p's field values, bumps the stored
// version by one, and appends one audit entry per field whose value changed.
func (r *SQLiteProjectStore) Update(ctx context.Context, p *domain.Project) error {
	current, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}

	now := nowUTC()
	args := make([]any, 0, len(domain.Fields)+4)
	for _, f := range domain.Fields {
		args = append(args, f.Get(p))
	}
	args = append(args, current.Version+1, boolToInt(p.IsChanged), now, p.ID)

	if _, err := r.db.ExecContext(ctx, updateProject, args...); err != nil {
		return fmt.Errorf("updating project %d: %w", p.ID, err)
	}

	const insertChange = `INSERT INTO project_changes (project_id, field_name, old_value, new_value, changed_at)
		VALUES (?, ?, ?, ?, ?)`
	for _, f := range domain.Fields {
		oldV, newV := f.Get(current), f.Get(p)
		if oldV == newV {
			continue
		}
		if _, err := r.db.ExecContext(ctx, insertChange, p.ID, f.Name, valueString(oldV), valueString(newV), now); err != nil {
			return fmt.Errorf("recording change to %s on project %d: %w", f.Name, p.ID, err)
		}
	}
	return nil
}

func (r *SQLiteProjectStore) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting project %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("project %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProjectStore) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("deleting all projects: %w", err)
	}
	return nil
}

func (r *SQLiteProjectStore) ListChanges(ctx context.Context, projectID int64) ([]ChangeRecord, error) {
	query := `SELECT id, project_id, field_name, old_value, new_value, changed_at
		FROM project_changes WHERE project_id = ? ORDER BY changed_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing changes for project %d: %w", projectID, err)
	}
	defer rows.Close()

	var changes []ChangeRecord
	for rows.Next() {
		var c ChangeRecord
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.FieldName, &c.OldValue, &c.NewValue, &c.ChangedAt); err != nil {
			return nil, fmt.Errorf("scanning change row: %w", err)
		}
		changes = append(changes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating changes: %w", err)
	}
	return changes, nil
}

// scanProject scans one row using the registry's field pointers, in the same
// order projectColumns lists them.
func scanProject(scan func(dest ...any) error) (*domain.Project, error) {
	var p domain.Project
	var isChanged int

	dest := make([]any, 0, len(projectColumns))
	dest = append(dest, &p.ID)
	for _, f := range domain.Fields {
		dest = append(dest, f.Ptr(&p))
	}
	dest = append(dest, &p.Version, &isChanged, &p.LastUpdated)

	if err := scan(dest...); err != nil {
		return nil, err
	}
	p.IsChanged = intToBool(isChanged)
	return &p, nil
}
