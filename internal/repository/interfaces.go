package repository

import (
	"context"
	"errors"

	"github.com/dfields/schedtrack/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ChangeRecord is one audit-log entry: a single field of a saved project
// overwritten by an update, with the values on both sides.
type ChangeRecord struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	FieldName string `json:"field_name"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
	ChangedAt string `json:"changed_at"`
}

// ProjectStore is the persistence port for schedule records. Update bumps the
// version and appends one ChangeRecord per field that differs from the stored
// row; Delete removes the record's audit trail with it.
type ProjectStore interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	ListChanges(ctx context.Context, projectID int64) ([]ChangeRecord, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
