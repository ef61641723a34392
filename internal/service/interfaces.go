package service

import (
	"context"

	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/repository"
)

// ImportOutcome holds the merged working set after an import along with the
// batch counters.
type ImportOutcome struct {
	BatchID string // unique per import run, for log correlation
	Records []*domain.Project
	Total   int
	New     int
	Updated int
	Changed int
}

// RefreshOutcome reports how many saved records a refresh replaced and how
// many saved ids the new file no longer contains.
type RefreshOutcome struct {
	BatchID   string
	Refreshed int
	Missing   int
}

type ImportService interface {
	// ImportFile parses a spreadsheet and merges it into the given working
	// set, diffing against the saved baseline and categorizing by dateField.
	ImportFile(ctx context.Context, path string, working []*domain.Project, dateField string) (*ImportOutcome, error)
	// RefreshSaved replaces every saved record that appears in the file with
	// the file's version of it, wiping its change history.
	RefreshSaved(ctx context.Context, path string) (*RefreshOutcome, error)
}

// SaveOutcome reports a per-record best-effort save.
type SaveOutcome struct {
	Saved  int
	Errors map[int64]error // by record id; empty on full success
}

type ProjectService interface {
	ListSaved(ctx context.Context) ([]*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Save(ctx context.Context, records []*domain.Project) (*SaveOutcome, error)
	Remove(ctx context.Context, id int64) error
	Changes(ctx context.Context, id int64) ([]repository.ChangeRecord, error)

	VisibleColumns(ctx context.Context) ([]string, error)
	SetVisibleColumns(ctx context.Context, fields []string) error
	DateField(ctx context.Context) (string, error)
	SetDateField(ctx context.Context, field string) error
}
