package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/importer"
	"github.com/dfields/schedtrack/internal/repository"
	"github.com/dfields/schedtrack/internal/testutil"
)

// writeWorkbook writes a minimal SD-09-shaped workbook to a temp file and
// returns its path. Each data row is pmoID, order, name, projectManager, mob.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", importer.DefaultSheetName))
	header := []any{"", "PMO ID", "Order", "Project Name", "Project Manager", "MOB"}
	require.NoError(t, f.SetSheetRow(importer.DefaultSheetName, "A4", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, 5+i)
		require.NoError(t, err)
		withSpacer := append([]any{""}, row...)
		require.NoError(t, f.SetSheetRow(importer.DefaultSheetName, cell, &withSpacer))
	}
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func newImportFixture(t *testing.T) (ImportService, repository.ProjectStore) {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteProjectStore(database)
	uow := testutil.NewTestUoW(database)
	return NewImportService(store, uow, importer.NewParser("", 0)), store
}

func TestImportFile_FreshDatabase(t *testing.T) {
	svc, _ := newImportFixture(t)

	path := writeWorkbook(t, [][]any{
		{"PM100", "40001", "Valve Replacement", "Rivera", "06/01/2024"},
		{"PM200", "40002", "Regulator Station", "Chen", "07/15/2024"},
	})

	outcome, err := svc.ImportFile(context.Background(), path, nil, "mob")
	require.NoError(t, err)
	assert.NotEmpty(t, outcome.BatchID)
	assert.Equal(t, 2, outcome.Total)
	assert.Equal(t, 2, outcome.New)
	assert.Equal(t, 0, outcome.Updated)
	assert.Equal(t, 0, outcome.Changed)

	for _, p := range outcome.Records {
		assert.NotEqual(t, domain.DateCategory(""), p.DateCategory, "every record gets categorized")
		assert.False(t, p.IsChanged)
	}
}

func TestImportFile_DiffsAgainstSavedBaseline(t *testing.T) {
	svc, store := newImportFixture(t)
	ctx := context.Background()

	saved := testutil.NewTestRecord("PM100", "Valve Replacement", testutil.WithMOB("06/01/2024"))
	require.NoError(t, store.Create(ctx, saved))

	path := writeWorkbook(t, [][]any{
		{"PM100", "40001", "Valve Replacement", "Rivera", "07/15/2024"},
	})

	outcome, err := svc.ImportFile(ctx, path, []*domain.Project{saved.Clone()}, "mob")
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Total)
	assert.Equal(t, 0, outcome.New)
	assert.Equal(t, 1, outcome.Updated)
	assert.Equal(t, 1, outcome.Changed)

	got := outcome.Records[0]
	assert.Equal(t, saved.ID, got.ID, "the business key hash lines up with the fixture")
	assert.True(t, got.IsChanged)
	assert.Equal(t, "07/15/2024", got.MOB)
	assert.Equal(t, "06/01/2024", got.Changes["mob"])
}

func TestImportFile_BadWorkbook(t *testing.T) {
	svc, _ := newImportFixture(t)

	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "wrong.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := svc.ImportFile(context.Background(), path, nil, "mob")
	assert.ErrorIs(t, err, importer.ErrParse)
}

func TestRefreshSaved_ReplacesAndResets(t *testing.T) {
	svc, store := newImportFixture(t)
	ctx := context.Background()

	saved := testutil.NewTestRecord("PM100", "Valve Replacement", testutil.WithMOB("06/01/2024"))
	require.NoError(t, store.Create(ctx, saved))

	// Build up version and history first.
	bumped := saved.Clone()
	bumped.City = "Fresno"
	require.NoError(t, store.Update(ctx, bumped))

	path := writeWorkbook(t, [][]any{
		{"PM100", "40001", "Valve Replacement", "Okafor", "08/01/2024"},
	})

	outcome, err := svc.RefreshSaved(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Refreshed)
	assert.Equal(t, 0, outcome.Missing)

	fresh, err := store.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Okafor", fresh.ProjectManager)
	assert.Equal(t, "08/01/2024", fresh.MOB)
	assert.Equal(t, 0, fresh.Version, "refresh starts the record over")
	assert.False(t, fresh.IsChanged)

	changes, err := store.ListChanges(ctx, saved.ID)
	require.NoError(t, err)
	assert.Empty(t, changes, "delete-then-add wipes the audit trail")
}

func TestRefreshSaved_SavedIDMissingFromFile(t *testing.T) {
	svc, store := newImportFixture(t)
	ctx := context.Background()

	saved := testutil.NewTestRecord("PM100", "Valve Replacement")
	require.NoError(t, store.Create(ctx, saved))

	path := writeWorkbook(t, [][]any{
		{"PM999", "49999", "Unrelated", "Chen", ""},
	})

	outcome, err := svc.RefreshSaved(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Refreshed)
	assert.Equal(t, 1, outcome.Missing)

	// The stale record is left untouched, not deleted.
	_, err = store.GetByID(ctx, saved.ID)
	assert.NoError(t, err)
}
