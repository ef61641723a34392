package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/repository"
)

func testRecord() *domain.Project {
	return &domain.Project{
		ID:             42,
		ProjectName:    "Valve Replacement",
		ProjectManager: "Rivera",
		City:           "Fresno",
		CommitmentDate: "06/15/2024",
		DateCategory:   domain.CategoryThisWeek,
	}
}

func TestProjectTable_PlainOutput(t *testing.T) {
	out := ProjectTable([]*domain.Project{testRecord()}, []string{"projectName", "city"}, true)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "ID\tWhen\tProject\tCity", lines[0])
	assert.Equal(t, "42\tthisWeek\tValve Replacement\tFresno", lines[1])
}

func TestProjectTable_AnnotatesChangedCells(t *testing.T) {
	p := testRecord()
	p.IsChanged = true
	p.Changes = domain.Changes{"city": "Modesto"}

	out := ProjectTable([]*domain.Project{p}, []string{"city"}, true)
	assert.Contains(t, out, "Fresno (was Modesto)")
}

func TestProjectTable_EmptyValuesDashed(t *testing.T) {
	p := &domain.Project{ID: 1, DateCategory: domain.CategoryNone}
	out := ProjectTable([]*domain.Project{p}, []string{"projectName"}, true)
	assert.Contains(t, out, "--")
}

func TestProjectDetail_SkipsEmptyFieldsShowsChanges(t *testing.T) {
	p := testRecord()
	p.Changes = domain.Changes{"city": "Modesto"}

	out := ProjectDetail(p)
	assert.Contains(t, out, "Valve Replacement")
	assert.Contains(t, out, "Fresno")
	assert.Contains(t, out, "Modesto")
	assert.NotContains(t, out, "Bundle ID", "blank fields stay out of the detail view")
}

func TestChangeLog_Plain(t *testing.T) {
	changes := []repository.ChangeRecord{
		{FieldName: "mob", OldValue: "06/01/2024", NewValue: "07/15/2024", ChangedAt: "2024-06-01T10:00:00Z"},
	}
	out := ChangeLog(changes, true)
	assert.Contains(t, out, "MOB")
	assert.Contains(t, out, "06/01/2024")
	assert.Contains(t, out, "07/15/2024")
}

func TestImportSummary_Counters(t *testing.T) {
	out := ImportSummary(10, 2, 8, 3)
	assert.Contains(t, out, "10 records")
	assert.Contains(t, out, "2 new")
	assert.Contains(t, out, "8 updated")
	assert.Contains(t, out, "3 changed")

	quiet := ImportSummary(5, 0, 0, 0)
	assert.Equal(t, "5 records", quiet)
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "Long Header"}, [][]string{{"x", "y"}, {"longer", "z"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, separator, two rows
}
