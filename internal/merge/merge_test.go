package merge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/testutil"
)

var mergeNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestDiff_RecordsPriorValues(t *testing.T) {
	saved := testutil.NewTestRecord("PM100", "Valve Replacement", testutil.WithMOB("06/01/2024"))
	incoming := saved.Clone()
	incoming.MOB = "07/15/2024"
	incoming.ProjectManager = "Chen"

	changes := Diff(saved, incoming)
	require.Len(t, changes, 2)
	assert.Equal(t, "06/01/2024", changes["mob"], "the map holds the prior value, not the new one")
	assert.Equal(t, "Rivera", changes["projectManager"])
}

func TestDiff_NoBaselineNoChanges(t *testing.T) {
	incoming := testutil.NewTestRecord("PM100", "Valve Replacement")
	assert.Nil(t, Diff(nil, incoming))
}

func TestDiff_IdenticalRecords(t *testing.T) {
	saved := testutil.NewTestRecord("PM100", "Valve Replacement")
	assert.Empty(t, Diff(saved, saved.Clone()))
}

func TestMerge_NewRecordsAppend(t *testing.T) {
	existing := testutil.NewTestRecord("PM100", "Valve Replacement")
	incoming := testutil.NewTestRecord("PM200", "Regulator Station", testutil.WithOrder("40099"))

	merged := Merge(nil, []*domain.Project{existing}, []*domain.Project{incoming}, mergeNow)
	require.Len(t, merged, 2)
	assert.Equal(t, existing.ID, merged[0].ID, "existing records keep their position")
	assert.Equal(t, incoming.ID, merged[1].ID)
	assert.False(t, merged[1].IsChanged, "a brand-new record carries no changes")
}

func TestMerge_MatchedRecordDiffsAgainstPersisted(t *testing.T) {
	saved := testutil.NewTestRecord("PM100", "Valve Replacement", testutil.WithMOB("06/01/2024"))
	working := saved.Clone()
	incoming := saved.Clone()
	incoming.MOB = "07/15/2024"

	merged := Merge([]*domain.Project{saved}, []*domain.Project{working}, []*domain.Project{incoming}, mergeNow)
	require.Len(t, merged, 1)

	got := merged[0]
	assert.True(t, got.IsChanged)
	assert.Equal(t, "07/15/2024", got.MOB)
	assert.Equal(t, "06/01/2024", got.Changes["mob"])
	assert.Equal(t, mergeNow.Format(time.RFC3339), got.LastUpdated)
}

func TestMerge_ReimportKeepsChangesAgainstBaseline(t *testing.T) {
	// Importing the same file twice without saving must not erase the diff:
	// the second merge still compares against the persisted baseline.
	saved := testutil.NewTestRecord("PM100", "Valve Replacement", testutil.WithMOB("06/01/2024"))
	incoming := saved.Clone()
	incoming.MOB = "07/15/2024"

	first := Merge([]*domain.Project{saved}, []*domain.Project{saved.Clone()}, []*domain.Project{incoming}, mergeNow)
	second := Merge([]*domain.Project{saved}, first, []*domain.Project{incoming.Clone()}, mergeNow.Add(time.Hour))

	require.Len(t, second, 1)
	assert.True(t, second[0].IsChanged)
	assert.Equal(t, "06/01/2024", second[0].Changes["mob"])
}

func TestMerge_IncomingMatchingBaselineClearsMarkers(t *testing.T) {
	// The file reverted to the saved values: nothing is pending anymore.
	saved := testutil.NewTestRecord("PM100", "Valve Replacement")
	working := saved.Clone()
	working.IsChanged = true
	working.Changes = domain.Changes{"projectManager": "Old"}

	merged := Merge([]*domain.Project{saved}, []*domain.Project{working}, []*domain.Project{saved.Clone()}, mergeNow)
	require.Len(t, merged, 1)
	assert.False(t, merged[0].IsChanged)
	assert.Nil(t, merged[0].Changes)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	saved := testutil.NewTestRecord("PM100", "Valve Replacement")
	working := saved.Clone()
	incoming := saved.Clone()
	incoming.ProjectManager = "Chen"

	_ = Merge([]*domain.Project{saved}, []*domain.Project{working}, []*domain.Project{incoming}, mergeNow)
	assert.Equal(t, "Rivera", working.ProjectManager)
	assert.Nil(t, incoming.Changes, "the incoming record is cloned before annotation")
}
