// Package merge reconciles a freshly imported batch against the in-memory
// working set and the persisted baseline, recording field-level change sets.
package merge

import (
	"time"

	"github.com/dfields/schedtrack/internal/domain"
)

// Merge folds incoming records into the working set.
//
// A record with no working-set match is appended unchanged. A matched record
// is replaced in place by the incoming version, annotated with the diff
// against the persisted version of the same id rather than the working-set
// one, so re-importing the same file twice without an intervening save does
// not erase change history. Updated records keep their position; new records
// append in batch order.
//
// Merge never fails: values outside the trackable types are skipped.
func Merge(persisted, working, incoming []*domain.Project, now time.Time) []*domain.Project {
	baseline := make(map[int64]*domain.Project, len(persisted))
	for _, p := range persisted {
		baseline[p.ID] = p
	}
	index := make(map[int64]int, len(working))
	merged := make([]*domain.Project, len(working))
	for i, p := range working {
		index[p.ID] = i
		merged[i] = p
	}

	for _, in := range incoming {
		pos, exists := index[in.ID]
		if !exists {
			index[in.ID] = len(merged)
			merged = append(merged, in)
			continue
		}

		updated := in.Clone()
		changes := Diff(baseline[in.ID], in)
		if len(changes) > 0 {
			updated.Changes = changes
			updated.IsChanged = true
		} else {
			updated.Changes = nil
			updated.IsChanged = false
		}
		updated.LastUpdated = now.UTC().Format(time.RFC3339)
		merged[pos] = updated
	}

	return merged
}

// Diff compares an incoming record against its persisted baseline and
// returns, for every registry field whose value differs, the PRIOR value.
// Bookkeeping fields are never diffed (they are not in the registry). A nil
// baseline yields no changes: there is nothing saved to have drifted from.
func Diff(persisted, incoming *domain.Project) domain.Changes {
	if persisted == nil {
		return nil
	}
	var changes domain.Changes
	for _, f := range domain.Fields {
		prev := f.Get(persisted)
		next := f.Get(incoming)
		if prev == next {
			continue
		}
		if !trackable(prev) {
			continue
		}
		if changes == nil {
			changes = make(domain.Changes)
		}
		changes[f.Name] = prev
	}
	return changes
}

// trackable reports whether a prior value is of a type worth recording.
func trackable(v any) bool {
	switch v.(type) {
	case string, int, int64, float64, bool, nil:
		return true
	default:
		return false
	}
}
