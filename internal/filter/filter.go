// Package filter implements the search-bar semantics: free-text terms match
// any visible field, "Column: value" terms match one field by its display
// label.
package filter

import (
	"fmt"
	"strings"

	"github.com/dfields/schedtrack/internal/domain"
)

// Term is one parsed search term. A Term with an empty Field matches across
// all visible fields.
type Term struct {
	Field string // registry field name, "" for free-text search
	Value string
}

// ParseTerm parses a raw search term. "PM: smith" targets the field whose
// short label is "PM" (case-insensitive); anything without a colon, or with
// an unrecognized label, is a free-text term.
func ParseTerm(raw string) Term {
	before, after, found := strings.Cut(raw, ":")
	if found && after != "" {
		label := strings.TrimSpace(before)
		for _, f := range domain.Fields {
			if strings.EqualFold(domain.ShortLabel(f.Name), label) || strings.EqualFold(f.Label, label) {
				return Term{Field: f.Name, Value: strings.TrimSpace(after)}
			}
		}
	}
	return Term{Value: strings.TrimSpace(raw)}
}

// Apply returns the records matching ALL terms. visible limits which fields
// participate; nil means every registry field.
func Apply(records []*domain.Project, terms []Term, visible map[string]bool) []*domain.Project {
	if len(terms) == 0 {
		return records
	}
	var out []*domain.Project
	for _, p := range records {
		if matchesAll(p, terms, visible) {
			out = append(out, p)
		}
	}
	return out
}

func matchesAll(p *domain.Project, terms []Term, visible map[string]bool) bool {
	for _, t := range terms {
		if !matches(p, t, visible) {
			return false
		}
	}
	return true
}

func matches(p *domain.Project, t Term, visible map[string]bool) bool {
	needle := strings.ToLower(t.Value)
	if t.Field != "" {
		if visible != nil && !visible[t.Field] {
			return false
		}
		f, ok := domain.FieldByName(t.Field)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(stringify(f.Get(p))), needle)
	}
	for _, f := range domain.Fields {
		if visible != nil && !visible[f.Name] {
			continue
		}
		if strings.Contains(strings.ToLower(stringify(f.Get(p))), needle) {
			return true
		}
	}
	return false
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
