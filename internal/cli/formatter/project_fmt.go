package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/dfields/schedtrack/internal/domain"
	"github.com/dfields/schedtrack/internal/repository"
)

// ProjectTable renders the working set as a table. The leading column is the
// date-category badge; the remaining columns follow the given field names.
// Cells whose field was changed by the last import show the prior value
// dimmed next to the new one.
func ProjectTable(records []*domain.Project, fields []string, plain bool) string {
	headers := make([]string, 0, len(fields)+2)
	headers = append(headers, "ID", "When")
	for _, name := range fields {
		headers = append(headers, domain.ShortLabel(name))
	}

	rows := make([][]string, 0, len(records))
	for _, p := range records {
		row := make([]string, 0, len(fields)+2)
		row = append(row, fmt.Sprintf("%d", p.ID))
		if plain {
			row = append(row, string(p.DateCategory))
		} else {
			row = append(row, CategoryBadge(p.DateCategory))
		}
		for _, name := range fields {
			row = append(row, cellValue(p, name, plain))
		}
		rows = append(rows, row)
	}

	if plain {
		return RenderPlainTable(headers, rows)
	}
	return RenderTable(headers, rows)
}

func cellValue(p *domain.Project, name string, plain bool) string {
	spec, ok := domain.FieldByName(name)
	if !ok {
		return ""
	}
	value := valueText(spec.Get(p))
	prior, changed := p.FieldChanged(name)
	if !changed {
		return value
	}
	if plain {
		return fmt.Sprintf("%s (was %s)", value, valueText(prior))
	}
	return StyleYellow.Render(value) + Dim(fmt.Sprintf(" (was %s)", valueText(prior)))
}

func valueText(v any) string {
	switch x := v.(type) {
	case string:
		if x == "" {
			return "--"
		}
		return x
	case int:
		if x == 0 {
			return "--"
		}
		return fmt.Sprintf("%d", x)
	case nil:
		return "--"
	default:
		return fmt.Sprintf("%v", x)
	}
}

// ProjectDetail renders a single record as a label/value listing, with a
// trailing section for pending changes when the last import altered it.
func ProjectDetail(p *domain.Project) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("record %d", p.ID)))
	b.WriteString("\n")

	for _, f := range domain.Fields {
		value := valueText(f.Get(p))
		if value == "--" {
			continue
		}
		fmt.Fprintf(&b, "%s  %s\n", StyleBold.Render(fmt.Sprintf("%-28s", f.Label)), value)
	}
	fmt.Fprintf(&b, "%s  %s\n", StyleBold.Render(fmt.Sprintf("%-28s", "Category")), CategoryBadge(p.DateCategory))
	if p.Version > 0 {
		fmt.Fprintf(&b, "%s  %d\n", StyleBold.Render(fmt.Sprintf("%-28s", "Version")), p.Version)
	}
	if p.LastUpdated != "" {
		fmt.Fprintf(&b, "%s  %s\n", StyleBold.Render(fmt.Sprintf("%-28s", "Last Updated")), p.LastUpdated)
	}

	if len(p.Changes) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("pending changes"))
		b.WriteString("\n")
		for _, f := range domain.Fields {
			prior, changed := p.FieldChanged(f.Name)
			if !changed {
				continue
			}
			fmt.Fprintf(&b, "%s  %s %s\n",
				StyleBold.Render(fmt.Sprintf("%-28s", f.Label)),
				StyleYellow.Render(valueText(f.Get(p))),
				Dim(fmt.Sprintf("(was %s)", valueText(prior))),
			)
		}
	}
	return b.String()
}

// ChangeLog renders a record's audit history, newest first.
func ChangeLog(changes []repository.ChangeRecord, plain bool) string {
	headers := []string{"When", "Field", "Old", "New"}
	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		when := c.ChangedAt
		if t, err := time.Parse(time.RFC3339, c.ChangedAt); err == nil {
			when = t.Local().Format("Jan 2, 2006 15:04")
		}
		rows = append(rows, []string{
			when,
			domain.ShortLabel(c.FieldName),
			valueText(c.OldValue),
			valueText(c.NewValue),
		})
	}
	if plain {
		return RenderPlainTable(headers, rows)
	}
	return RenderTable(headers, rows)
}

// ImportSummary renders the one-line counters shown after an import.
func ImportSummary(total, added, updated, changed int) string {
	parts := []string{fmt.Sprintf("%d records", total)}
	if added > 0 {
		parts = append(parts, StyleGreen.Render(fmt.Sprintf("%d new", added)))
	}
	if updated > 0 {
		parts = append(parts, StyleBlue.Render(fmt.Sprintf("%d updated", updated)))
	}
	if changed > 0 {
		parts = append(parts, StyleYellow.Render(fmt.Sprintf("%d changed", changed)))
	}
	return strings.Join(parts, Dim(" · "))
}
