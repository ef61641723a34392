package importer

import (
	"strings"

	"github.com/dfields/schedtrack/internal/domain"
)

// RowMapper turns one sheet row into a header-label → cell-value mapping.
// Two strategies exist because two workbook layouts circulate: the current
// one with a real column-header row, and a legacy export whose header row is
// merged group captions, leaving columns identifiable only by position.
type RowMapper interface {
	// MapRow returns the mapped row, or ok=false when the row should be
	// skipped (blank, or a repeated group-header row inside the data).
	MapRow(cells []string) (raw map[string]string, ok bool)
}

// chooseMapper inspects the header row and picks a strategy: a row carrying
// the "PMO ID" label is a usable header, anything else falls back to the
// legacy positional layout.
func chooseMapper(headerRow []string) RowMapper {
	for _, c := range headerRow {
		if strings.TrimSpace(c) == "PMO ID" {
			return newLabelMapper(headerRow)
		}
	}
	return positionalMapper{}
}

// labelMapper maps columns by header label. The leading column of the source
// workbook is a spacer and is dropped.
type labelMapper struct {
	headers []string
}

func newLabelMapper(headerRow []string) *labelMapper {
	if len(headerRow) == 0 {
		return &labelMapper{}
	}
	headers := make([]string, len(headerRow)-1)
	for i, h := range headerRow[1:] {
		headers[i] = strings.TrimSpace(h)
	}
	return &labelMapper{headers: headers}
}

func (m *labelMapper) MapRow(cells []string) (map[string]string, bool) {
	raw := make(map[string]string, len(m.headers))
	empty := true
	for i, h := range m.headers {
		if h == "" {
			continue
		}
		v := cellAt(cells, i+1)
		if v != "" {
			empty = false
		}
		raw[h] = v
	}
	if empty {
		return nil, false
	}
	return raw, true
}

// positionalMapper maps the legacy layout: data columns appear at fixed
// offsets in registry order, starting after the spacer column.
type positionalMapper struct{}

var ntpColumn = func() int {
	for i, f := range domain.Fields {
		if f.Name == "ntp" {
			return i + 1
		}
	}
	return -1
}()

func (positionalMapper) MapRow(cells []string) (map[string]string, bool) {
	if cellAt(cells, 1) == "" {
		return nil, false
	}
	// The legacy export repeats its two-level header mid-sheet: a caption
	// row with "NTP" under the construction group, and a label row whose
	// first data column reads "Row".
	if cellAt(cells, ntpColumn) == "NTP" || cellAt(cells, 1) == "Row" {
		return nil, false
	}
	raw := make(map[string]string, len(domain.Fields))
	for i, f := range domain.Fields {
		raw[f.Label] = cellAt(cells, i+1)
	}
	return raw, true
}

func cellAt(cells []string, i int) string {
	if i >= 0 && i < len(cells) {
		return strings.TrimSpace(cells[i])
	}
	return ""
}
