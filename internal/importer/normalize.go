package importer

import (
	"strconv"
	"strings"

	"github.com/dfields/schedtrack/internal/domain"
)

// normalizeRow maps one raw row onto a Project via the field registry.
// Coercion never fails the row: text defaults to "", plan years to 0, and
// unparseable dates pass through FormatExcelDate's fallback.
func normalizeRow(raw map[string]string, position int) *domain.Project {
	p := &domain.Project{}
	for _, f := range domain.Fields {
		v := raw[f.Label]
		switch f.Kind {
		case domain.KindText:
			f.SetString(p, v)
		case domain.KindYear:
			f.SetInt(p, parsePlanYear(v))
		case domain.KindDate:
			f.SetString(p, FormatExcelDate(v))
		}
	}
	p.ID = ResolveID(p.PMOID, p.Order, position)
	return p
}

// parsePlanYear coerces a plan-year cell. Sheets deliver these as integers,
// floats ("2025.0"), or blanks; anything unparseable becomes 0.
func parsePlanYear(v string) int {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}
