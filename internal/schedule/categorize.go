// Package schedule buckets and orders records by their milestone dates.
package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/dfields/schedtrack/internal/domain"
)

// Categorize assigns a date category to every record based on the named date
// field, relative to reference. Pure: records are cloned, input untouched.
//
// The week runs Monday through Sunday and all boundaries are inclusive.
// Buckets are checked in ascending order: end of this week, end of next week,
// end of this month, end of the third month out. Anything later is future;
// empty or unparseable dates are none.
func Categorize(records []*domain.Project, dateField string, reference time.Time) []*domain.Project {
	spec, ok := domain.FieldByName(dateField)
	if !ok || spec.Kind != domain.KindDate {
		spec, _ = domain.FieldByName("commitmentDate")
	}

	ref := midnight(reference)
	weekEnd := endOfWeek(ref)
	nextWeekEnd := weekEnd.AddDate(0, 0, 7)
	monthEnd := endOfMonth(ref)
	threeMonthEnd := endOfMonth(ref.AddDate(0, 3, 0))

	out := make([]*domain.Project, len(records))
	for i, p := range records {
		c := p.Clone()
		c.DateCategory = bucket(spec.Get(c).(string), ref, weekEnd, nextWeekEnd, monthEnd, threeMonthEnd)
		out[i] = c
	}
	return out
}

func bucket(raw string, ref, weekEnd, nextWeekEnd, monthEnd, threeMonthEnd time.Time) domain.DateCategory {
	d, ok := ParseDate(raw)
	if !ok {
		return domain.CategoryNone
	}
	switch {
	case !d.After(weekEnd):
		return domain.CategoryThisWeek
	case !d.After(nextWeekEnd):
		return domain.CategoryNextWeek
	case !d.After(monthEnd):
		return domain.CategoryThisMonth
	case !d.After(threeMonthEnd):
		return domain.CategoryNext3Months
	default:
		return domain.CategoryFuture
	}
}

// SortByDate orders records ascending by the named date field, records with
// no parseable date last. Stable, so equal dates keep their import order.
// Pure: returns a new slice.
func SortByDate(records []*domain.Project, dateField string) []*domain.Project {
	spec, ok := domain.FieldByName(dateField)
	if !ok || spec.Kind != domain.KindDate {
		spec, _ = domain.FieldByName("commitmentDate")
	}

	out := make([]*domain.Project, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		di, iok := ParseDate(spec.Get(out[i]).(string))
		dj, jok := ParseDate(spec.Get(out[j]).(string))
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return di.Before(dj)
	})
	return out
}

// FilterUpcoming returns records whose date field falls within the next
// `days` days of reference, inclusive of today.
func FilterUpcoming(records []*domain.Project, dateField string, reference time.Time, days int) []*domain.Project {
	return filterByDate(records, dateField, func(d, ref time.Time) bool {
		diff := d.Sub(ref).Hours() / 24
		return diff >= 0 && diff <= float64(days)
	}, reference)
}

// FilterPastDue returns records whose date field is strictly before reference.
func FilterPastDue(records []*domain.Project, dateField string, reference time.Time) []*domain.Project {
	return filterByDate(records, dateField, func(d, ref time.Time) bool {
		return d.Before(ref)
	}, reference)
}

func filterByDate(records []*domain.Project, dateField string, keep func(d, ref time.Time) bool, reference time.Time) []*domain.Project {
	spec, ok := domain.FieldByName(dateField)
	if !ok || spec.Kind != domain.KindDate {
		return nil
	}
	ref := midnight(reference)
	var out []*domain.Project
	for _, p := range records {
		d, parsed := ParseDate(spec.Get(p).(string))
		if parsed && keep(d, ref) {
			out = append(out, p)
		}
	}
	return out
}

var dateLayouts = []string{"01/02/2006", "1/2/2006", "01/02/06", "1/2/06"}

// ParseDate parses a stored MM/DD/YYYY-style date string. Free-text values
// ("TBD") and blanks report ok=false.
func ParseDate(raw string) (time.Time, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, v); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfWeek returns the Sunday ending the week containing t.
func endOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		return t
	}
	return t.AddDate(0, 0, 7-wd)
}

func endOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
