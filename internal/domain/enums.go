package domain

// DateCategory is a relative-time bucket used for urgency highlighting.
type DateCategory string

const (
	CategoryThisWeek    DateCategory = "thisWeek"
	CategoryNextWeek    DateCategory = "nextWeek"
	CategoryThisMonth   DateCategory = "thisMonth"
	CategoryNext3Months DateCategory = "next3Months"
	CategoryFuture      DateCategory = "future"
	CategoryNone        DateCategory = "none"
)

// ValidDateCategories is the canonical set of accepted category strings.
var ValidDateCategories = map[string]bool{
	"thisWeek": true, "nextWeek": true, "thisMonth": true,
	"next3Months": true, "future": true, "none": true,
}

// FieldKind describes how a raw spreadsheet cell is coerced into a field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindYear
	KindDate
)
