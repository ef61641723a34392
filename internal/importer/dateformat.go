package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// excelEpochOffset is the number of days between the Excel serial epoch
// (1900-01-01, with the 1900 leap-year bug baked in) and the Unix epoch.
const excelEpochOffset = 25569

const dateLayout = "01/02/2006"

// FormatExcelDate normalizes one raw date cell to MM/DD/YYYY text.
//
// A value already containing "/" is treated as pre-formatted and returned
// unchanged so the display matches what was typed into the sheet. A numeric
// value is treated as an Excel day-count serial. Anything else (free text
// like "TBD") is returned as-is; an empty cell stays empty.
func FormatExcelDate(cell string) string {
	v := strings.TrimSpace(cell)
	if v == "" {
		return ""
	}
	if strings.Contains(v, "/") {
		return v
	}
	serial, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return v
	}
	secs := (serial - excelEpochOffset) * 86400
	t := time.Unix(int64(math.Round(secs)), 0).UTC()
	return t.Format(dateLayout)
}

// FormatCellDate is the any-typed variant used when the value did not come
// from a sheet cell (e.g. JSON round-trips). Nil becomes the empty string.
func FormatCellDate(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return FormatExcelDate(x)
	case float64:
		return FormatExcelDate(strconv.FormatFloat(x, 'f', -1, 64))
	case int:
		return FormatExcelDate(strconv.Itoa(x))
	default:
		return fmt.Sprintf("%v", x)
	}
}
