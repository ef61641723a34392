package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatExcelDate_SerialToDate(t *testing.T) {
	assert.Equal(t, "03/15/2023", FormatExcelDate("45000"))
	assert.Equal(t, "01/01/2024", FormatExcelDate("45292"))
}

func TestFormatExcelDate_FractionalSerial(t *testing.T) {
	// Date cells sometimes carry a time-of-day fraction.
	assert.Equal(t, "03/15/2023", FormatExcelDate("45000.25"))
}

func TestFormatExcelDate_PreformattedPassesThrough(t *testing.T) {
	assert.Equal(t, "06/15/2024", FormatExcelDate("06/15/2024"))
	assert.Equal(t, "1/2/24", FormatExcelDate("1/2/24"))
}

func TestFormatExcelDate_FreeTextPassesThrough(t *testing.T) {
	assert.Equal(t, "TBD", FormatExcelDate("TBD"))
	assert.Equal(t, "Q3 2025", FormatExcelDate("Q3 2025"))
}

func TestFormatExcelDate_Empty(t *testing.T) {
	assert.Equal(t, "", FormatExcelDate(""))
	assert.Equal(t, "", FormatExcelDate("   "))
}

func TestFormatCellDate_Types(t *testing.T) {
	assert.Equal(t, "", FormatCellDate(nil))
	assert.Equal(t, "03/15/2023", FormatCellDate(45000.0))
	assert.Equal(t, "03/15/2023", FormatCellDate(45000))
	assert.Equal(t, "06/15/2024", FormatCellDate("06/15/2024"))
}
