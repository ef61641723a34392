package importer

import (
	"errors"
	"fmt"
	"io"

	"github.com/dfields/schedtrack/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ErrParse indicates the workbook does not have the expected sheet or header
// structure. It is fatal to the import; no partial batch is returned.
var ErrParse = errors.New("schedule workbook structure not recognized")

// DefaultSheetName is the sheet the SD-09 export places its data on.
const DefaultSheetName = "Estimating Schedule"

// DefaultHeaderRow is the zero-based index of the column-header row.
const DefaultHeaderRow = 3

// Parser reads an SD-09 schedule workbook into normalized Project records.
type Parser struct {
	SheetName string
	HeaderRow int
}

// NewParser returns a Parser for the given sheet and header row. Zero values
// select the defaults.
func NewParser(sheetName string, headerRow int) *Parser {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	if headerRow <= 0 {
		headerRow = DefaultHeaderRow
	}
	return &Parser{SheetName: sheetName, HeaderRow: headerRow}
}

// ParseFile parses the workbook at path.
func (p *Parser) ParseFile(path string) ([]*domain.Project, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return p.parse(f)
}

// ParseReader parses a workbook from an in-memory stream (e.g. an upload).
func (p *Parser) ParseReader(r io.Reader) ([]*domain.Project, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return p.parse(f)
}

func (p *Parser) parse(f *excelize.File) ([]*domain.Project, error) {
	// Raw values so date cells surface as serials rather than whatever
	// display format the cell style happens to carry.
	rows, err := f.GetRows(p.SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q not found", ErrParse, p.SheetName)
	}
	if len(rows) <= p.HeaderRow {
		return nil, fmt.Errorf("%w: workbook has %d rows, header expected at row %d",
			ErrParse, len(rows), p.HeaderRow+1)
	}

	mapper := chooseMapper(rows[p.HeaderRow])

	var projects []*domain.Project
	for _, row := range rows[p.HeaderRow+1:] {
		raw, ok := mapper.MapRow(row)
		if !ok {
			continue
		}
		projects = append(projects, normalizeRow(raw, len(projects)))
	}
	return projects, nil
}
