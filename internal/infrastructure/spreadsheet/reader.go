// Package spreadsheet reads uploaded tabular files into a header row plus
// data rows of text cells. File formats are consumed as black boxes here;
// all interpretation of the cells happens in the ingest normalizer.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
)

// Table is one parsed upload: the header row and every data row as text.
type Table struct {
	Header []string
	Rows   [][]string
}

// Read parses the upload by file extension (.xlsx or .csv).
func Read(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return ReadXLSX(r)
	case ".csv":
		return ReadCSV(r)
	default:
		return nil, fmt.Errorf("%w: unsupported file type %q (want .xlsx or .csv)",
			domain.ErrInvalidInput, filepath.Ext(filename))
	}
}

// ReadXLSX reads the first sheet of an Excel workbook.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable xlsx file", domain.ErrInvalidInput)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrInvalidInput)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return tableFromRows(rows)
}

// ReadCSV reads a comma-separated file with a header line.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are tolerated; the normalizer pads
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable csv file", domain.ErrInvalidInput)
	}
	return tableFromRows(records)
}

func tableFromRows(rows [][]string) (*Table, error) {
	// Drop rows that are entirely empty; spreadsheets often carry trailing blanks.
	filtered := rows[:0]
	for _, row := range rows {
		if !emptyRow(row) {
			filtered = append(filtered, row)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: file is empty", domain.ErrInvalidInput)
	}
	return &Table{Header: filtered[0], Rows: filtered[1:]}, nil
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
