package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadXLSX(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"Startup", "City", "Amount"},
		{"Alpha", "Pune", "2 crore"},
		{"Beta", "Delhi", "5 lakh"},
	})

	table, err := ReadXLSX(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Startup", "City", "Amount"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Alpha", "Pune", "2 crore"}, table.Rows[0])
	assert.Equal(t, []string{"Beta", "Delhi", "5 lakh"}, table.Rows[1])
}

func TestReadXLSX_SkipsBlankRows(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"Startup", "City"},
		{"", ""},
		{"Alpha", "Pune"},
	})

	table, err := ReadXLSX(buf)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Alpha", table.Rows[0][0])
}

func TestReadXLSX_Garbage(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("this is not a zip archive"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReadCSV(t *testing.T) {
	in := "Startup,City,Amount\nAlpha,Pune,2 crore\nBeta,Delhi,\n"

	table, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Startup", "City", "Amount"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Beta", "Delhi", ""}, table.Rows[1])
}

func TestReadCSV_RaggedRowsTolerated(t *testing.T) {
	in := "Startup,City\nAlpha\n"

	table, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"Alpha"}, table.Rows[0])
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRead_DispatchesByExtension(t *testing.T) {
	table, err := Read("master.CSV", strings.NewReader("Startup\nAlpha\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Startup"}, table.Header)

	_, err = Read("master.pdf", strings.NewReader("%PDF"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
