package factors_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rshade/cbamcalc/internal/factors"
)

const ironCSV = `CN Code,Description,Country,Type,Value
7201,Pig iron,India,Direct,1.8
7201,Pig iron,India,Indirect,0.3
7201,Pig iron,India,Total,2.0
7201,Pig iron,South Korea,TOTAL,1.5
7201,Pig iron,Brazil,total,1.2
`

func TestLoadCSV(t *testing.T) {
	recs, report, err := factors.LoadCSV(context.Background(), "iron.csv", strings.NewReader(ironCSV))
	require.NoError(t, err)

	assert.Equal(t, 5, report.Rows)
	assert.Equal(t, 5, report.Loaded)
	assert.Empty(t, report.Skipped)
	require.Len(t, recs, 5)
	assert.Equal(t, factors.Record{
		CNCode: "7201", Description: "Pig iron", Country: "South Korea", Type: "TOTAL", Value: 1.5,
	}, recs[3])
}

func TestLoadCSV_HeaderVariants(t *testing.T) {
	in := "\ufeff cn  CODE ,COUNTRY,type,Value\n7201,India,Total,2\n"
	recs, _, err := factors.LoadCSV(context.Background(), "bom.csv", strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].Description)
	assert.Equal(t, "7201", recs[0].CNCode)
}

func TestLoadCSV_MissingColumn(t *testing.T) {
	tests := []struct {
		name   string
		header string
		column string
	}{
		{"no value", "CN Code,Country,Type", factors.ColumnValue},
		{"no type", "CN Code,Country,Value", factors.ColumnType},
		{"no country", "CN Code,Type,Value", factors.ColumnCountry},
		{"no code", "Country,Type,Value", factors.ColumnCNCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := factors.LoadCSV(context.Background(), "bad.csv", strings.NewReader(tt.header+"\n"))
			require.ErrorIs(t, err, factors.ErrMissingColumn)
			assert.Contains(t, err.Error(), tt.column)
		})
	}
}

func TestLoadCSV_Empty(t *testing.T) {
	_, _, err := factors.LoadCSV(context.Background(), "empty.csv", strings.NewReader(""))
	require.ErrorIs(t, err, factors.ErrEmptySource)
}

func TestLoadCSV_SkipsBadRows(t *testing.T) {
	in := `CN Code,Description,Country,Type,Value
7201,Pig iron,India,Total,2.0
7201,Pig iron,India,Embedded,1.0
7201,Pig iron,,Total,1.0
7201,Pig iron,Chile,Total,abc
7201,Pig iron,Peru,Total,-1

7201,Pig iron,Brazil,Total,1.2
`
	recs, report, err := factors.LoadCSV(context.Background(), "mixed.csv", strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "Brazil", recs[1].Country)
	assert.Equal(t, 6, report.Rows)
	assert.Equal(t, 2, report.Loaded)
	require.Len(t, report.Skipped, 4)
	assert.Equal(t, 3, report.Skipped[0].Line)
	assert.Contains(t, report.Skipped[0].Reason, "unknown type")
	assert.Contains(t, report.Skipped[1].Reason, "blank country")
	assert.Contains(t, report.Skipped[2].Reason, "invalid value")
	assert.Contains(t, report.Skipped[3].Reason, "out of range")
}

func writeWorkbook(t *testing.T, path, sheet string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.xlsx")
	writeWorkbook(t, path, "Iron", [][]interface{}{
		{"CN Code", "Description", "Country", "Type", "Value"},
		{"7201", "Pig iron", "India", "Total", 2.0},
		{"7201", "Pig iron", "Brazil", "Total", 1.2},
		{"7201", "Pig iron", "Chile", "Bogus", 1.0},
	})

	recs, report, err := factors.LoadXLSX(context.Background(), path, "Iron")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.InDelta(t, 1.2, recs[1].Value, 1e-12)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, 4, report.Skipped[0].Line)

	_, _, err = factors.LoadXLSX(context.Background(), path, "Missing")
	require.Error(t, err)
}

func TestLoadXLSXReader_FirstSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "first.xlsx")
	writeWorkbook(t, path, "Sheet1", [][]interface{}{
		{"CN Code", "Country", "Type", "Value"},
		{"7208", "Japan", "Total", 1.9},
	})
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	recs, _, err := factors.LoadXLSXReader(context.Background(), "first.xlsx", bytes.NewReader(data), "")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Japan", recs[0].Country)
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	_, _, err := factors.LoadFile(context.Background(), "factors.json", "")
	require.ErrorIs(t, err, factors.ErrUnsupportedFormat)
}

func TestLoadFiles_PreservesArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.csv")
	second := filepath.Join(dir, "b.xlsx")
	require.NoError(t, os.WriteFile(first, []byte(ironCSV), 0o600))
	writeWorkbook(t, second, "Sheet1", [][]interface{}{
		{"CN Code", "Country", "Type", "Value"},
		{"7201", "Canada", "Total", 1.2},
	})

	table, reports, err := factors.LoadFiles(context.Background(), []string{second, first}, "")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, 6, table.Len())
	assert.Equal(t, "Canada", table.Records()[0].Country)
	assert.Equal(t, "India", table.Records()[1].Country)

	_, _, err = factors.LoadFiles(context.Background(), []string{first, filepath.Join(dir, "missing.csv")}, "")
	require.Error(t, err)
}
