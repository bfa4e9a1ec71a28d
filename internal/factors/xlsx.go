package factors

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a reference table from a worksheet of an Excel workbook.
// An empty sheet selects the first sheet of the workbook.
func LoadXLSX(ctx context.Context, path, sheet string) ([]Record, LoadReport, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, LoadReport{Source: path}, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return loadWorkbook(ctx, path, f, sheet)
}

// LoadXLSXReader is LoadXLSX for an already opened stream.
func LoadXLSXReader(ctx context.Context, source string, r io.Reader, sheet string) ([]Record, LoadReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, LoadReport{Source: source}, fmt.Errorf("opening workbook %s: %w", source, err)
	}
	defer func() { _ = f.Close() }()
	return loadWorkbook(ctx, source, f, sheet)
}

func loadWorkbook(ctx context.Context, source string, f *excelize.File, sheet string) ([]Record, LoadReport, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, LoadReport{Source: source}, fmt.Errorf("%s: %w", source, ErrNoSheet)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, LoadReport{Source: source}, fmt.Errorf("reading sheet %q of %s: %w", sheet, source, err)
	}

	// Hand-edited workbooks often have blank rows above the header.
	var header []string
	var data []numberedRow
	for i, row := range rows {
		if header == nil {
			if !isBlankRow(row) {
				header = row
			}
			continue
		}
		data = append(data, numberedRow{line: i + 1, cells: row})
	}
	return decodeRows(ctx, source+"#"+sheet, header, data)
}
