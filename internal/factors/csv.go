package factors

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// LoadCSV reads a reference table from CSV. source names the input in reports
// and log lines. Rows that fail to parse are skipped and listed in the report;
// a missing header or required column fails the whole load.
func LoadCSV(ctx context.Context, source string, r io.Reader) ([]Record, LoadReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var header []string
	var rows []numberedRow
	var malformed []RowError
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && header != nil {
				malformed = append(malformed, RowError{Line: parseErr.Line, Reason: parseErr.Err.Error()})
				continue
			}
			return nil, LoadReport{Source: source}, fmt.Errorf("reading CSV %s: %w", source, err)
		}
		if header == nil {
			header = row
			continue
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, numberedRow{line: line, cells: row})
	}

	records, report, err := decodeRows(ctx, source, header, rows)
	if err != nil {
		return nil, report, err
	}
	report.Rows += len(malformed)
	report.Skipped = append(malformed, report.Skipped...)
	return records, report, nil
}
