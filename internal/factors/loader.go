package factors

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/cbamcalc/internal/logging"
)

// Header names of the reference table, compared after lower-casing and
// collapsing whitespace.
const (
	ColumnCNCode      = "cn code"
	ColumnDescription = "description"
	ColumnCountry     = "country"
	ColumnType        = "type"
	ColumnValue       = "value"
)

// requiredColumns must be present in every source. Description is optional.
//
//nolint:gochecknoglobals // Read-only lookup list.
var requiredColumns = []string{ColumnCNCode, ColumnCountry, ColumnType, ColumnValue}

// RowError describes a data row the loader skipped.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// LoadReport summarises one load.
type LoadReport struct {
	Source  string     `json:"source"`
	Rows    int        `json:"rows"`
	Loaded  int        `json:"loaded"`
	Skipped []RowError `json:"skipped,omitempty"`
}

// columnIndex maps normalised header names to their position.
type columnIndex map[string]int

func normaliseHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

// indexHeader locates the known columns and fails if a required one is absent.
func indexHeader(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, h := range header {
		key := normaliseHeader(h)
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	return idx, nil
}

func (c columnIndex) cell(row []string, col string) string {
	i, ok := c[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseRow converts one data row into a Record.
func (c columnIndex) parseRow(row []string) (Record, error) {
	rec := Record{
		CNCode:      c.cell(row, ColumnCNCode),
		Description: c.cell(row, ColumnDescription),
		Country:     c.cell(row, ColumnCountry),
		Type:        c.cell(row, ColumnType),
	}
	if rec.CNCode == "" {
		return Record{}, fmt.Errorf("blank %s", ColumnCNCode)
	}
	if rec.Country == "" {
		return Record{}, fmt.Errorf("blank %s", ColumnCountry)
	}
	if _, ok := ParseFactorType(rec.Type); !ok {
		return Record{}, fmt.Errorf("unknown type %q", rec.Type)
	}
	raw := c.cell(row, ColumnValue)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid value %q", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Record{}, fmt.Errorf("value out of range: %v", v)
	}
	rec.Value = v
	return rec, nil
}

// numberedRow is a data row with its 1-based source line.
type numberedRow struct {
	line  int
	cells []string
}

// decodeRows turns a header plus data rows into records.
func decodeRows(ctx context.Context, source string, header []string, rows []numberedRow) ([]Record, LoadReport, error) {
	report := LoadReport{Source: source}
	if header == nil {
		return nil, report, fmt.Errorf("%s: %w", source, ErrEmptySource)
	}
	idx, err := indexHeader(header)
	if err != nil {
		return nil, report, fmt.Errorf("%s: %w", source, err)
	}

	log := logging.FromContext(ctx)
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row.cells) {
			continue
		}
		report.Rows++
		rec, parseErr := idx.parseRow(row.cells)
		if parseErr != nil {
			report.Skipped = append(report.Skipped, RowError{Line: row.line, Reason: parseErr.Error()})
			log.Warn().Ctx(ctx).
				Str("component", "factors").
				Str("source", source).
				Int("line", row.line).
				Err(parseErr).
				Msg("skipping reference table row")
			continue
		}
		records = append(records, rec)
	}
	report.Loaded = len(records)
	return records, report, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// LoadFile loads a reference table file, choosing the loader by extension.
// sheet selects the worksheet for XLSX files and is ignored for CSV.
func LoadFile(ctx context.Context, path, sheet string) ([]Record, LoadReport, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, LoadReport{Source: path}, fmt.Errorf("opening reference table: %w", err)
		}
		defer f.Close()
		return LoadCSV(ctx, path, f)
	case ".xlsx", ".xlsm":
		return LoadXLSX(ctx, path, sheet)
	default:
		return nil, LoadReport{Source: path}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// LoadFiles loads several reference table files concurrently and concatenates
// their records in argument order, so table order stays deterministic.
func LoadFiles(ctx context.Context, paths []string, sheet string) (*Table, []LoadReport, error) {
	results := make([][]Record, len(paths))
	reports := make([]LoadReport, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, p := range paths {
		g.Go(func() error {
			recs, report, err := LoadFile(gctx, p, sheet)
			if err != nil {
				return err
			}
			results[i] = recs
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	total := 0
	for _, recs := range results {
		total += len(recs)
	}
	all := make([]Record, 0, total)
	for _, recs := range results {
		all = append(all, recs...)
	}

	logging.FromContext(ctx).Debug().Ctx(ctx).
		Str("component", "factors").
		Int("files", len(paths)).
		Int("records", len(all)).
		Msg("reference table loaded")

	return NewTable(all), reports, nil
}
