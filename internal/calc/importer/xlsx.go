// Package importer reads batches of column inputs from spreadsheets and
// YAML/JSON files, and writes batch results back to a workbook.
package importer

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"ColumnSolver/internal/calc/batch"
	column "ColumnSolver/internal/calc/column"
	"github.com/xuri/excelize/v2"
)

// Columns lists the recognised header names. Header order in the sheet is free.
var Columns = []string{
	"label", "case", "shape",
	"diameter", "base", "height",
	"end_fixity", "length",
	"yield_strength", "elastic_modulus",
	"initial_crookedness", "design_factor", "eccentricity",
}

var required = []string{"case", "shape", "end_fixity", "length", "yield_strength", "elastic_modulus"}

var ErrEmptySheet = errors.New("empty sheet")

// RowError is a sheet row that could not be turned into an input.
type RowError struct {
	Row int    `json:"row"`
	Err string `json:"error"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Err)
}

// ReadXLSX reads the first sheet of a workbook. The first row is the header;
// blank rows are ignored and malformed rows are returned as RowErrors.
func ReadXLSX(r io.Reader) (batch.Input, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return batch.Input{}, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return batch.Input{}, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return batch.Input{}, nil, ErrEmptySheet
	}

	index, err := headerIndex(rows[0])
	if err != nil {
		return batch.Input{}, nil, err
	}

	var in batch.Input
	var rejected []RowError
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		entry, err := parseRow(rows[i], index)
		if err != nil {
			rejected = append(rejected, RowError{Row: i + 1, Err: err.Error()})
			continue
		}
		in.Items = append(in.Items, entry)
	}
	return in, rejected, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		name = strings.ReplaceAll(name, " ", "_")
		if name != "" {
			index[name] = i
		}
	}
	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRow(row []string, index map[string]int) (batch.Entry, error) {
	cell := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(name string, dst *float64) error {
		s := cell(name)
		if s == "" {
			return nil
		}
		v, err := toFloat(s)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", name, s)
		}
		*dst = v
		return nil
	}

	c, err := column.ParseCase(cell("case"))
	if err != nil {
		return batch.Entry{}, err
	}
	shape, err := column.ParseShape(cell("shape"))
	if err != nil {
		return batch.Entry{}, err
	}

	entry := batch.Entry{Label: cell("label")}
	entry.Case = c
	entry.Section.Shape = shape
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"diameter", &entry.Section.Diameter},
		{"base", &entry.Section.Base},
		{"height", &entry.Section.Height},
		{"end_fixity", &entry.Loading.EndFixity},
		{"length", &entry.Loading.Length},
		{"yield_strength", &entry.Material.YieldStrength},
		{"elastic_modulus", &entry.Material.ElasticModulus},
		{"initial_crookedness", &entry.Loading.InitialCrookedness},
		{"design_factor", &entry.Loading.DesignFactor},
		{"eccentricity", &entry.Loading.Eccentricity},
	} {
		if err := num(f.name, f.dst); err != nil {
			return batch.Entry{}, err
		}
	}
	return entry, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// toFloat parses a cell as a finite number.
func toFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}
