// seehuhn.de/go/figure - declarative 2D and 3D plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var errNoColumn = errors.New("no such column")

// table is a rectangular block of cells read from a data file.  If the
// first row is not numeric, it is used as the column names.
type table struct {
	names []string
	rows  [][]string
}

// readTable reads a CSV or XLSX file.  For XLSX files, sheet selects the
// worksheet; the empty string selects the first one.
func readTable(fname, sheet string) (*table, error) {
	var rows [][]string
	var err error
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".csv", ".txt":
		rows, err = readCSV(fname)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(fname, sheet)
	default:
		return nil, fmt.Errorf("%s: unsupported file type %q", fname, ext)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no data", fname)
	}

	t := &table{rows: rows}
	if !isNumericRow(rows[0]) {
		t.names = rows[0]
		t.rows = rows[1:]
	}
	return t, nil
}

func readCSV(fname string) ([][]string, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return rows, nil
}

func readXLSX(fname, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: no worksheets", fname)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: sheet %q: %w", fname, sheet, err)
	}
	return rows, nil
}

func isNumericRow(row []string) bool {
	for _, cell := range row {
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
			return false
		}
	}
	return len(row) > 0
}

// numColumns returns the number of columns of the widest row.
func (t *table) numColumns() int {
	n := len(t.names)
	for _, row := range t.rows {
		n = max(n, len(row))
	}
	return n
}

// index finds a column by name or by 1-based number.
func (t *table) index(spec string) (int, error) {
	for i, name := range t.names {
		if strings.TrimSpace(name) == spec {
			return i, nil
		}
	}
	if k, err := strconv.Atoi(spec); err == nil && k >= 1 && k <= t.numColumns() {
		return k - 1, nil
	}
	return 0, fmt.Errorf("%w: %q", errNoColumn, spec)
}

// name returns the display name of column i.
func (t *table) name(i int) string {
	if i < len(t.names) && strings.TrimSpace(t.names[i]) != "" {
		return strings.TrimSpace(t.names[i])
	}
	return "column " + strconv.Itoa(i+1)
}

// column returns the values in column i.  Empty and non-numeric cells
// give NaN, which leaves a gap in the plotted line.
func (t *table) column(i int) []float64 {
	res := make([]float64, len(t.rows))
	for k, row := range t.rows {
		res[k] = math.NaN()
		if i < len(row) {
			if v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64); err == nil {
				res[k] = v
			}
		}
	}
	return res
}

// parseFloats parses a comma separated list of exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: expected %d comma separated numbers", s, n)
	}
	res := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		res[i] = v
	}
	return res, nil
}
