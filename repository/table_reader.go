package repository

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// table is a parsed dataset with header-based column lookup.
type table struct {
	name    string
	columns map[string]int
	header  []string
	rows    [][]string
}

// readTable parses CSV, or the first sheet of an .xlsx workbook when
// the blob name has that extension.
func readTable(name string, data []byte) (*table, error) {
	var records [][]string
	var err error

	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		records, err = readXLSX(data)
	default:
		records, err = readCSV(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", name)
	}

	t := &table{
		name:    name,
		columns: make(map[string]int, len(records[0])),
	}
	for i, h := range records[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		t.header = append(t.header, h)
		if _, dup := t.columns[h]; !dup {
			t.columns[h] = i
		}
	}
	t.rows = records[1:]
	return t, nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}
	return f.GetRows(sheets[0])
}

// require fails when any of the named columns is absent.
func (t *table) require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if _, ok := t.columns[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing columns %s", t.name, strings.Join(missing, ", "))
	}
	return nil
}

// cell returns "" for absent columns and for short rows, which the
// excel reader produces when trailing cells are empty.
func (t *table) cell(row []string, col string) string {
	idx, ok := t.columns[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// float parses a non-negative amount. Empty cells read as 0.
func (t *table) float(row []string, line int, col string) (float64, error) {
	raw := t.cell(row, col)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s line %d: invalid %s %q", t.name, line, col, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s line %d: %s must not be negative, got %v", t.name, line, col, v)
	}
	return v, nil
}

// int accepts integral values written as floats ("30.0").
func (t *table) int(row []string, line int, col string) (int, error) {
	v, err := t.float(row, line, col)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%s line %d: %s must be an integer, got %v", t.name, line, col, v)
	}
	return int(v), nil
}

// extra collects the columns not listed in known.
func (t *table) extra(row []string, known ...string) map[string]string {
	skip := make(map[string]bool, len(known))
	for _, k := range known {
		skip[k] = true
	}
	out := make(map[string]string)
	for _, h := range t.header {
		if skip[h] {
			continue
		}
		out[h] = t.cell(row, h)
	}
	return out
}
