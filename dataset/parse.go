package dataset

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Format is a data file encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return XLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads the records of a data file. sheet selects the XLSX worksheet
// and is ignored for other formats; empty means the first sheet. A file
// without records yields an empty slice, which renders as an empty chart.
func Load(path, sheet string) ([]Record, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	var records []Record
	switch format {
	case JSON:
		records, err = ParseJSON(data)
	case YAML:
		records, err = ParseYAML(data)
	case CSV:
		records, err = ParseCSV(bytes.NewReader(data))
	case XLSX:
		records, err = ParseXLSX(bytes.NewReader(data), sheet)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}
	return records, nil
}

// ParseJSON accepts {"entries": [...]} or a bare array of records.
func ParseJSON(data []byte) ([]Record, error) {
	var d Data
	err := json.Unmarshal(data, &d)
	if err == nil {
		return d.Entries, nil
	}
	var direct []Record
	if errDirect := json.Unmarshal(data, &direct); errDirect != nil {
		// the object form is the documented one, so its error is reported
		return nil, err
	}
	return direct, nil
}

// ParseYAML accepts a mapping with an "entries" key or a bare sequence.
func ParseYAML(data []byte) ([]Record, error) {
	var d Data
	err := yaml.Unmarshal(data, &d)
	if err == nil {
		return d.Entries, nil
	}
	var direct []Record
	if errDirect := yaml.Unmarshal(data, &direct); errDirect != nil {
		return nil, err
	}
	return direct, nil
}

// ParseCSV reads a header row naming the columns (value, label,
// value_label, color, text_color; only value is required) followed by one
// record per row. Empty cells are absent fields.
func ParseCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return fromRows(header, rows)
}

// ParseXLSX reads a worksheet laid out like a CSV file: a header row, then
// one record per row. An empty sheet name selects the first sheet.
func ParseXLSX(r io.Reader, sheet string) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return fromRows(rows[0], rows[1:])
}

func fromRows(header []string, rows [][]string) ([]Record, error) {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	valueCol, ok := columns["value"]
	if !ok {
		return nil, fmt.Errorf("header %q has no value column", header)
	}

	cell := func(row []string, name string) *string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return nil
		}
		v := strings.TrimSpace(row[i])
		if v == "" {
			return nil
		}
		return &v
	}

	records := make([]Record, 0, len(rows))
	for n, row := range rows {
		if isBlank(row) {
			continue
		}
		var raw string
		if valueCol < len(row) {
			raw = strings.TrimSpace(row[valueCol])
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &RecordError{Row: n + 1, Field: "value", Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &RecordError{Row: n + 1, Field: "value", Err: errNotFinite}
		}
		records = append(records, Record{
			Value:      v,
			Label:      cell(row, "label"),
			ValueLabel: cell(row, "value_label"),
			Color:      cell(row, "color"),
			TextColor:  cell(row, "text_color"),
		})
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
