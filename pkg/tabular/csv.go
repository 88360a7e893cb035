package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads a full CSV document into a Payload. The first row is the
// header and defines the column set; every data row must match its width.
// Column types are inferred from the data: a column where every non-empty
// cell parses as an integer becomes int64, then float64, then bool, and
// otherwise string. Empty cells stay null and do not affect inference.
func ParseCSV(data []byte) (*Payload, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("tabular: malformed header: %w", err)
	}

	columns := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: column %d", ErrEmptyColumnName, i+1)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}
		columns[i] = name
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("tabular: malformed row %d: %w", len(records)+2, err)
		}
		records = append(records, record)
	}

	types := make(map[string]ColumnType, len(columns))
	for i, name := range columns {
		types[name] = inferColumnType(records, i)
	}

	rows := make([]map[string]any, 0, len(records))
	for rowIdx, record := range records {
		row := make(map[string]any, len(columns))
		for i, name := range columns {
			cell := record[i]
			if cell == "" {
				row[name] = nil
				continue
			}
			value, err := convertCell(cell, types[name])
			if err != nil {
				return nil, fmt.Errorf("tabular: row %d column %q: %w", rowIdx+2, name, err)
			}
			row[name] = value
		}
		rows = append(rows, row)
	}

	return &Payload{Columns: columns, Types: types, Rows: rows}, nil
}

// inferColumnType scans a column's non-empty cells and picks the narrowest
// type that fits all of them.
func inferColumnType(records [][]string, col int) ColumnType {
	allInt, allFloat, allBool := true, true, true
	sawValue := false
	for _, record := range records {
		cell := record[col]
		if cell == "" {
			continue
		}
		sawValue = true
		if allInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				allFloat = false
			}
		}
		if allBool && !isBoolCell(cell) {
			allBool = false
		}
		if !allInt && !allFloat && !allBool {
			return TypeString
		}
	}
	if !sawValue {
		return TypeString
	}
	switch {
	case allInt:
		return TypeInt64
	case allFloat:
		return TypeFloat64
	case allBool:
		return TypeBool
	default:
		return TypeString
	}
}

// isBoolCell accepts the common textual booleans, case-insensitively.
func isBoolCell(cell string) bool {
	switch strings.ToLower(cell) {
	case "true", "false":
		return true
	}
	return false
}

func convertCell(cell string, t ColumnType) (any, error) {
	switch t {
	case TypeInt64:
		return strconv.ParseInt(cell, 10, 64)
	case TypeFloat64:
		return strconv.ParseFloat(cell, 64)
	case TypeBool:
		return strconv.ParseBool(strings.ToLower(cell))
	default:
		return cell, nil
	}
}
