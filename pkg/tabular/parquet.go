package tabular

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// EncodeParquet serializes the payload into a complete Parquet file with
// snappy compression. All columns are optional so null cells round-trip.
// Note that Parquet groups order fields alphabetically, so the physical
// column order may differ from the source header; row order is preserved.
func EncodeParquet(p *Payload) ([]byte, error) {
	if p == nil || len(p.Columns) == 0 {
		return nil, ErrEmptyInput
	}

	group := parquet.Group{}
	for _, name := range p.Columns {
		group[name] = parquet.Optional(leafNode(p.Types[name]))
	}
	schema := parquet.NewSchema("table", group)

	buf := new(bytes.Buffer)
	writer := parquet.NewGenericWriter[map[string]any](buf, schema, parquet.Compression(&parquet.Snappy))

	for _, row := range p.Rows {
		record := make(map[string]any, len(row))
		for name, value := range row {
			if value == nil {
				continue
			}
			record[name] = value
		}
		if _, err := writer.Write([]map[string]any{record}); err != nil {
			return nil, fmt.Errorf("tabular: parquet write: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("tabular: parquet close: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeParquet reads a Parquet file back into a Payload. Columns come back
// in the file's physical (alphabetical) order.
func DecodeParquet(data []byte) (*Payload, error) {
	file, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("tabular: parquet open: %w", err)
	}

	schema := file.Schema()
	fields := schema.Fields()
	columns := make([]string, 0, len(fields))
	types := make(map[string]ColumnType, len(fields))
	for _, field := range fields {
		columns = append(columns, field.Name())
		types[field.Name()] = columnTypeOf(field)
	}

	// The generic reader cannot derive a schema from a map target, so the
	// file's own schema drives the deconstruction.
	rows := make([]map[string]any, int(file.NumRows()))
	for i := range rows {
		rows[i] = make(map[string]any, len(columns))
	}
	if len(rows) > 0 {
		reader := parquet.NewGenericReader[map[string]any](bytes.NewReader(data), schema)
		read := 0
		for read < len(rows) {
			n, err := reader.Read(rows[read:])
			read += n
			if err == nil {
				continue
			}
			if errors.Is(err, io.EOF) {
				break
			}
			reader.Close()
			return nil, fmt.Errorf("tabular: parquet read: %w", err)
		}
		if err := reader.Close(); err != nil {
			return nil, fmt.Errorf("tabular: parquet close: %w", err)
		}
		if read != len(rows) {
			return nil, fmt.Errorf("tabular: parquet read: got %d of %d rows", read, len(rows))
		}
	}

	// Null cells come back as absent keys; normalize them so every row
	// carries the full column set.
	for _, row := range rows {
		for _, name := range columns {
			if _, ok := row[name]; !ok {
				row[name] = nil
			}
		}
	}

	return &Payload{Columns: columns, Types: types, Rows: rows}, nil
}

func leafNode(t ColumnType) parquet.Node {
	switch t {
	case TypeInt64:
		return parquet.Int(64)
	case TypeFloat64:
		return parquet.Leaf(parquet.DoubleType)
	case TypeBool:
		return parquet.Leaf(parquet.BooleanType)
	default:
		return parquet.String()
	}
}

func columnTypeOf(field parquet.Field) ColumnType {
	switch field.Type().Kind() {
	case parquet.Boolean:
		return TypeBool
	case parquet.Int64:
		return TypeInt64
	case parquet.Double:
		return TypeFloat64
	default:
		return TypeString
	}
}
