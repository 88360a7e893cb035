package tabular

import (
	"errors"
	"testing"
)

func TestParseCSV(t *testing.T) {
	data := []byte("id,name,score,active\n1,alice,9.5,true\n2,bob,8.25,false\n")

	payload, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	wantColumns := []string{"id", "name", "score", "active"}
	if len(payload.Columns) != len(wantColumns) {
		t.Fatalf("column count mismatch: got %d, want %d", len(payload.Columns), len(wantColumns))
	}
	for i, name := range wantColumns {
		if payload.Columns[i] != name {
			t.Errorf("column %d mismatch: got %s, want %s", i, payload.Columns[i], name)
		}
	}

	wantTypes := map[string]ColumnType{
		"id":     TypeInt64,
		"name":   TypeString,
		"score":  TypeFloat64,
		"active": TypeBool,
	}
	for name, want := range wantTypes {
		if got := payload.Types[name]; got != want {
			t.Errorf("type mismatch for %s: got %s, want %s", name, got, want)
		}
	}

	if payload.RowCount() != 2 {
		t.Fatalf("row count mismatch: got %d, want 2", payload.RowCount())
	}
	first := payload.Rows[0]
	if first["id"] != int64(1) {
		t.Errorf("id mismatch: got %v, want 1", first["id"])
	}
	if first["name"] != "alice" {
		t.Errorf("name mismatch: got %v, want alice", first["name"])
	}
	if first["score"] != 9.5 {
		t.Errorf("score mismatch: got %v, want 9.5", first["score"])
	}
	if first["active"] != true {
		t.Errorf("active mismatch: got %v, want true", first["active"])
	}
}

func TestParseCSVTypeInference(t *testing.T) {
	tests := []struct {
		name string
		data string
		want ColumnType
	}{
		{"all integers", "v\n1\n2\n-3\n", TypeInt64},
		{"integers and floats", "v\n1\n2.5\n", TypeFloat64},
		{"booleans mixed case", "v\ntrue\nFALSE\nTrue\n", TypeBool},
		{"int and bool fall back to string", "v\n1\ntrue\n", TypeString},
		{"plain text", "v\nhello\nworld\n", TypeString},
		{"empty cells ignored for inference", "v\n1\n\n2\n", TypeInt64},
		{"all empty defaults to string", "v\n\n\n", TypeString},
		{"header only defaults to string", "v\n", TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := ParseCSV([]byte(tt.data))
			if err != nil {
				t.Fatalf("ParseCSV returned error: %v", err)
			}
			if got := payload.Types["v"]; got != tt.want {
				t.Errorf("inferred type mismatch: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseCSVNullCells(t *testing.T) {
	payload, err := ParseCSV([]byte("a,b\n1,\n,2\n"))
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	if payload.Rows[0]["b"] != nil {
		t.Errorf("expected null for row 0 column b, got %v", payload.Rows[0]["b"])
	}
	if payload.Rows[1]["a"] != nil {
		t.Errorf("expected null for row 1 column a, got %v", payload.Rows[1]["a"])
	}
	if payload.Rows[1]["b"] != int64(2) {
		t.Errorf("expected 2 for row 1 column b, got %v", payload.Rows[1]["b"])
	}
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"empty input", "", ErrEmptyInput},
		{"duplicate column", "a,a\n1,2\n", ErrDuplicateColumn},
		{"blank column name", "a,\n1,2\n", ErrEmptyColumnName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error mismatch: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseCSVRaggedRow(t *testing.T) {
	_, err := ParseCSV([]byte("a,b\n1\n"))
	if err == nil {
		t.Fatal("expected error for row with wrong field count")
	}
}
