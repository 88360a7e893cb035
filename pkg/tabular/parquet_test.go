package tabular

import "testing"

func TestParquetRoundTrip(t *testing.T) {
	source, err := ParseCSV([]byte("id,name\n1,alice\n2,bob\n3,carol\n"))
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	encoded, err := EncodeParquet(source)
	if err != nil {
		t.Fatalf("EncodeParquet returned error: %v", err)
	}

	decoded, err := DecodeParquet(encoded)
	if err != nil {
		t.Fatalf("DecodeParquet returned error: %v", err)
	}

	if decoded.RowCount() != source.RowCount() {
		t.Fatalf("row count mismatch: got %d, want %d", decoded.RowCount(), source.RowCount())
	}
	if decoded.Types["id"] != TypeInt64 {
		t.Errorf("id type mismatch: got %s, want %s", decoded.Types["id"], TypeInt64)
	}
	if decoded.Types["name"] != TypeString {
		t.Errorf("name type mismatch: got %s, want %s", decoded.Types["name"], TypeString)
	}

	// Row order must survive the conversion.
	wantNames := []string{"alice", "bob", "carol"}
	for i, want := range wantNames {
		if got := decoded.Rows[i]["name"]; got != want {
			t.Errorf("row %d name mismatch: got %v, want %v", i, got, want)
		}
		if got := decoded.Rows[i]["id"]; got != int64(i+1) {
			t.Errorf("row %d id mismatch: got %v, want %d", i, got, i+1)
		}
	}
}

func TestParquetRoundTripNulls(t *testing.T) {
	source, err := ParseCSV([]byte("a,b\n1,x\n,y\n2,\n"))
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	encoded, err := EncodeParquet(source)
	if err != nil {
		t.Fatalf("EncodeParquet returned error: %v", err)
	}
	decoded, err := DecodeParquet(encoded)
	if err != nil {
		t.Fatalf("DecodeParquet returned error: %v", err)
	}

	if decoded.Rows[1]["a"] != nil {
		t.Errorf("expected null at row 1 column a, got %v", decoded.Rows[1]["a"])
	}
	if decoded.Rows[2]["b"] != nil {
		t.Errorf("expected null at row 2 column b, got %v", decoded.Rows[2]["b"])
	}
	if decoded.Rows[2]["a"] != int64(2) {
		t.Errorf("row 2 column a mismatch: got %v, want 2", decoded.Rows[2]["a"])
	}
}

func TestEncodeParquetEmptyTable(t *testing.T) {
	source, err := ParseCSV([]byte("a,b\n"))
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}

	encoded, err := EncodeParquet(source)
	if err != nil {
		t.Fatalf("EncodeParquet returned error: %v", err)
	}

	decoded, err := DecodeParquet(encoded)
	if err != nil {
		t.Fatalf("DecodeParquet returned error: %v", err)
	}
	if decoded.RowCount() != 0 {
		t.Errorf("row count mismatch: got %d, want 0", decoded.RowCount())
	}
	if len(decoded.Columns) != 2 {
		t.Errorf("column count mismatch: got %d, want 2", len(decoded.Columns))
	}
}

func TestDecodeParquetDynamicRows(t *testing.T) {
	source, err := ParseCSV([]byte("count,ratio,flag,label\n7,0.5,true,seven\n8,1.25,false,eight\n"))
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	encoded, err := EncodeParquet(source)
	if err != nil {
		t.Fatalf("EncodeParquet returned error: %v", err)
	}

	// Decoding has no Go struct to lean on; the row shape comes entirely
	// from the file schema.
	decoded, err := DecodeParquet(encoded)
	if err != nil {
		t.Fatalf("DecodeParquet returned error: %v", err)
	}
	if decoded.RowCount() != 2 {
		t.Fatalf("row count mismatch: got %d, want 2", decoded.RowCount())
	}

	first := decoded.Rows[0]
	if v, ok := first["count"].(int64); !ok || v != 7 {
		t.Errorf("count cell mismatch: got %v (%T), want int64 7", first["count"], first["count"])
	}
	if v, ok := first["ratio"].(float64); !ok || v != 0.5 {
		t.Errorf("ratio cell mismatch: got %v (%T), want float64 0.5", first["ratio"], first["ratio"])
	}
	if v, ok := first["flag"].(bool); !ok || v != true {
		t.Errorf("flag cell mismatch: got %v (%T), want bool true", first["flag"], first["flag"])
	}
	if v, ok := first["label"].(string); !ok || v != "seven" {
		t.Errorf("label cell mismatch: got %v (%T), want string seven", first["label"], first["label"])
	}
}

func TestEncodeParquetNilPayload(t *testing.T) {
	if _, err := EncodeParquet(nil); err == nil {
		t.Fatal("expected error for nil payload")
	}
}
