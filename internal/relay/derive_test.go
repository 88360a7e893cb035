package relay

import "testing"

func TestDeriveDestinationKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"lowercase extension", "a/b.csv", "a/b.parquet"},
		{"uppercase extension", "a/B.CSV", "a/B.parquet"},
		{"mixed case extension", "data/2024/report.Csv", "data/2024/report.parquet"},
		{"other extension appended", "a/file.txt", "a/file.txt.parquet"},
		{"no extension appended", "a/file", "a/file.parquet"},
		{"extension only", ".csv", ".parquet"},
		{"dot inside path", "a.csv/file.csv", "a.csv/file.parquet"},
		{"empty key", "", ".parquet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveDestinationKey(tt.key, ".csv", ".parquet")
			if got != tt.want {
				t.Errorf("destination key mismatch: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDeriveDestinationKeyDeterministic(t *testing.T) {
	first := DeriveDestinationKey("x/y.csv", ".csv", ".parquet")
	second := DeriveDestinationKey("x/y.csv", ".csv", ".parquet")
	if first != second {
		t.Errorf("derivation not deterministic: %s vs %s", first, second)
	}
}
