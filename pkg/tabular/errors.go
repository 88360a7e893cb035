package tabular

import "errors"

var (
	// ErrEmptyInput is returned when the CSV payload has no header row.
	ErrEmptyInput = errors.New("tabular: input has no header row")
	// ErrDuplicateColumn is returned when the header repeats a column name.
	ErrDuplicateColumn = errors.New("tabular: duplicate column name in header")
	// ErrEmptyColumnName is returned when a header cell is blank.
	ErrEmptyColumnName = errors.New("tabular: empty column name in header")
)
