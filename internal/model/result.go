package model

import "fmt"

// RowFailure records a statement row that could not be parsed. The raw value
// and row number are kept so the user can correct the file and re-import.
type RowFailure struct {
	Row   int // 1-based row number in the source file, header included
	Value string
	Err   error
}

func (f RowFailure) String() string {
	return fmt.Sprintf("row %d (%q): %v", f.Row, f.Value, f.Err)
}

// ImportResult summarizes one imported statement file.
type ImportResult struct {
	File       string
	BatchID    string
	Inserted   int
	Duplicates int
	Failures   []RowFailure
}
