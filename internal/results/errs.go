// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package results

import "fmt"

type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrMissingColumn is returned when the header lacks a required column.
const ErrMissingColumn = constError("missing required column")

// ErrShortRow is returned when a data row ends before a required column.
const ErrShortRow = constError("row has too few fields")

// RowError reports a data row that could not be converted into a
// Measurement. Line is the 1-based line number in the input.
type RowError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	switch {
	case e.Column == "":
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	case e.Value == "":
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Column, e.Err)
	default:
		return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Column, e.Value, e.Err)
	}
}

func (e *RowError) Unwrap() error {
	return e.Err
}
