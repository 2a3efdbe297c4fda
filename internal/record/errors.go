package record

import "fmt"

// FormatError reports a malformed row shape while reading the tabular
// format: a key row without exactly two cells, a value row missing the
// empty marker or the selected column, or end of input before the declared
// number of value rows arrived.
type FormatError struct {
	// Row is the offending raw row, nil when the failure is a premature
	// end of input rather than a bad row.
	Row []string
	// Expected and Actual carry the value-row counts when the failure is
	// an insufficient-rows condition; both are zero otherwise.
	Expected int
	Actual   int
	Msg      string
}

func (e *FormatError) Error() string {
	if e.Row != nil {
		return fmt.Sprintf("%s: %q", e.Msg, e.Row)
	}
	if e.Expected != e.Actual {
		return fmt.Sprintf("%s: expected %d value rows, read %d", e.Msg, e.Expected, e.Actual)
	}
	return e.Msg
}

// VerificationError reports a constructed tabular record whose declared
// type marker disagrees with its actual value count, or whose marker is
// neither the scalar marker nor a non-negative integer. It is raised after
// the record's rows have been fully consumed, never mid-read.
type VerificationError struct {
	Record TabularRecord
	Msg    string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("record %q (marker %q): %s", e.Record.Key, e.Record.Marker, e.Msg)
}

// UnexpectedValueError reports a record whose in-memory value is neither a
// string nor a sequence. This is a model-boundary failure (bad input to the
// flattener), not a tabular-format failure.
type UnexpectedValueError struct {
	Path  Path
	Value any
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf("unexpected value %#v of %s", e.Value, e.Path)
}
