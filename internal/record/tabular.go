package record

import (
	"fmt"
	"strconv"
)

const (
	// ScalarMarker is the type marker of a key row whose record holds a
	// single string rather than an array.
	ScalarMarker = "-"

	// valueRowMarker is the content of cell 0 on every value row.
	valueRowMarker = ""
)

// Record is the in-memory form of one localization entry: a name path and
// either a single string or an ordered sequence of strings. The value is
// never a mapping; the flattener recurses into mappings instead of emitting
// them.
type Record struct {
	Path  Path
	Value any
}

// TabularRecord is the wire form of a Record: a type marker, the joined
// name path, and one cell per value row.
type TabularRecord struct {
	Marker string
	Key    string
	Values []string
}

// marker is the decoded form of a type marker: either the scalar marker or
// an array length. Parsed once after reading so that no use site re-parses
// the raw string.
type marker struct {
	scalar bool
	n      int
}

func parseMarker(s string) (marker, error) {
	if s == ScalarMarker {
		return marker{scalar: true, n: 1}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return marker{}, fmt.Errorf("invalid type marker %q", s)
	}
	return marker{n: n}, nil
}

// FromRecord converts an in-memory record to its wire form. Scalar strings
// get the scalar marker and a singleton value list; sequences get their
// length as the marker. Sequence elements that are not already strings are
// stringified the way the spreadsheet would display them. Any other value
// kind is an UnexpectedValueError.
func FromRecord(r Record) (TabularRecord, error) {
	switch v := r.Value.(type) {
	case string:
		return TabularRecord{Marker: ScalarMarker, Key: r.Path.String(), Values: []string{v}}, nil
	case []string:
		values := make([]string, len(v))
		copy(values, v)
		return TabularRecord{Marker: strconv.Itoa(len(v)), Key: r.Path.String(), Values: values}, nil
	case []any:
		values := make([]string, len(v))
		for i, el := range v {
			if s, ok := el.(string); ok {
				values[i] = s
			} else {
				values[i] = fmt.Sprint(el)
			}
		}
		return TabularRecord{Marker: strconv.Itoa(len(v)), Key: r.Path.String(), Values: values}, nil
	default:
		return TabularRecord{}, &UnexpectedValueError{Path: r.Path, Value: r.Value}
	}
}

// Record converts back to the in-memory form. A scalar marker yields the
// single string; anything else yields the value slice as-is, so length-1
// arrays stay arrays and length-0 arrays stay empty arrays.
func (t TabularRecord) Record() Record {
	if t.Marker == ScalarMarker {
		return Record{Path: ParsePath(t.Key), Value: t.Values[0]}
	}
	values := make([]string, len(t.Values))
	copy(values, t.Values)
	return Record{Path: ParsePath(t.Key), Value: values}
}

// Verify checks that the declared marker agrees with the actual number of
// values. It re-derives the expected count from the marker so that a record
// assembled from malformed rows is rejected here rather than producing a
// silently wrong array.
func (t TabularRecord) Verify() error {
	m, err := parseMarker(t.Marker)
	if err != nil {
		return &VerificationError{Record: t, Msg: err.Error()}
	}
	if len(t.Values) != m.n {
		if m.scalar {
			return &VerificationError{Record: t, Msg: fmt.Sprintf("scalar record has %d values, want exactly 1", len(t.Values))}
		}
		return &VerificationError{Record: t, Msg: fmt.Sprintf("declared length %d does not match actual length %d", m.n, len(t.Values))}
	}
	return nil
}

// WriteTo emits the record as rows: the key row first, then one value row
// per value, in order.
func (t TabularRecord) WriteTo(sink RowSink) error {
	if err := sink.Write([]string{t.Marker, t.Key}); err != nil {
		return err
	}
	for _, v := range t.Values {
		if err := sink.Write([]string{valueRowMarker, v}); err != nil {
			return err
		}
	}
	return nil
}
