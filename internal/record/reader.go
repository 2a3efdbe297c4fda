package record

import (
	"errors"
	"fmt"
	"io"
)

// ReaderConfig controls how rows are interpreted.
type ReaderConfig struct {
	// Column selects which value column is authoritative when collaborators'
	// edits occupy several columns in the same rows. 1-based; 0 means 1.
	Column int
	// SkipRows is the number of leading rows to discard unconditionally
	// before record parsing begins, malformed rows included.
	SkipRows int
}

// Reader reconstructs tabular records from raw rows. It reads one key row,
// derives the number of value rows from the key row's type marker, reads
// exactly that many value rows, and verifies the assembled record.
type Reader struct {
	src RowSource
	col int
}

// NewReader validates the configuration and discards the configured number
// of leading rows. Discarded rows are not inspected; read errors on them
// are ignored, matching "skip unconditionally".
func NewReader(src RowSource, cfg ReaderConfig) (*Reader, error) {
	if cfg.Column == 0 {
		cfg.Column = 1
	}
	if cfg.Column < 1 {
		return nil, fmt.Errorf("selected column must be >= 1 (is %d)", cfg.Column)
	}
	if cfg.SkipRows < 0 {
		return nil, fmt.Errorf("skipped rows must be >= 0 (is %d)", cfg.SkipRows)
	}
	for i := 0; i < cfg.SkipRows; i++ {
		if _, err := src.Read(); errors.Is(err, io.EOF) {
			break
		}
	}
	return &Reader{src: src, col: cfg.Column}, nil
}

// ReadRecord reads exactly one record. It returns io.EOF when the input is
// exhausted at a record boundary; end of input after a key row has been
// read is a FormatError instead.
func (r *Reader) ReadRecord() (TabularRecord, error) {
	row, err := r.src.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return TabularRecord{}, io.EOF
		}
		return TabularRecord{}, err
	}
	if len(row) != 2 {
		return TabularRecord{}, &FormatError{Row: row, Msg: "invalid key row"}
	}
	rec := TabularRecord{Marker: row[0], Key: row[1]}

	// An unparseable marker reads zero value rows; Verify rejects the
	// record afterwards, once its rows are fully consumed.
	want := 0
	if m, err := parseMarker(rec.Marker); err == nil {
		want = m.n
	}
	for i := 0; i < want; i++ {
		value, err := r.readValueRow()
		if err != nil {
			var ferr *FormatError
			if errors.As(err, &ferr) && ferr.Row == nil {
				ferr.Expected = want
				ferr.Actual = i
			}
			return TabularRecord{}, err
		}
		rec.Values = append(rec.Values, value)
	}

	if err := rec.Verify(); err != nil {
		return TabularRecord{}, err
	}
	return rec, nil
}

// ReadAll reads records until the input is cleanly exhausted.
func (r *Reader) ReadAll() ([]TabularRecord, error) {
	var records []TabularRecord
	for {
		rec, err := r.ReadRecord()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

func (r *Reader) readValueRow() (string, error) {
	row, err := r.src.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", &FormatError{Msg: "input ended inside a record"}
		}
		return "", err
	}
	if len(row) < max(2, r.col+1) || row[0] != valueRowMarker {
		return "", &FormatError{Row: row, Msg: "invalid value row"}
	}
	return row[r.col], nil
}
