package record

// RowSource produces an ordered, finite sequence of raw rows. Read returns
// io.EOF when the sequence is exhausted. *csv.Reader satisfies it.
type RowSource interface {
	Read() ([]string, error)
}

// RowSink accepts raw rows one at a time, in order. *csv.Writer satisfies
// it (modulo its buffered Flush, which belongs to the caller).
type RowSink interface {
	Write(row []string) error
}
