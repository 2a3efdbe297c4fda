// Package convert wires the record codecs into the two whole-document
// conversions the CLI exposes. Each call is self-contained: it builds its
// model instances, runs to completion and discards them. Failures abort
// the run; rows already written to the sink stay written.
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/stridelabs/loctab/internal/jsontree"
	"github.com/stridelabs/loctab/internal/record"
)

// JSONToRows flattens a JSON document into records and writes them to the
// row sink in document order.
func JSONToRows(data []byte, sink record.RowSink) error {
	root := jsontree.New()
	if err := json.Unmarshal(data, root); err != nil {
		return fmt.Errorf("failed to parse JSON document: %w", err)
	}
	return record.WriteRecords(sink, jsontree.Flatten(root))
}

// RowsToJSON reads all records from the row source and rebuilds the nested
// JSON document, pretty-printed with a two-space indent.
func RowsToJSON(src record.RowSource, cfg record.ReaderConfig) ([]byte, error) {
	records, err := ReadRecords(src, cfg)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(jsontree.Build(records), "", "  ")
}

// ReadRecords reads every tabular record from the source and converts each
// to its in-memory form.
func ReadRecords(src record.RowSource, cfg record.ReaderConfig) ([]record.Record, error) {
	reader, err := record.NewReader(src, cfg)
	if err != nil {
		return nil, err
	}
	tabular, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	records := make([]record.Record, len(tabular))
	for i, tr := range tabular {
		records[i] = tr.Record()
	}
	return records, nil
}
