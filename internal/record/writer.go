package record

// WriteRecords emits the records to the sink in input order, one key row
// and N value rows each. No reordering, no deduplication.
func WriteRecords(sink RowSink, records []Record) error {
	for _, r := range records {
		tr, err := FromRecord(r)
		if err != nil {
			return err
		}
		if err := tr.WriteTo(sink); err != nil {
			return err
		}
	}
	return nil
}
