package jsontree

import "github.com/stridelabs/loctab/internal/record"

// Build reconstructs the nested object tree from records. For each record,
// intermediate objects along the path are created on demand and the final
// segment is set to the record's value. Colliding paths are not validated;
// the last write wins.
func Build(records []record.Record) *Object {
	root := New()
	for _, r := range records {
		target := root
		for _, segment := range r.Path[:len(r.Path)-1] {
			target = target.Child(segment)
		}
		target.Set(r.Path[len(r.Path)-1], r.Value)
	}
	return root
}
