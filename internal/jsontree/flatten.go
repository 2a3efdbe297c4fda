package jsontree

import "github.com/stridelabs/loctab/internal/record"

// Flatten walks the object depth-first in key order and emits one record
// per leaf. Nested objects recurse with the key appended to the path;
// every other value — scalar strings and arrays alike — terminates the
// walk and becomes a record. Unsupported leaf kinds (numbers, booleans,
// null) flow through here untouched and are rejected at the tabular
// boundary by record.FromRecord.
func Flatten(obj *Object) []record.Record {
	return flattenInto(obj, nil, nil)
}

func flattenInto(obj *Object, prefix record.Path, out []record.Record) []record.Record {
	for _, key := range obj.Keys() {
		path := prefix.Append(key)
		v, _ := obj.Get(key)
		if child, ok := v.(*Object); ok {
			out = flattenInto(child, path, out)
			continue
		}
		out = append(out, record.Record{Path: path, Value: v})
	}
	return out
}
