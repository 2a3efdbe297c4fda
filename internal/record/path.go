// Package record defines the localization record model and the tabular
// codec that serializes records to and from tab-separated rows.
//
// A record pairs a name path (the joined nested-object keys, e.g.
// "Cards::Strike::NAME") with either a single string or an ordered list of
// strings. On disk a record is one key row followed by as many value rows
// as the key row's type marker declares.
package record

import "strings"

// PathSeparator joins name path segments in the tabular key column.
const PathSeparator = "::"

// Path is the ordered sequence of object keys identifying a nested JSON
// location. Paths are value types; Append returns a new path and never
// mutates the receiver's backing array.
type Path []string

// ParsePath splits a joined key into its segments. Any string parses;
// segments containing the separator cannot be represented and are an
// accepted format limitation, not an error.
func ParsePath(s string) Path {
	return Path(strings.Split(s, PathSeparator))
}

// String renders the path in its joined form. It is the exact inverse of
// ParsePath for segments that contain no separator.
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// Append returns a new path with segment as its last element.
func (p Path) Append(segment string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, segment)
}
