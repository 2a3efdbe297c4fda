package jsontree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridelabs/loctab/internal/record"
)

func parseObject(t *testing.T, data string) *Object {
	t.Helper()
	o := New()
	require.NoError(t, json.Unmarshal([]byte(data), o))
	return o
}

func TestFlattenNestedScalar(t *testing.T) {
	o := parseObject(t, `{"Cards": {"Strike": {"NAME": "Strike"}}}`)

	records := Flatten(o)
	require.Len(t, records, 1)
	assert.Equal(t, record.Path{"Cards", "Strike", "NAME"}, records[0].Path)
	assert.Equal(t, "Cards::Strike::NAME", records[0].Path.String())
	assert.Equal(t, "Strike", records[0].Value)
}

func TestFlattenDocumentOrder(t *testing.T) {
	o := parseObject(t, `{
		"z": "last letter first",
		"group": {"b": "1", "a": "2"},
		"list": ["x", "y"],
		"empty": []
	}`)

	records := Flatten(o)
	require.Len(t, records, 5)

	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = r.Path.String()
	}
	assert.Equal(t, []string{"z", "group::b", "group::a", "list", "empty"}, keys)

	assert.Equal(t, []any{"x", "y"}, records[3].Value)
	assert.Equal(t, []any{}, records[4].Value)
}

func TestFlattenScalarAndArrayLeavesBothTerminate(t *testing.T) {
	// Scalar strings and arrays are both record-terminators; only nested
	// objects recurse.
	o := parseObject(t, `{"scalar": "s", "array": ["s"]}`)

	records := Flatten(o)
	require.Len(t, records, 2)
	assert.Equal(t, "s", records[0].Value)
	assert.Equal(t, []any{"s"}, records[1].Value)
}

func TestFlattenEmptyObjectEmitsNothing(t *testing.T) {
	assert.Empty(t, Flatten(New()))
}

func TestFlattenUnsupportedLeafSurfacesAtTabularBoundary(t *testing.T) {
	o := parseObject(t, `{"count": 3}`)

	records := Flatten(o)
	require.Len(t, records, 1, "unsupported leaves still flow through the flattener")

	_, err := record.FromRecord(records[0])
	var uerr *record.UnexpectedValueError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, record.Path{"count"}, uerr.Path)
}

func TestBuild(t *testing.T) {
	records := []record.Record{
		{Path: record.Path{"Cards", "Strike", "NAME"}, Value: "Strike"},
		{Path: record.Path{"Cards", "Strike", "DESCRIPTION"}, Value: []string{"Deal damage."}},
		{Path: record.Path{"Cards", "Defend", "NAME"}, Value: "Defend"},
		{Path: record.Path{"Keywords"}, Value: []string{}},
	}

	root := Build(records)

	data, err := json.Marshal(root)
	require.NoError(t, err)
	assert.Equal(t,
		`{"Cards":{"Strike":{"NAME":"Strike","DESCRIPTION":["Deal damage."]},"Defend":{"NAME":"Defend"}},"Keywords":[]}`,
		string(data))
}

func TestBuildLastWriteWins(t *testing.T) {
	records := []record.Record{
		{Path: record.Path{"A", "B"}, Value: "first"},
		{Path: record.Path{"A", "B"}, Value: "second"},
	}

	root := Build(records)
	a, ok := root.Get("A")
	require.True(t, ok)
	v, ok := a.(*Object).Get("B")
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestBuildEmpty(t *testing.T) {
	root := Build(nil)
	assert.Equal(t, 0, root.Len())
}

func TestFlattenBuildRoundTrip(t *testing.T) {
	in := `{
  "Cards": {
    "Strike": {
      "NAME": "Strike",
      "DESCRIPTION": ["Deal !D! damage."]
    }
  },
  "Relics": {
    "Anchor": {
      "NAME": "Anchor",
      "FLAVOR": "Hold fast."
    }
  }
}`
	o := parseObject(t, in)
	rebuilt := Build(Flatten(o))

	out, err := json.MarshalIndent(rebuilt, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}
