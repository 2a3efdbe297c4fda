package convert

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridelabs/loctab/internal/record"
)

func tabReader(s string) *csv.Reader {
	r := csv.NewReader(strings.NewReader(s))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r
}

func toRows(t *testing.T, jsonDoc string) string {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	require.NoError(t, JSONToRows([]byte(jsonDoc), w))
	w.Flush()
	require.NoError(t, w.Error())
	return buf.String()
}

func TestJSONToRows(t *testing.T) {
	got := toRows(t, `{
		"Cards": {
			"Strike": {
				"NAME": "Strike",
				"DESCRIPTION": ["Deal damage.", "Twice."]
			}
		},
		"Empty": []
	}`)

	want := strings.Join([]string{
		"-\tCards::Strike::NAME",
		"\tStrike",
		"2\tCards::Strike::DESCRIPTION",
		"\tDeal damage.",
		"\tTwice.",
		"0\tEmpty",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestJSONToRowsInvalidJSON(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	assert.Error(t, JSONToRows([]byte(`{"broken`), w))
}

func TestRowsToJSON(t *testing.T) {
	in := strings.Join([]string{
		"-\tCards::Strike::NAME",
		"\tStrike",
		"1\tCards::Strike::DESCRIPTION",
		"\tDeal damage.",
		"",
	}, "\n")

	out, err := RowsToJSON(tabReader(in), record.ReaderConfig{})
	require.NoError(t, err)

	want := `{
  "Cards": {
    "Strike": {
      "NAME": "Strike",
      "DESCRIPTION": [
        "Deal damage."
      ]
    }
  }
}`
	assert.Equal(t, want, string(out))
}

func TestRowsToJSONSelectColumn(t *testing.T) {
	in := strings.Join([]string{
		"-\tGreeting",
		"\toriginal\ttranslated",
		"",
	}, "\n")

	out, err := RowsToJSON(tabReader(in), record.ReaderConfig{Column: 2})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Greeting": "translated"`)
}

func TestRoundTripJSONToTabularToJSON(t *testing.T) {
	docs := []string{
		`{
  "Cards": {
    "Strike": {
      "NAME": "Strike",
      "DESCRIPTION": [
        "Deal !D! damage."
      ]
    },
    "Defend": {
      "NAME": "Defend"
    }
  },
  "Single": [
    "one"
  ],
  "Empty": []
}`,
		`{
  "top": "scalar at the top level"
}`,
		`{}`,
	}

	for _, doc := range docs {
		rows := toRows(t, doc)
		out, err := RowsToJSON(tabReader(rows), record.ReaderConfig{})
		require.NoError(t, err)
		assert.Equal(t, doc, string(out))
	}
}

func TestRoundTripTabularToJSONToTabular(t *testing.T) {
	in := strings.Join([]string{
		"-\tCards::Strike::NAME",
		"\tStrike",
		"2\tCards::Strike::DESCRIPTION",
		"\tDeal damage.",
		"\tTwice.",
		"0\tKeywords",
		"1\tSingle",
		"\tone",
		"",
	}, "\n")

	jsonDoc, err := RowsToJSON(tabReader(in), record.ReaderConfig{})
	require.NoError(t, err)

	out := toRows(t, string(jsonDoc))
	assert.Equal(t, in, out)
}

func TestScalarVersusSingletonArray(t *testing.T) {
	rows := toRows(t, `{"scalar": "X", "array": ["X"]}`)
	want := strings.Join([]string{
		"-\tscalar",
		"\tX",
		"1\tarray",
		"\tX",
		"",
	}, "\n")
	require.Equal(t, want, rows)

	out, err := RowsToJSON(tabReader(rows), record.ReaderConfig{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"scalar": "X", "array": ["X"]}`, string(out))
	assert.Contains(t, string(out), "\"scalar\": \"X\"")
	assert.Contains(t, string(out), "[\n    \"X\"\n  ]")
}

func TestReadRecordsPropagatesFormatError(t *testing.T) {
	in := "2\tA::B\n\tonly one value\n"
	_, err := ReadRecords(tabReader(in), record.ReaderConfig{})

	var ferr *record.FormatError
	require.ErrorAs(t, err, &ferr)
}
