package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewJSON2CSVCommand(t *testing.T) {
	cmd := NewJSON2CSVCommand()

	assert.Equal(t, "json2csv", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("crlf"), "flag %q should exist", "crlf")
}

func TestNewCSV2JSONCommand(t *testing.T) {
	cmd := NewCSV2JSONCommand()

	assert.Equal(t, "csv2json", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"select-column", "skip-rows"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewInspectCommand(t *testing.T) {
	cmd := NewInspectCommand()

	assert.Equal(t, "inspect", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"select-column", "skip-rows"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a | b", preview([]string{"a", "b"}, 40))
	assert.Equal(t, "", preview(nil, 40))

	long := preview([]string{"0123456789", "0123456789"}, 10)
	assert.LessOrEqual(t, len([]rune(long)), 10)
	assert.Contains(t, long, "…")
}
