package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stridelabs/loctab/internal/record"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 120

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Parse a tabular file and summarize its records",
		Long: `Parse a tab-separated localization file and print one summary line per
record: its key, kind (scalar or array), value count and a value preview.

The file is fully validated along the way, so inspect doubles as a format
check before handing a sheet to csv2json.`,
		Example: `  # Summarize a file
  loctab inspect -i eng.tsv

  # Check the second value column instead of the first
  loctab inspect -c 2 -i eng.tsv`,
		Args: cobra.NoArgs,
		RunE: runInspect,
	}

	cmd.Flags().IntP("select-column", "c", 1, "1-based value column to read")
	cmd.Flags().IntP("skip-rows", "s", 0, "Number of leading rows to discard")

	return cmd
}

func runInspect(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	in, closeIn, err := openInput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeIn()

	reader, err := record.NewReader(newTabReader(in), record.ReaderConfig{
		Column:   cfg.SelectColumn,
		SkipRows: cfg.SkipRows,
	})
	if err != nil {
		return err
	}
	records, err := reader.ReadAll()
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("parsed tabular file", "records", len(records))

	out, closeOut, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Key", "Kind", "Values", "Preview"})

	previewWidth := terminalWidth() / 3
	for i, rec := range records {
		kind := "array"
		if rec.Marker == record.ScalarMarker {
			kind = "scalar"
		}
		t.AppendRow(table.Row{i + 1, rec.Key, kind, len(rec.Values), preview(rec.Values, previewWidth)})
	}
	t.Render()

	_, _ = fmt.Fprintf(out, "(%d records)\n", len(records))
	return closeOut()
}

// terminalWidth returns the width of the attached terminal, or a fixed
// fallback when stdout is a pipe or a file.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

func preview(values []string, width int) string {
	if width < 8 {
		width = 8
	}
	s := strings.Join(values, " | ")
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s
}
