package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stridelabs/loctab/internal/convert"
)

// NewJSON2CSVCommand creates the json2csv command.
func NewJSON2CSVCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json2csv",
		Short: "Convert a JSON localization document to the tabular format",
		Long: `Convert a nested JSON localization document to the tab-separated
tabular format used for collaborative spreadsheet editing.

Each leaf value becomes one record: a key row holding the type marker and
the "::"-joined key, followed by one value row per string.`,
		Example: `  # Convert a file
  loctab json2csv -i eng.json -o eng.tsv

  # Convert from stdin to stdout
  loctab json2csv < eng.json > eng.tsv

  # Windows line endings for older spreadsheet tools
  loctab json2csv --crlf -i eng.json -o eng.tsv`,
		Args: cobra.NoArgs,
		RunE: runJSON2CSV,
	}

	cmd.Flags().Bool("crlf", false, "Terminate rows with CRLF instead of LF")

	return cmd
}

func runJSON2CSV(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	in, closeIn, err := openInput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeIn()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	cmdCtx.Logger.Debug("read JSON document", "bytes", len(data))

	out, closeOut, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}

	w := newTabWriter(out, cfg.CRLF)
	if err := convert.JSONToRows(data, w); err != nil {
		_ = closeOut()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = closeOut()
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return closeOut()
}
