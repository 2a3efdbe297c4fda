package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stridelabs/loctab/internal/convert"
	"github.com/stridelabs/loctab/internal/record"
)

// NewCSV2JSONCommand creates the csv2json command.
func NewCSV2JSONCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv2json",
		Short: "Convert the tabular format back to a JSON document",
		Long: `Convert tab-separated records back into the nested JSON localization
document, preserving the key order of the input records.

When collaborators have filled in several value columns, --select-column
picks which one is authoritative. --skip-rows discards leading rows (for
example a header added by the spreadsheet) before parsing begins.`,
		Example: `  # Convert a file
  loctab csv2json -i eng.tsv -o eng.json

  # Take translations from the second value column
  loctab csv2json -c 2 -i eng.tsv

  # Ignore a two-row header
  loctab csv2json -s 2 -i eng.tsv`,
		Args: cobra.NoArgs,
		RunE: runCSV2JSON,
	}

	cmd.Flags().IntP("select-column", "c", 1, "1-based value column to read")
	cmd.Flags().IntP("skip-rows", "s", 0, "Number of leading rows to discard")

	return cmd
}

func runCSV2JSON(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	in, closeIn, err := openInput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeIn()

	data, err := convert.RowsToJSON(newTabReader(in), record.ReaderConfig{
		Column:   cfg.SelectColumn,
		SkipRows: cfg.SkipRows,
	})
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("rebuilt JSON document", "bytes", len(data))

	out, closeOut, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		_ = closeOut()
		return fmt.Errorf("failed to write JSON document: %w", err)
	}
	return closeOut()
}
