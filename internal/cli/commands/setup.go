// Package commands implements the loctab subcommands.
package commands

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stridelabs/loctab/internal/cli/config"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewCommandContext pulls the loaded config and logger out of the command
// context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    config.GetConfig(cmd.Context()),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// openInput returns the configured input file, or the command's stdin when
// no file was given. The cleanup function closes the file if one was
// opened.
func openInput(cmd *cobra.Command, cfg *config.Config) (io.Reader, func(), error) {
	if cfg.InputFile == "" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(cfg.InputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// openOutput returns the configured output file, or the command's stdout
// when no file was given.
func openOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.OutputFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(cfg.OutputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// newTabReader wraps r in a reader for the tab-separated dialect. Rows have
// a varying number of cells (two on key rows, two or more on value rows),
// so per-record field counting is disabled.
func newTabReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// newTabWriter wraps w in a writer for the tab-separated dialect.
func newTabWriter(w io.Writer, crlf bool) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	cw.UseCRLF = crlf
	return cw
}
