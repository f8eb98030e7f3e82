package main

import (
	"io"
	"os"
	"strings"

	"github.com/olekukonko/errors"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/gridsheet/grid"
	"github.com/iw2rmb/gridsheet/internal/printer"
	"github.com/iw2rmb/gridsheet/internal/script"
)

func newPrintCmd(opts *options) *cobra.Command {
	var (
		file    string
		execs   []string
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Run a command script and print the sheet as a table",
		Long: `Runs a command script against a fresh sheet and prints it with column
labels, row numbers and the column sums footer.

Script lines: select B2, set TEXT, clear, addrow, addcol, move DCOL DROW.
Lines starting with # are comments. --file (or "-" for stdin) runs first,
then each --exec line in order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			logger, closer, err := opts.openLogger()
			if err != nil {
				return err
			}
			defer closer.Close()

			sess := grid.NewSession(grid.Config{Cols: opts.cols, Rows: opts.rows, Logger: logger})
			if err := runScripts(sess.Controller(), cmd.InOrStdin(), file, execs); err != nil {
				return err
			}
			if err := printer.Print(cmd.OutOrStdout(), sess.Controller(), printer.Options{
				ShowRowNums:  !opts.noRowNums,
				MaxCellWidth: opts.colWidth,
			}); err != nil {
				return err
			}
			if summary {
				cmd.PrintErrln(printer.Summary(sess.Controller()))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "script `FILE` to run (- for stdin)")
	cmd.Flags().StringArrayVarP(&execs, "exec", "e", nil, "script line to run (repeatable)")
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "write size, stored cell count and cursor to stderr")
	return cmd
}

func runScripts(c *grid.Controller, stdin io.Reader, file string, execs []string) error {
	if file != "" {
		var r io.Reader = stdin
		if file != "-" {
			f, err := os.Open(file)
			if err != nil {
				return errors.Newf("open script %s", file).Wrap(err)
			}
			defer f.Close()
			r = f
		}
		if err := script.Exec(c, r); err != nil {
			return errors.Newf("script %s", file).Wrap(err)
		}
	}
	if len(execs) > 0 {
		if err := script.Exec(c, strings.NewReader(strings.Join(execs, "\n"))); err != nil {
			return errors.Newf("--exec").Wrap(err)
		}
	}
	return nil
}
