// Command gridsheet is a terminal spreadsheet with per-column integer sums.
//
// Without a subcommand it opens the interactive grid. `gridsheet print` runs a
// command script against a fresh sheet and prints the result as a table.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olekukonko/errors"
	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/gridsheet"
	"github.com/iw2rmb/gridsheet/gridview"
)

type options struct {
	cols      int
	rows      int
	colWidth  int
	noRowNums bool
	debugLog  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "gridsheet",
		Short:        "Terminal spreadsheet with column sums",
		Version:      gridsheet.Version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return runTUI(opts)
		},
	}

	f := root.PersistentFlags()
	f.IntVar(&opts.cols, "cols", 0, "initial column count (default 10)")
	f.IntVar(&opts.rows, "rows", 0, "initial row count (default 10)")
	f.IntVar(&opts.colWidth, "col-width", gridview.DefaultColWidth, "cell width in terminal columns")
	f.BoolVar(&opts.noRowNums, "no-row-nums", false, "hide row numbers")
	f.StringVar(&opts.debugLog, "debug-log", "", "append debug records to `FILE`")

	root.AddCommand(newPrintCmd(opts))
	return root
}

func (o *options) validate() error {
	if o.cols < 0 || o.rows < 0 {
		return fmt.Errorf("--cols and --rows must not be negative (got %d, %d)", o.cols, o.rows)
	}
	if o.colWidth < 1 {
		return fmt.Errorf("--col-width must be positive (got %d)", o.colWidth)
	}
	return nil
}

// openLogger returns a logger writing to --debug-log, or nil when unset.
// The returned closer is never nil.
func (o *options) openLogger() (*ll.Logger, io.Closer, error) {
	if o.debugLog == "" {
		return nil, io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(o.debugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Newf("open debug log %s", o.debugLog).Wrap(err)
	}
	logger := ll.New("gridsheet").Handler(lh.NewTextHandler(f))
	logger.Enable()
	return logger, f, nil
}

func runTUI(opts *options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	logger, closer, err := opts.openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	var clip gridview.Clipboard
	if sc := (gridview.SystemClipboard{}); !sc.Unsupported() {
		clip = sc
	}

	m := newApp(gridview.Config{
		Cols:        opts.cols,
		Rows:        opts.rows,
		ColWidth:    opts.colWidth,
		ShowRowNums: !opts.noRowNums,
		Style:       gridview.DefaultStyle(),
		Clipboard:   clip,
		Logger:      logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.Newf("run terminal UI").Wrap(err)
	}
	return nil
}
