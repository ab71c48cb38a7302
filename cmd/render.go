package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lugassawan/colz/internal/columnize"
	"github.com/lugassawan/colz/internal/config"
	"github.com/lugassawan/colz/internal/input"
	"github.com/lugassawan/colz/internal/spinner"
	"github.com/lugassawan/colz/internal/terminal"
	"github.com/spf13/cobra"
)

const (
	flagFormat      = "format"
	flagHeaders     = "headers"
	flagDelimiter   = "delimiter"
	flagPadding     = "padding"
	flagIndent      = "indent"
	flagMode        = "mode"
	flagJustify     = "justify"
	flagPlaceholder = "placeholder"
	flagColor       = "color"
	flagNoHeader    = "no-header"
	flagNoPaginate  = "no-paginate"
	flagNoPause     = "no-pause"
	flagHeight      = "height"
)

// renderFlags holds the table flags of the root command.
type renderFlags struct {
	format      string
	headers     []string
	delimiter   string
	padding     int
	indent      int
	mode        string
	justify     justifyValue
	placeholder string
	color       string
	noHeader    bool
	noPaginate  bool
	noPause     bool
	height      int
}

// exitFunc ends the process when the operator quits at a page break.
var exitFunc = os.Exit

func addRenderFlags(cmd *cobra.Command, f *renderFlags) {
	fs := cmd.Flags()
	fs.StringVarP(&f.format, flagFormat, "f", "", "input format: csv, tsv, jsonl or yaml (default from file extension, else csv)")
	fs.StringSliceVarP(&f.headers, flagHeaders, "H", nil, "column headers; when set the input has no header record")
	fs.StringVarP(&f.delimiter, flagDelimiter, "d", "", "text between columns (default two spaces)")
	fs.IntVarP(&f.padding, flagPadding, "p", 0, "minimum column width (default 6)")
	fs.IntVarP(&f.indent, flagIndent, "i", 0, "spaces before every line")
	fs.StringVarP(&f.mode, flagMode, "m", "", "line prints rows as they arrive, all reads everything first (default line)")
	fs.VarP(&f.justify, flagJustify, "j", "per-column justification: left/str or right/num")
	fs.StringVar(&f.placeholder, flagPlaceholder, "", "text shown for missing values (default \"-\")")
	fs.StringVar(&f.color, flagColor, "", "colorize values: auto, always or never (default auto)")
	fs.BoolVar(&f.noHeader, flagNoHeader, false, "do not print the header")
	fs.BoolVar(&f.noPaginate, flagNoPaginate, false, "never start a new page")
	fs.BoolVar(&f.noPause, flagNoPause, false, "start new pages without waiting for Enter")
	fs.IntVar(&f.height, flagHeight, 0, "page height in lines (default terminal height; pages only on a terminal unless set)")

	registerCompletions(cmd)
}

// apply overlays the flags the user set on top of cfg.
func (f *renderFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed(flagDelimiter) {
		cfg.Delimiter = f.delimiter
	}
	if changed(flagPadding) {
		cfg.BasePadding = f.padding
	}
	if changed(flagIndent) {
		cfg.Indent = f.indent
	}
	if changed(flagMode) {
		cfg.Mode = f.mode
	}
	if changed(flagJustify) {
		cfg.Justify = f.justify.names()
	}
	if changed(flagPlaceholder) {
		cfg.Placeholder = f.placeholder
	}
	if changed(flagColor) {
		cfg.Color = f.color
	}
	if noColor, _ := cmd.Flags().GetBool(flagNoColor); noColor {
		cfg.Color = string(terminal.ColorNever)
	}
	if f.noHeader {
		cfg.PrintHeader = false
	}
	if f.noPaginate {
		cfg.Paginate = false
	}
	if f.noPause {
		cfg.PaginateBreak = false
	}
}

func runRender(cmd *cobra.Command, args []string, f *renderFlags) error {
	cfg := *configFromContext(cmd)
	f.apply(cmd, &cfg)

	opts, err := cfg.ColumnizeOptions()
	if err != nil {
		return err
	}

	src, name, closeSrc, err := openSource(cmd, args)
	if err != nil {
		return err
	}
	defer closeSrc()

	format := input.FormatFromPath(name)
	if f.format != "" {
		if format, err = input.ParseFormat(f.format); err != nil {
			return err
		}
	}

	reader, err := input.Open(format, src, f.headers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colorMode, _ := terminal.ParseColorMode(cfg.Color)
	opts.Out = out
	opts.Colorize = terminal.ColorEnabled(out, colorMode)
	opts.Logger = slog.Default()
	opts.Exit = exitFunc

	closePrompt := configurePaging(cmd, &opts, f.height, name == "")
	defer closePrompt()

	tbl, err := columnize.New(reader.Headers(), opts)
	if err != nil {
		return err
	}
	slog.Debug("rendering table", "format", format, "columns", len(reader.Headers()), "mode", opts.Mode)

	err = stream(cmd, tbl, reader, opts.Mode)
	if errors.Is(err, columnize.ErrInterrupted) {
		return nil
	}
	return err
}

// stream feeds rows to tbl as they are read, or all at once in all mode.
// While all mode buffers, a terminal stderr shows the running row count.
func stream(cmd *cobra.Command, tbl *columnize.Columnizer, reader input.Reader, mode columnize.Mode) error {
	if mode == columnize.ModeAll {
		sp := spinner.New(spinner.Options{Writer: cmd.ErrOrStderr(), Label: "reading rows"})
		sp.Start()
		rows, err := input.ReadAll(countingReader{Reader: reader, tick: sp.Tick})
		sp.Stop()
		if err != nil {
			return err
		}
		slog.Debug("input buffered", "rows", sp.Count())
		return tbl.SubmitMany(rows)
	}
	for {
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tbl.SubmitOne(row); err != nil {
			return err
		}
	}
}

// countingReader calls tick for every row it yields.
type countingReader struct {
	input.Reader
	tick func()
}

func (r countingReader) Next() (columnize.Row, error) {
	row, err := r.Reader.Next()
	if err == nil {
		r.tick()
	}
	return row, err
}

// openSource opens the file argument, or stdin when there is none. The
// returned name is empty for stdin.
func openSource(cmd *cobra.Command, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), "", func() {}, nil
	}
	file, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, fmt.Errorf("open input: %w", err)
	}
	return file, args[0], func() { _ = file.Close() }, nil
}

// configurePaging sets the page height and the prompter. Output that is not
// a terminal only pages when --height is given, and never pauses.
func configurePaging(cmd *cobra.Command, opts *columnize.Options, height int, rowsOnStdin bool) func() {
	noop := func() {}
	out, isTTY := terminalFile(opts.Out)
	switch {
	case height > 0:
		opts.Height = height
	case isTTY:
		opts.Height = terminal.Height(out.Fd())
	default:
		opts.Paginate = false
	}
	if !opts.Paginate || !opts.PaginateBreak || !isTTY {
		opts.PaginateBreak = false
		return noop
	}

	if in, ok := terminalFile(cmd.InOrStdin()); ok && !rowsOnStdin {
		opts.Prompter = terminal.NewLinePrompter(in, opts.Out)
		return noop
	}
	tty, err := terminal.OpenTTY()
	if err != nil {
		slog.Debug("page breaks disabled", "error", err)
		opts.PaginateBreak = false
		return noop
	}
	opts.Prompter = terminal.NewLinePrompter(tty, opts.Out)
	return func() { _ = tty.Close() }
}

func terminalFile(v any) (*os.File, bool) {
	f, ok := v.(*os.File)
	if !ok || !terminal.IsTerminal(f.Fd()) {
		return nil, false
	}
	return f, true
}
