package columnize

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	defaultPlaceholder = "-"
	defaultDelimiter   = "  "
	defaultBasePadding = 6
	fallbackHeight     = 30
)

// Mode selects how Update feeds rows to the table.
type Mode string

const (
	// ModeLine prints each row as it arrives.
	ModeLine Mode = "line"
	// ModeAll discovers the layout over the whole batch before printing.
	ModeAll Mode = "all"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLine, ModeAll:
		return m, nil
	}
	return "", fmt.Errorf("invalid mode %q (want line or all)", s)
}

// Prompter asks the operator whether to keep paging. It returns false to quit.
type Prompter interface {
	Continue(marker string) (bool, error)
}

// Options configures a Columnizer. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Out            io.Writer
	BasePadding    int
	Mode           Mode
	Delimiter      string
	Indent         int
	Placeholder    string
	Justifications []Justification

	Colorize   bool
	ColorRules ColorRules

	PrintHeader   bool
	Paginate      bool
	PaginateBreak bool
	// Height is the terminal height in rows. Zero means unknown and falls
	// back to 30.
	Height   int
	Prompter Prompter
	// Exit ends the process when the operator quits at a page break.
	Exit func(code int)

	Logger *slog.Logger
}

// DefaultOptions returns options writing to stdout with the built-in colors.
func DefaultOptions() Options {
	return Options{
		Out:           os.Stdout,
		BasePadding:   defaultBasePadding,
		Mode:          ModeLine,
		Delimiter:     defaultDelimiter,
		Placeholder:   defaultPlaceholder,
		ColorRules:    DefaultColorRules(),
		PrintHeader:   true,
		Paginate:      true,
		PaginateBreak: true,
		Exit:          os.Exit,
	}
}

func (o *Options) normalize() error {
	if o.Indent < 0 {
		return fmt.Errorf("indent must be >= 0, got %d", o.Indent)
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Mode == "" {
		o.Mode = ModeLine
	}
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return err
	}
	if o.Placeholder == "" {
		o.Placeholder = defaultPlaceholder
	}
	if o.ColorRules == nil {
		o.ColorRules = DefaultColorRules()
	}
	if o.Height <= 0 {
		o.Height = fallbackHeight
	}
	if o.PaginateBreak && o.Prompter == nil {
		o.PaginateBreak = false
	}
	if o.Exit == nil {
		o.Exit = os.Exit
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return nil
}
