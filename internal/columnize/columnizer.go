// Package columnize prints rows as aligned columns while they stream in.
//
// Column widths are learned from the rows seen so far. When a later value
// does not fit its column, every row printed since the last page break is
// printed again under the wider layout, so the final screen never shows
// misaligned columns.
package columnize

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/lugassawan/colz/internal/termcolor"
)

// ErrReflowOverflow means a value did not fit even after the layout was
// rediscovered over every buffered row. It indicates a bug, not bad input.
var ErrReflowOverflow = errors.New("value wider than its column after reflow")

// ErrInterrupted is returned after the operator quits at a page break.
var ErrInterrupted = errors.New("output interrupted at page break")

// ReflowMarker is printed before buffered rows are printed again.
const ReflowMarker = "re-flowing columns to fit"

type state int

const (
	awaitingLayout state = iota
	streaming
	reflowing
)

func (s state) String() string {
	switch s {
	case streaming:
		return "streaming"
	case reflowing:
		return "reflowing"
	default:
		return "awaiting-layout"
	}
}

// Columnizer streams rows to a writer as aligned columns. It is not safe for
// concurrent use.
type Columnizer struct {
	layout *Layout
	opts   Options
	colors *colorizer
	indent string
	log    *slog.Logger

	buffer  []Row
	emitted int
	state   state
}

// New creates a Columnizer with a single header row.
func New(headers []string, opts Options) (*Columnizer, error) {
	return NewMultiTier([][]string{headers}, opts)
}

// NewMultiTier creates a Columnizer whose header spans several lines. The
// last tier provides the keys used by keyed rows.
func NewMultiTier(tiers [][]string, opts Options) (*Columnizer, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	layout, err := NewLayout(tiers, opts.BasePadding, opts.Justifications)
	if err != nil {
		return nil, err
	}
	layout.placeholder = opts.Placeholder

	return &Columnizer{
		layout: layout,
		opts:   opts,
		colors: newColorizer(termcolor.NewPainter(!opts.Colorize), opts.ColorRules),
		indent: strings.Repeat(" ", opts.Indent),
		log:    opts.Logger,
	}, nil
}

// Columns returns a snapshot of the current column layout.
func (c *Columnizer) Columns() []Column {
	return c.layout.Columns()
}

// Buffered returns the number of rows kept for a possible reflow.
func (c *Columnizer) Buffered() int {
	return len(c.buffer)
}

// Emitted returns the number of row lines printed over the table's lifetime,
// counting rows printed again by a reflow.
func (c *Columnizer) Emitted() int {
	return c.emitted
}

// Update feeds rows according to the configured mode.
func (c *Columnizer) Update(rows ...Row) error {
	if c.opts.Mode == ModeAll {
		return c.SubmitMany(rows)
	}
	for _, r := range rows {
		if err := c.SubmitOne(r); err != nil {
			return err
		}
	}
	return nil
}

// SubmitMany prints rows in order. If no layout is established yet, it is
// discovered over the whole batch first.
func (c *Columnizer) SubmitMany(rows []Row) error {
	for _, r := range rows {
		if err := c.checkRow(r); err != nil {
			return err
		}
	}
	if c.state == awaitingLayout && len(rows) > 0 {
		if err := c.establish(rows); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if err := c.SubmitOne(r); err != nil {
			return err
		}
	}
	return nil
}

// SubmitOne prints a single row. A row that does not fit the current layout
// triggers a reflow of every buffered row instead of being printed
// misaligned.
func (c *Columnizer) SubmitOne(r Row) error {
	if err := c.checkRow(r); err != nil {
		return err
	}
	if c.state == awaitingLayout {
		if err := c.establish([]Row{r}); err != nil {
			return err
		}
	}

	overflow, err := c.emit(r)
	if err != nil {
		return err
	}
	if overflow {
		if err := c.reflow(append(slices.Clone(c.buffer), r)); err != nil {
			return err
		}
	} else {
		c.emitted++
	}
	return c.paginate()
}

func (c *Columnizer) checkRow(r Row) error {
	if err := r.check(len(c.layout.columns)); err != nil {
		return err
	}
	return nil
}

// establish discovers the layout over rows and prints the header.
func (c *Columnizer) establish(rows []Row) error {
	if err := c.layout.Discover(rows); err != nil {
		return err
	}
	if c.state != reflowing {
		c.state = streaming
	}
	if !c.opts.PrintHeader {
		return nil
	}
	return c.writeHeader()
}

func (c *Columnizer) writeHeader() error {
	for _, line := range c.layout.RenderHeader(c.opts.Indent, c.opts.Delimiter) {
		if err := c.writeLine(c.colors.style(RuleBold, line)); err != nil {
			return err
		}
	}
	return nil
}

// emit formats r and prints it. It prints nothing and reports overflow when
// any value is wider than its column.
func (c *Columnizer) emit(r Row) (overflow bool, err error) {
	cells := make([]string, len(c.layout.columns))
	for i, col := range c.layout.columns {
		text, grew := c.layout.FormatValue(i, r.value(i, col.Key, c.opts.Placeholder))
		if grew {
			overflow = true
			continue
		}
		cells[i] = c.colors.cell(col.Key, text)
	}
	if overflow {
		return true, nil
	}
	if err := c.writeLine(c.indent + strings.Join(cells, c.opts.Delimiter)); err != nil {
		return false, err
	}
	c.buffer = append(c.buffer, r)
	return false, nil
}

// reflow rediscovers the layout over batch and prints it again.
func (c *Columnizer) reflow(batch []Row) error {
	if c.state == reflowing {
		return fmt.Errorf("%w: nested reflow", ErrReflowOverflow)
	}
	c.log.Debug("reflowing columns", "rows", len(batch))

	c.state = reflowing
	defer func() { c.state = streaming }()

	if err := c.writeLine(c.indent + ReflowMarker); err != nil {
		return err
	}
	c.buffer = nil
	if err := c.establish(batch); err != nil {
		return err
	}
	for i, r := range batch {
		overflow, err := c.emit(r)
		if err != nil {
			return err
		}
		if overflow {
			return fmt.Errorf("%w: row %d of %d", ErrReflowOverflow, i+1, len(batch))
		}
		c.emitted++
	}
	return nil
}

func (c *Columnizer) writeLine(s string) error {
	if _, err := io.WriteString(c.opts.Out, s+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
