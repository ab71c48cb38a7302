package columnize

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHeaders is returned when a table is built without any columns.
var ErrNoHeaders = errors.New("at least one header is required")

// Column is one vertical field of the table.
type Column struct {
	// Key addresses the column in keyed rows. It is the last header tier.
	Key string
	// Labels holds the column's label for each header tier, top first.
	Labels  []string
	Width   int
	Justify Justification

	fixed bool
}

// Fixed reports whether the justification was set explicitly and is
// therefore never inferred from values.
func (c Column) Fixed() bool {
	return c.fixed
}

func (c *Column) labelLen() int {
	n := 0
	for _, l := range c.Labels {
		if ll := textLen(l); ll > n {
			n = ll
		}
	}
	return n
}

// Layout owns the width and justification of every column. Widths only grow.
type Layout struct {
	columns     []*Column
	tiers       int
	placeholder string
	established bool
}

// NewLayout builds a layout from header tiers. Every tier must have the same
// number of labels; the last tier names the column keys. overrides, when
// non-empty, fixes each column's justification and must cover every column.
func NewLayout(tiers [][]string, basePadding int, overrides []Justification) (*Layout, error) {
	if len(tiers) == 0 || len(tiers[len(tiers)-1]) == 0 {
		return nil, ErrNoHeaders
	}
	if basePadding < 0 {
		return nil, fmt.Errorf("base padding must be >= 0, got %d", basePadding)
	}
	n := len(tiers[len(tiers)-1])
	for i, tier := range tiers {
		if len(tier) != n {
			return nil, fmt.Errorf("header tier %d has %d labels, want %d", i, len(tier), n)
		}
	}
	if len(overrides) > 0 && len(overrides) != n {
		return nil, fmt.Errorf("got %d column justifications for %d columns", len(overrides), n)
	}

	cols := make([]*Column, n)
	for i := range cols {
		labels := make([]string, len(tiers))
		for t, tier := range tiers {
			labels[t] = tier[i]
		}
		cols[i] = &Column{
			Key:    tiers[len(tiers)-1][i],
			Labels: labels,
			Width:  basePadding,
		}
		if len(overrides) > 0 {
			cols[i].Justify = overrides[i]
			cols[i].fixed = true
		}
	}
	return &Layout{columns: cols, tiers: len(tiers), placeholder: defaultPlaceholder}, nil
}

// Columns returns a snapshot of the current columns.
func (l *Layout) Columns() []Column {
	out := make([]Column, len(l.columns))
	for i, c := range l.columns {
		cp := *c
		cp.Labels = append([]string(nil), c.Labels...)
		out[i] = cp
	}
	return out
}

// Established reports whether Discover has run since the last Reset.
func (l *Layout) Established() bool {
	return l.established
}

// Reset marks the layout as needing discovery again. Widths are kept.
func (l *Layout) Reset() {
	l.established = false
}

// Discover grows every column to fit rows and its labels, and infers the
// justification of columns that were not fixed. The last row examined
// decides a column's inferred justification.
func (l *Layout) Discover(rows []Row) error {
	for _, r := range rows {
		if err := r.check(len(l.columns)); err != nil {
			return err
		}
	}
	for i, c := range l.columns {
		for _, r := range rows {
			raw := r.value(i, c.Key, l.placeholder)
			c.Width = max(textLen(stringify(raw)), c.labelLen(), c.Width)
			if !c.fixed {
				c.Justify = inferJustification(raw)
			}
		}
		if len(rows) == 0 {
			c.Width = max(c.labelLen(), c.Width)
		}
	}
	l.established = true
	return nil
}

// RenderHeader returns one line per header tier followed by a dash
// separator as long as the widest header line, indent included. Lines carry
// the indent.
func (l *Layout) RenderHeader(indent int, delimiter string) []string {
	pad := strings.Repeat(" ", indent)
	lines := make([]string, 0, l.tiers+1)
	longest := 0
	for t := 0; t < l.tiers; t++ {
		cells := make([]string, len(l.columns))
		for i, c := range l.columns {
			cells[i] = justify(c.Labels[t], c.Width, c.Justify)
		}
		text := strings.Join(cells, delimiter)
		longest = max(longest, textLen(text))
		lines = append(lines, pad+text)
	}
	return append(lines, pad+strings.Repeat("-", indent+longest))
}

// FormatValue pads raw to column i. When the text is wider than the column,
// the column grows to fit and the unpadded text is returned with
// needsReflow set; rows already printed no longer line up with it.
func (l *Layout) FormatValue(i int, raw any) (text string, needsReflow bool) {
	c := l.columns[i]
	text = stringify(raw)
	if n := textLen(text); n > c.Width {
		c.Width = n
		return text, true
	}
	return justify(text, c.Width, c.Justify), false
}
