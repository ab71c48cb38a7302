package columnize

import "fmt"

// pageOverhead is the number of screen lines reserved for the header, the
// page marker and the prompt.
const pageOverhead = 7

// InterruptMessage is printed when the operator quits at a page break.
const InterruptMessage = "Manual interrupt received"

// paginate starts a new page once the buffered rows fill the screen.
func (c *Columnizer) paginate() error {
	if !c.opts.Paginate || len(c.buffer)+pageOverhead <= c.opts.Height {
		return nil
	}

	if c.opts.PaginateBreak {
		marker := fmt.Sprintf("lines %d-%d", c.emitted-len(c.buffer)+1, c.emitted)
		ok, err := c.opts.Prompter.Continue(marker)
		if err != nil {
			return fmt.Errorf("page break prompt: %w", err)
		}
		if !ok {
			if err := c.writeLine(InterruptMessage); err != nil {
				return err
			}
			c.log.Debug("operator quit at page break", "emitted", c.emitted)
			c.opts.Exit(0)
			return ErrInterrupted
		}
	}

	c.log.Debug("page break", "rows", len(c.buffer), "emitted", c.emitted)
	c.buffer = nil
	// Without a header there is nothing to re-establish, so the next page
	// keeps streaming under the current widths.
	if c.opts.PrintHeader {
		c.layout.Reset()
		c.state = awaitingLayout
	}
	return nil
}
