package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// QuitSentinel is the answer that stops paging.
const QuitSentinel = "q"

// LinePrompter shows a page marker on Out and reads one line from In.
type LinePrompter struct {
	Out io.Writer
	in  *bufio.Reader
}

// NewLinePrompter creates a LinePrompter reading answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{Out: out, in: bufio.NewReader(in)}
}

// Continue writes marker and waits for an answer. Only QuitSentinel stops
// paging; an empty line or end of input continues.
func (p *LinePrompter) Continue(marker string) (bool, error) {
	if _, err := fmt.Fprintf(p.Out, "\n%s ", marker); err != nil {
		return false, err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	if strings.TrimRight(line, "\r\n") == QuitSentinel {
		return false, nil
	}
	_, err = fmt.Fprintln(p.Out)
	return true, err
}

// OpenTTY opens the controlling terminal for prompts when stdin carries data.
// The caller closes the returned file.
func OpenTTY() (*os.File, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return f, nil
}
