// Package spinner shows how many rows have been read while input is
// buffered before the table is printed.
package spinner

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/lugassawan/colz/internal/terminal"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const interval = 80 * time.Millisecond

// Options configures spinner behavior.
type Options struct {
	Writer   io.Writer
	Label    string // shown before the row count
	Disabled bool
}

// Spinner counts rows and, on a terminal, animates the count on one line.
// Off a terminal it only counts, so piped stderr stays clean.
type Spinner struct {
	w        io.Writer
	label    string
	animated bool

	mu      sync.Mutex
	running bool
	count   int
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a Spinner writing to opts.Writer, or stderr when unset.
func New(opts Options) *Spinner {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	return &Spinner{
		w:        w,
		label:    opts.Label,
		animated: !opts.Disabled && isTTY(w),
	}
}

// Start begins the animation. Calling it on a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	if !s.animated {
		return
	}

	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	go s.animate()
}

// Tick records one more row.
func (s *Spinner) Tick() {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()
}

// Count returns the rows recorded so far.
func (s *Spinner) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Stop clears the spinner line and stops the animation.
// Safe to call multiple times and with defer.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false

	if !s.animated {
		s.mu.Unlock()
		return
	}

	close(s.stopCh)
	s.mu.Unlock()

	<-s.doneCh
}

func (s *Spinner) animate() {
	defer close(s.doneCh)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	i := 0
	for {
		fmt.Fprintf(s.w, "\r%s %s: %d", frames[i%len(frames)], s.label, s.Count())

		select {
		case <-s.stopCh:
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
			i++
		}
	}
}

// isTTY reports whether w is a terminal.
func isTTY(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(f.Fd())
}
