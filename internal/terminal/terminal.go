// Package terminal answers questions about the controlling terminal: its
// height, whether a stream is a TTY, whether colors should be used, and
// how to ask the operator to continue at a page break.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// FallbackHeight is used when the terminal size cannot be queried.
const FallbackHeight = 30

// Height returns the number of rows of the terminal behind fd.
func Height(fd uintptr) int {
	_, h, err := term.GetSize(int(fd))
	if err != nil || h <= 0 {
		return FallbackHeight
	}
	return h
}

// IsTerminal reports whether fd is a terminal.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// ColorMode determines when to use colored output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// ColorEnabled decides whether output written to w should carry ANSI
// colors. NO_COLOR always wins; auto asks termenv for the color profile.
func ColorEnabled(w io.Writer, mode ColorMode) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return termenv.NewOutput(w).Profile != termenv.Ascii
}
