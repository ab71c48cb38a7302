package termcolor

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Color represents an ANSI color/style code.
type Color string

const (
	Bold          Color = "\033[1m"
	Red           Color = "\033[31m"
	Green         Color = "\033[32m"
	Yellow        Color = "\033[33m"
	Blue          Color = "\033[34m"
	Magenta       Color = "\033[35m"
	Cyan          Color = "\033[36m"
	Gray          Color = "\033[90m"
	BrightRed     Color = "\033[91m"
	BrightGreen   Color = "\033[92m"
	BrightYellow  Color = "\033[93m"
	BrightMagenta Color = "\033[95m"
	Reset         Color = "\033[0m"
)

var names = map[string]Color{
	"bold":           Bold,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"gray":           Gray,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-magenta": BrightMagenta,
}

// ParseColor resolves a color name such as "bright-red" to its code.
func ParseColor(name string) (Color, error) {
	c, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown color %q; valid colors: %s", name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Name returns the configured name of c, or "" for codes outside the palette.
func (c Color) Name() string {
	for n, code := range names {
		if code == c {
			return n
		}
	}
	return ""
}

// Names lists the known color names in sorted order.
func Names() []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Painter applies ANSI colors to strings, respecting NO_COLOR and --no-color.
type Painter struct {
	disabled bool
}

// NewPainter creates a Painter. Colors are disabled if forceDisable is true
// or the NO_COLOR environment variable is non-empty (per no-color.org).
func NewPainter(forceDisable bool) *Painter {
	return &Painter{disabled: forceDisable || os.Getenv("NO_COLOR") != ""}
}

// Enabled reports whether Paint emits escape codes.
func (p *Painter) Enabled() bool {
	return !p.disabled
}

// Paint wraps s with the given ANSI color codes. Returns s unmodified if
// colors are disabled or no colors are provided.
func (p *Painter) Paint(s string, colors ...Color) string {
	if p.disabled || len(colors) == 0 {
		return s
	}
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(string(c))
	}
	b.WriteString(s)
	b.WriteString(string(Reset))
	return b.String()
}
