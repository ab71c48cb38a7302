package columnize

import (
	"maps"
	"slices"
	"strings"

	"github.com/lugassawan/colz/internal/termcolor"
)

// Rule names with a fixed meaning.
const (
	RuleFail   = "fail"
	RuleOK     = "ok"
	RuleWarn   = "warn"
	RuleHeader = "header"
	RuleBold   = "bold"
)

// ColorRule paints values whose trimmed, lower-cased text is one of Words.
// A rule named after a column key applies to that column first; with no
// Words it paints every value in the column.
type ColorRule struct {
	Color termcolor.Color
	Words []string
}

func (r ColorRule) matches(word string) bool {
	return slices.Contains(r.Words, word)
}

// ColorRules maps a category name or column key to its rule.
type ColorRules map[string]ColorRule

// DefaultColorRules returns the built-in rules.
func DefaultColorRules() ColorRules {
	return ColorRules{
		RuleFail:   {Color: termcolor.BrightRed, Words: []string{"fail", "failed", "error", "false", "no"}},
		RuleOK:     {Color: termcolor.BrightGreen, Words: []string{"ok", "pass", "passed", "success", "true", "yes"}},
		RuleWarn:   {Color: termcolor.BrightYellow, Words: []string{"warn", "warning"}},
		RuleHeader: {Color: termcolor.BrightMagenta},
		RuleBold:   {Color: termcolor.Bold},
	}
}

// normalized returns r with its words trimmed and lower-cased.
func (r ColorRule) normalized() ColorRule {
	words := make([]string, len(r.Words))
	for i, w := range r.Words {
		words[i] = strings.ToLower(strings.TrimSpace(w))
	}
	return ColorRule{Color: r.Color, Words: words}
}

// MergeColorRules returns base with every rule in extra added or replaced.
func MergeColorRules(base, extra ColorRules) ColorRules {
	out := make(ColorRules, len(base)+len(extra))
	maps.Copy(out, base)
	for name, r := range extra {
		out[name] = r.normalized()
	}
	return out
}

// colorizer picks at most one color for each formatted cell.
type colorizer struct {
	painter *termcolor.Painter
	rules   ColorRules
	order   []string
}

func newColorizer(p *termcolor.Painter, rules ColorRules) *colorizer {
	normalized := make(ColorRules, len(rules))
	for name, r := range rules {
		normalized[name] = r.normalized()
	}
	return &colorizer{painter: p, rules: normalized, order: slices.Sorted(maps.Keys(rules))}
}

// cell paints text for the column keyed by key.
func (c *colorizer) cell(key, text string) string {
	if !c.painter.Enabled() {
		return text
	}
	word := strings.ToLower(strings.TrimSpace(text))
	if r, ok := c.rules[key]; ok && (len(r.Words) == 0 || r.matches(word)) {
		return c.painter.Paint(text, r.Color)
	}
	for _, name := range c.order {
		if r := c.rules[name]; r.matches(word) {
			return c.painter.Paint(text, r.Color)
		}
	}
	return text
}

// style paints text with the named rule, if present.
func (c *colorizer) style(name, text string) string {
	r, ok := c.rules[name]
	if !ok {
		return text
	}
	return c.painter.Paint(text, r.Color)
}
