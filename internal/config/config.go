package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/lugassawan/colz/internal/columnize"
	"github.com/lugassawan/colz/internal/termcolor"
	"github.com/lugassawan/colz/internal/terminal"
	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the config file name used by colz.
const FileName = "config.toml"

type Config struct {
	Delimiter     string   `toml:"delimiter"`
	BasePadding   int      `toml:"base_padding"`
	Indent        int      `toml:"indent"`
	Mode          string   `toml:"mode"`
	Placeholder   string   `toml:"placeholder"`
	Color         string   `toml:"color"`
	Paginate      bool     `toml:"paginate"`
	PaginateBreak bool     `toml:"paginate_break"`
	PrintHeader   bool     `toml:"print_header"`
	Justify       []string `toml:"justify,omitempty"`

	Colors map[string]ColorRule `toml:"colors,omitempty"`
}

// ColorRule adds or replaces a color rule. The name is a category or a
// column key.
type ColorRule struct {
	Color string   `toml:"color"`
	Words []string `toml:"words,omitempty"`
}

// Validation error messages for config fields.
const (
	ErrMsgNegativePadding = "base_padding must be >= 0"
	ErrMsgNegativeIndent  = "indent must be >= 0"
)

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.BasePadding < 0 {
		errs = append(errs, errors.New(ErrMsgNegativePadding))
	}
	if c.Indent < 0 {
		errs = append(errs, errors.New(ErrMsgNegativeIndent))
	}
	if _, err := columnize.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if _, err := terminal.ParseColorMode(c.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err := columnize.ParseJustifications(c.Justify); err != nil {
		errs = append(errs, err)
	}
	for _, name := range c.colorNames() {
		if _, err := termcolor.ParseColor(c.Colors[name].Color); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) colorNames() []string {
	names := make([]string, 0, len(c.Colors))
	for n := range c.Colors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ColorRules converts the configured rules. Call Validate first.
func (c *Config) ColorRules() columnize.ColorRules {
	rules := make(columnize.ColorRules, len(c.Colors))
	for name, r := range c.Colors {
		color, _ := termcolor.ParseColor(r.Color)
		rules[name] = columnize.ColorRule{Color: color, Words: r.Words}
	}
	return rules
}

// ColumnizeOptions maps the config onto table options. Output, terminal
// height, prompting and colorizing are left for the caller to decide.
func (c *Config) ColumnizeOptions() (columnize.Options, error) {
	if err := c.Validate(); err != nil {
		return columnize.Options{}, err
	}
	mode, _ := columnize.ParseMode(c.Mode)
	justify, _ := columnize.ParseJustifications(c.Justify)

	opts := columnize.DefaultOptions()
	opts.Delimiter = c.Delimiter
	opts.BasePadding = c.BasePadding
	opts.Indent = c.Indent
	opts.Mode = mode
	opts.Placeholder = c.Placeholder
	opts.Justifications = justify
	opts.Paginate = c.Paginate
	opts.PaginateBreak = c.PaginateBreak
	opts.PrintHeader = c.PrintHeader
	opts.ColorRules = columnize.MergeColorRules(columnize.DefaultColorRules(), c.ColorRules())
	return opts, nil
}

type ctxKey struct{}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Delimiter:     "  ",
		BasePadding:   6,
		Mode:          string(columnize.ModeLine),
		Placeholder:   "-",
		Color:         string(terminal.ColorAuto),
		Paginate:      true,
		PaginateBreak: true,
		PrintHeader:   true,
	}
}

// DefaultPath returns the per-user config location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "colz", FileName), nil
}

// Load reads path over the defaults. A missing file yields an error
// wrapping fs.ErrNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w (run 'colz init' to create one)", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(ctxKey{}).(*Config)
	return cfg
}
