package cmd

import (
	"slices"
	"strings"

	"github.com/lugassawan/colz/internal/columnize"
	"github.com/lugassawan/colz/internal/terminal"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(colorsCmd)
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the effective color rules",
	Long:  "Prints the built-in color rules merged with the [colors] section of the config file. A rule named after a column applies to that column before any category.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *configFromContext(cmd)
		if noColor, _ := cmd.Flags().GetBool(flagNoColor); noColor {
			cfg.Color = string(terminal.ColorNever)
		}

		opts, err := cfg.ColumnizeOptions()
		if err != nil {
			return err
		}
		colorMode, _ := terminal.ParseColorMode(cfg.Color)
		out := cmd.OutOrStdout()
		opts.Out = out
		opts.Colorize = terminal.ColorEnabled(out, colorMode)
		opts.Mode = columnize.ModeAll
		opts.Paginate = false
		opts.PrintHeader = true
		opts.Justifications = nil

		rules := opts.ColorRules
		tbl, err := columnize.New([]string{"rule", "color", "words"}, opts)
		if err != nil {
			return err
		}
		return tbl.Update(ruleRows(rules)...)
	},
}

// ruleRows returns one row per rule in name order. Column rules without
// words are listed as "*".
func ruleRows(rules columnize.ColorRules) []columnize.Row {
	names := make([]string, 0, len(rules))
	for n := range rules {
		names = append(names, n)
	}
	slices.Sort(names)

	rows := make([]columnize.Row, 0, len(names))
	for _, n := range names {
		r := rules[n]
		words := "*"
		if len(r.Words) > 0 {
			words = strings.Join(r.Words, ",")
		}
		rows = append(rows, columnize.Positional(n, r.Color.Name(), words))
	}
	return rows
}
