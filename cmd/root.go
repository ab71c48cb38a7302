package cmd

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/lugassawan/colz/internal/config"
	"github.com/lugassawan/colz/internal/logging"
	"github.com/spf13/cobra"
)

const (
	flagNoColor = "no-color"
	flagConfig  = "config"
	flagDebug   = "debug"
)

var rootFlags renderFlags

var rootCmd = &cobra.Command{
	Use:   "colz [file]",
	Short: "Stream rows as aligned terminal columns",
	Long: `Colz prints CSV, TSV, JSON Lines or YAML rows as aligned, optionally colored
columns while they arrive. When a later value is wider than its column, the rows
printed so far are printed again under the wider layout. Long output pauses at
every screen of rows; answer q to stop.

Reads from stdin when no file (or "-") is given.`,
	Example: `  kubectl get pods -o json | jq -c '.items[] | {name: .metadata.name, phase: .status.phase}' | colz -f jsonl
  colz --headers host,status,ms results.tsv
  colz -m all --justify left,num report.csv`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool(flagDebug)
		logging.Setup(debug, cmd.ErrOrStderr())

		// Skip config for Cobra internals (completion, __complete)
		if cmd.Name() == "completion" || cmd.Name() == "__complete" {
			return nil
		}

		// Skip config if any command in the chain is annotated
		for c := cmd; c != nil; c = c.Parent() {
			if c.Annotations != nil && c.Annotations["skipConfig"] == "true" {
				return nil
			}
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args, &rootFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool(flagNoColor, false, "disable colored output")
	rootCmd.PersistentFlags().String(flagConfig, "", "config file (default is $XDG_CONFIG_HOME/colz/config.toml)")
	rootCmd.PersistentFlags().Bool(flagDebug, false, "log reflow and page-break events to stderr")
	addRenderFlags(rootCmd, &rootFlags)
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads --config, or the per-user file when present.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := stringFlag(cmd, flagConfig)
	if path != "" {
		return config.Load(path)
	}

	path, err := config.DefaultPath()
	if err != nil {
		slog.Debug("no user config dir", "error", err)
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// configFromContext returns the loaded config, or the defaults when the
// command ran without the root pre-run hook.
func configFromContext(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg := config.FromContext(ctx); cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// stringFlag returns the value of a local or inherited string flag, or ""
// when the flag is not registered.
func stringFlag(cmd *cobra.Command, name string) string {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.InheritedFlags().Lookup(name)
	}
	if f == nil {
		return ""
	}
	return f.Value.String()
}
