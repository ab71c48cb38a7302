package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lugassawan/colz/internal/config"
	"github.com/spf13/cobra"
)

const flagForce = "force"

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool(flagForce, false, "overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a default config file",
	Long:        "Writes the built-in settings to --config, or to the per-user config file, so they can be edited.",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{"skipConfig": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := stringFlag(cmd, flagConfig)
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}

		force, _ := cmd.Flags().GetBool(flagForce)
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check config: %w", err)
		}

		if err := config.Save(path, config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
		return nil
	},
}
