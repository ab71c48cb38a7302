package cmd

import (
	"strings"

	"github.com/lugassawan/colz/internal/columnize"
	"github.com/lugassawan/colz/internal/input"
	"github.com/lugassawan/colz/internal/terminal"
	"github.com/spf13/cobra"
)

// completeFixed returns the candidates starting with toComplete.
func completeFixed(candidates []string, toComplete string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, toComplete) {
			out = append(out, c)
		}
	}
	return out
}

func formatNames() []string {
	var names []string
	for _, f := range input.Formats() {
		names = append(names, string(f))
	}
	return names
}

// completeJustify completes the last entry of a comma-separated list.
func completeJustify(toComplete string) []string {
	done, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		done, last = toComplete[:i+1], toComplete[i+1:]
	}
	var out []string
	for _, j := range completeFixed([]string{columnize.JustifyLeft.String(), columnize.JustifyRight.String()}, last) {
		out = append(out, done+j)
	}
	return out
}

func registerCompletions(cmd *cobra.Command) {
	fixed := func(name string, candidates ...string) {
		_ = cmd.RegisterFlagCompletionFunc(name, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return completeFixed(candidates, toComplete), cobra.ShellCompDirectiveNoFileComp
		})
	}
	fixed(flagFormat, formatNames()...)
	fixed(flagMode, string(columnize.ModeLine), string(columnize.ModeAll))
	fixed(flagColor, string(terminal.ColorAuto), string(terminal.ColorAlways), string(terminal.ColorNever))

	_ = cmd.RegisterFlagCompletionFunc(flagJustify, func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return completeJustify(toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	})
}
