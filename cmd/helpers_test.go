package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

const errExpected = "expected error"

// newTestCmd returns a command carrying the root flags, writing to a buffer.
func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool(flagNoColor, true, "")
	cmd.Flags().String(flagConfig, "", "")
	cmd.Flags().Bool(flagDebug, false, "")
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

// newRenderCmd returns a test command with the table flags parsed from args.
func newRenderCmd(t testing.TB, input string, args ...string) (*cobra.Command, *renderFlags, *bytes.Buffer) {
	t.Helper()
	cmd, buf := newTestCmd()
	f := &renderFlags{}
	addRenderFlags(cmd, f)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	cmd.SetIn(bytes.NewBufferString(input))
	return cmd, f, buf
}
