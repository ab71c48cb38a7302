package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lugassawan/colz/internal/config"
)

func TestInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", config.FileName)
	cmd, buf := newTestCmd()
	cmd.Flags().Bool(flagForce, false, "")
	if err := cmd.Flags().Set(flagConfig, path); err != nil {
		t.Fatal(err)
	}

	if err := initCmd.RunE(cmd, nil); err != nil {
		t.Fatalf("initCmd.RunE: %v", err)
	}
	if !strings.Contains(buf.String(), "Wrote config to "+path) {
		t.Errorf("output = %q", buf.String())
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Errorf("written config mismatch (-want +got):\n%s", diff)
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("indent = 4\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cmd, _ := newTestCmd()
	cmd.Flags().Bool(flagForce, false, "")
	_ = cmd.Flags().Set(flagConfig, path)

	err := initCmd.RunE(cmd, nil)
	if err == nil || !strings.Contains(err.Error(), "--force") {
		t.Fatalf("error = %v, want hint about --force", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "indent = 4\n" {
		t.Errorf("existing config changed to %q", data)
	}
}

func TestInitForceOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("indent = 4\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cmd, _ := newTestCmd()
	cmd.Flags().Bool(flagForce, false, "")
	_ = cmd.Flags().Set(flagConfig, path)
	_ = cmd.Flags().Set(flagForce, "true")

	if err := initCmd.RunE(cmd, nil); err != nil {
		t.Fatalf("initCmd.RunE: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Indent != 0 {
		t.Errorf("Indent = %d, want 0 after overwrite", cfg.Indent)
	}
}
