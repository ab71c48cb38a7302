package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lugassawan/colz/internal/columnize"
	"github.com/lugassawan/colz/internal/config"
	"github.com/lugassawan/colz/internal/input"
)

const statusCSV = "name,status\ndb,ok\napi-gateway,failed\n"

func TestRunRenderCSVReflows(t *testing.T) {
	cmd, f, buf := newRenderCmd(t, statusCSV)

	if err := runRender(cmd, nil, f); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, columnize.ReflowMarker) {
		t.Errorf("output missing reflow marker:\n%s", out)
	}
	last := out[strings.LastIndex(out, columnize.ReflowMarker):]
	for _, want := range []string{"db  ", "api-gateway  failed"} {
		if !strings.Contains(last, want) {
			t.Errorf("reflowed output missing %q:\n%s", want, last)
		}
	}
}

func TestRunRenderAllMode(t *testing.T) {
	cmd, f, buf := newRenderCmd(t, statusCSV, "--mode", "all", "--padding", "0")

	if err := runRender(cmd, nil, f); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	want := []string{
		"name         status",
		"-------------------",
		"db           ok    ",
		"api-gateway  failed",
	}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRenderSuppliedHeaders(t *testing.T) {
	cmd, f, buf := newRenderCmd(t, "a\t1\nb\t22\n", "--format", "tsv", "--headers", "key,n", "-m", "all", "-p", "0", "--no-header")

	if err := runRender(cmd, nil, f); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	want := "a     1\nb    22\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunRenderJustifyAndIndent(t *testing.T) {
	cmd, f, buf := newRenderCmd(t, "k,n\nx,5\n", "-m", "all", "-p", "0", "--no-header", "--justify", "right,left", "--indent", "2", "--delimiter", "|")

	if err := runRender(cmd, nil, f); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	if got, want := buf.String(), "  x|5\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunRenderJSONLinesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.jsonl")
	data := `{"host":"web","ms":12}` + "\n" + `{"host":"db"}` + "\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cmd, f, buf := newRenderCmd(t, "", "-m", "all", "-p", "0", "--placeholder", "?")
	if err := runRender(cmd, []string{path}, f); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"host  ms", "web   12", "db    ?"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunRenderHeightPaginates(t *testing.T) {
	rows := "n\n1\n2\n3\n4\n5\n"
	cmd, f, buf := newRenderCmd(t, rows, "--height", "9")

	if err := runRender(cmd, nil, f); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	headers := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.TrimSpace(line) == "n" {
			headers++
		}
	}
	if headers != 2 {
		t.Errorf("header printed %d times, want 2:\n%s", headers, buf.String())
	}
}

func TestRunRenderNoPaginateWithoutTerminal(t *testing.T) {
	var rows strings.Builder
	rows.WriteString("n\n")
	for range 40 {
		rows.WriteString("1\n")
	}
	cmd, f, buf := newRenderCmd(t, rows.String())

	if err := runRender(cmd, nil, f); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if got := strings.Count(buf.String(), "------"); got != 1 {
		t.Errorf("separator printed %d times, want 1", got)
	}
}

func TestRunRenderConfigFromContext(t *testing.T) {
	cmd, f, buf := newRenderCmd(t, "k,v\na,b\n")
	cfg := config.Default()
	cfg.Delimiter = " | "
	cfg.BasePadding = 0
	cfg.PrintHeader = false
	cmd.SetContext(config.WithConfig(t.Context(), cfg))

	if err := runRender(cmd, nil, f); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if got, want := buf.String(), "a | b\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunRenderFlagsOverrideConfig(t *testing.T) {
	cmd, f, buf := newRenderCmd(t, "k,v\na,b\n", "--delimiter", ":")
	cfg := config.Default()
	cfg.Delimiter = " | "
	cfg.BasePadding = 0
	cfg.PrintHeader = false
	cmd.SetContext(config.WithConfig(t.Context(), cfg))

	if err := runRender(cmd, nil, f); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	if got, want := buf.String(), "a:b\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
		files []string
		want  error
	}{
		{name: "bad format", input: "a\n", args: []string{"--format", "xml"}},
		{name: "bad mode", input: "a\n", args: []string{"--mode", "page"}},
		{name: "bad color", input: "a\n", args: []string{"--no-color=false", "--color", "sometimes"}},
		{name: "missing file", files: []string{"/nonexistent/rows.csv"}, want: os.ErrNotExist},
		{name: "empty input", input: "", want: input.ErrNoHeaders},
		{name: "ragged row", input: "a,b\n1\n", want: columnize.ErrRowArity},
		{name: "justify count", input: "a,b\n1,2\n", args: []string{"--justify", "left"}},
		{name: "negative padding", input: "a\n1\n", args: []string{"--padding", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, f, _ := newRenderCmd(t, tt.input, tt.args...)
			err := runRender(cmd, tt.files, f)
			if err == nil {
				t.Fatal(errExpected)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestJustifyFlagRejectsUnknown(t *testing.T) {
	cmd, _ := newTestCmd()
	addRenderFlags(cmd, &renderFlags{})
	if err := cmd.ParseFlags([]string{"--justify", "left,center"}); err == nil {
		t.Fatal(errExpected)
	}
}

func TestJustifyValue(t *testing.T) {
	var v justifyValue
	if err := v.Set("num,str"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, want := v.String(), "right,left"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"right", "left"}, v.names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if (&justifyValue{}).names() != nil {
		t.Error("empty value should have no names")
	}
}
