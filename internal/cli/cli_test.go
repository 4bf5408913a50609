package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cellstack/pkg/pipeline"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := []string{"design", "render", "cells", "tui", "serve", "sweep", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"config", "no-cache"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s missing", flag)
		}
	}
}

func TestOptionsMergesFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)
	parse := func(args ...string) pipeline.Options {
		t.Helper()
		var f packFlags
		cmd := &cobra.Command{Use: "test"}
		c.addPackFlags(cmd, &f)
		if err := cmd.ParseFlags(args); err != nil {
			t.Fatalf("ParseFlags(%v): %v", args, err)
		}
		return c.options(cmd, f)
	}

	opts := parse()
	if opts.Voltage != sizing.DefaultVoltage || opts.Capacity != sizing.DefaultCapacity {
		t.Errorf("defaults = %v V %v Ah, want %v V %v Ah", opts.Voltage, opts.Capacity, sizing.DefaultVoltage, sizing.DefaultCapacity)
	}
	if opts.Cell != c.Settings.Cell || opts.Style != c.Settings.Style {
		t.Errorf("cell/style not taken from settings: %q %q", opts.Cell, opts.Style)
	}

	opts = parse("-V", "24", "--cell", "high_power", "-m", "grid")
	if opts.Voltage != 24 {
		t.Errorf("voltage = %v, want 24", opts.Voltage)
	}
	if opts.Capacity != sizing.DefaultCapacity {
		t.Errorf("capacity = %v, want settings value", opts.Capacity)
	}
	if opts.Cell != "high_power" || opts.Mode != "grid" {
		t.Errorf("flags not applied: cell %q mode %q", opts.Cell, opts.Mode)
	}

	opts = parse("-V", "0", "--capacity=0")
	if opts.Voltage != 0 || opts.Capacity != 0 {
		t.Errorf("explicit zero replaced by settings: %v V %v Ah", opts.Voltage, opts.Capacity)
	}
}

func TestConfigFileCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := `[defaults]
cell = "p42a"

[[cells]]
id = "p42a"
name = "Molicel P42A (4.2Ah)"
voltage = 3.6
capacity = 4.2
`
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "cells", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"p42a", "Molicel P42A", "balanced"} {
		if !strings.Contains(out, want) {
			t.Errorf("cells output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[defaults]\nvolts = 12.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := executeCommand(t, "cells", "--config", path); err == nil {
		t.Error("expected error for unknown config key")
	}
}

func TestDesignCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"defaults", []string{"design", "--no-cache"}, false},
		{"preview", []string{"design", "-V", "11.1", "-C", "3", "--preview", "--no-cache"}, false},
		{"clamped", []string{"design", "-V", "500", "-C", "500", "--clamp", "--no-cache"}, false},
		{"row on parallel pack", []string{"design", "-m", "row", "--no-cache"}, true},
		{"unknown cell", []string{"design", "-c", "lifepo4", "--no-cache"}, true},
		{"bad mode", []string{"design", "-m", "spiral", "--no-cache"}, true},
		{"negative voltage", []string{"design", "-V", "-5", "--no-cache"}, true},
		{"zero voltage", []string{"design", "-V", "0", "--no-cache"}, true},
		{"zero capacity", []string{"design", "-C", "0", "--no-cache"}, true},
		{"positional args", []string{"design", "extra"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("design error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSweepCommandTable(t *testing.T) {
	out, err := executeCommand(t, "sweep", "--min", "3.7", "--max", "11.1", "--step", "3.7")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Series", "1S", "2S", "3S", "11.1 V"} {
		if !strings.Contains(out, want) {
			t.Errorf("sweep table missing %q:\n%s", want, out)
		}
	}
}

func TestSweepCommandPlot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sweep.svg")
	if _, err := executeCommand(t, "sweep", "--min", "10", "--max", "60", "-o", out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("sweep plot is not an SVG document")
	}

	if _, err := executeCommand(t, "sweep", "-o", filepath.Join(t.TempDir(), "sweep.gif")); err == nil {
		t.Error("expected error for unsupported chart format")
	}
}
