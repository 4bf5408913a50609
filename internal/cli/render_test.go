package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/cellstack/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces trimmed", " svg , json ", []string{"svg", "json"}},
		{"empty parts dropped", "svg,,dot,", []string{"svg", "dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultBase(t *testing.T) {
	tests := []struct {
		label, viz, want string
	}{
		{"13S5P", pipeline.VizTypePack, "13s5p"},
		{"13S5P", pipeline.VizTypeSchematic, "13s5p-schematic"},
		{"1S1P", "", "1s1p"},
	}
	for _, tt := range tests {
		if got := defaultBase(tt.label, tt.viz); got != tt.want {
			t.Errorf("defaultBase(%q, %q) = %q, want %q", tt.label, tt.viz, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
	}{
		{
			name:    "default base",
			formats: []string{"svg", "json"},
			want:    map[string]string{"svg": "13s5p.svg", "json": "13s5p.json"},
		},
		{
			name:    "single format writes exactly to output",
			output:  "out/pack.image",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "out/pack.image"},
		},
		{
			name:    "multiple formats use output as base",
			output:  "out/pack",
			formats: []string{"svg", "png"},
			want:    map[string]string{"svg": "out/pack.svg", "png": "out/pack.png"},
		},
		{
			name:    "known extension stripped from base",
			output:  "out/pack.svg",
			formats: []string{"svg", "pdf"},
			want:    map[string]string{"svg": "out/pack.svg", "pdf": "out/pack.pdf"},
		},
		{
			name:    "unknown extension kept",
			output:  "out/pack.v2",
			formats: []string{"svg", "json"},
			want:    map[string]string{"svg": "out/pack.v2.svg", "json": "out/pack.v2.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, "13s5p", tt.formats)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths() = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("path[%s] = %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestNeedsSpinner(t *testing.T) {
	tests := []struct {
		name string
		viz  string
		fmts []string
		want bool
	}{
		{"svg only", pipeline.VizTypePack, []string{"svg", "json"}, false},
		{"png", pipeline.VizTypePack, []string{"svg", "png"}, true},
		{"pdf", pipeline.VizTypePack, []string{"pdf"}, true},
		{"schematic dot", pipeline.VizTypeSchematic, []string{"dot"}, false},
		{"schematic svg", pipeline.VizTypeSchematic, []string{"dot", "svg"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := pipeline.Options{VizType: tt.viz, Formats: tt.fmts}
			if got := needsSpinner(opts); got != tt.want {
				t.Errorf("needsSpinner() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderCommandWritesFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "pack")

	if _, err := executeCommand(t, "render", "-V", "24", "-C", "6", "-f", "svg,json", "-o", base, "--static", "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("svg output is not an SVG document")
	}
	if strings.Contains(string(svg), "@keyframes") {
		t.Error("static render contains animations")
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var doc struct {
		Configuration struct {
			Label    string `json:"label"`
			Series   int    `json:"series"`
			Parallel int    `json:"parallel"`
		} `json:"configuration"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if doc.Configuration.Label != "6S2P" || doc.Configuration.Series != 6 || doc.Configuration.Parallel != 2 {
		t.Errorf("configuration = %+v, want 6S2P", doc.Configuration)
	}
}

func TestRenderCommandSchematicDOT(t *testing.T) {
	out := filepath.Join(t.TempDir(), "wiring.dot")

	if _, err := executeCommand(t, "render", "-V", "11.1", "-C", "6", "--viz", "schematic", "-f", "dot", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	for _, want := range []string{"digraph", "S1", "S3"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("dot output missing %q", want)
		}
	}
}

func TestRenderCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"render", "-f", "gif", "--no-cache"}},
		{"zero capacity", []string{"render", "-C", "0", "-o", filepath.Join(t.TempDir(), "x.svg"), "--no-cache"}},
		{"dot for pack view", []string{"render", "-f", "dot", "--no-cache"}},
		{"bad style", []string{"render", "--style", "neon", "--no-cache"}},
		{"bad viz", []string{"render", "--viz", "isometric", "--no-cache"}},
		{"stdout with two formats", []string{"render", "-f", "svg,json", "-o", "-", "--no-cache"}},
		{"unknown cell", []string{"render", "-c", "lifepo4", "-o", filepath.Join(t.TempDir(), "x.svg"), "--no-cache"}},
		{"row mode on parallel pack", []string{"render", "-m", "row", "-o", filepath.Join(t.TempDir(), "x.svg"), "--no-cache"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := executeCommand(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
