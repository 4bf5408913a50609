package schematic

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

func config(t *testing.T, v, c float64) sizing.Configuration {
	t.Helper()
	cell, err := cells.Default().Get("balanced")
	if err != nil {
		t.Fatal(err)
	}
	return sizing.Compute(sizing.Request{Voltage: v, Capacity: c, Cell: cell})
}

func TestToDOT_Chain(t *testing.T) {
	dot := ToDOT(config(t, 11.1, 6), Options{})

	for _, want := range []string{
		"digraph G",
		`"pack+" -> "S1"`,
		`"S1" -> "S2"`,
		`"S2" -> "S3"`,
		`"S3" -> "pack-"`,
		`label="S1 · 2P"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %s", want)
		}
	}
	if strings.Contains(dot, `"S4"`) {
		t.Error("ToDOT() emitted an extra group")
	}
}

func TestToDOT_SingleGroup(t *testing.T) {
	dot := ToDOT(config(t, 3.7, 3), Options{})
	if !strings.Contains(dot, `"pack+" -> "S1"`) || !strings.Contains(dot, `"S1" -> "pack-"`) {
		t.Errorf("single group not wired between terminals:\n%s", dot)
	}
}

func TestToDOT_LongChainElided(t *testing.T) {
	tests := []struct {
		name    string
		voltage float64
		last    string
		elided  bool
	}{
		{"at cap", 74, "S20", false},
		{"one over cap", 77.7, "S21", true},
		{"huge voltage", 1e9, "S270270270", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config(t, tt.voltage, 3)
			dot := ToDOT(cfg, Options{Detailed: true})

			if len(dot) > 8192 {
				t.Fatalf("ToDOT() produced %d bytes for %d groups", len(dot), cfg.Series)
			}
			if got := strings.Count(dot, " -> "); got > MaxGroups+2 {
				t.Errorf("ToDOT() emitted %d edges, want at most %d", got, MaxGroups+2)
			}
			if !strings.Contains(dot, `"pack+" -> "S1"`) || !strings.Contains(dot, fmt.Sprintf("%q -> \"pack-\"", tt.last)) {
				t.Errorf("chain not wired from pack+ through %s to pack-", tt.last)
			}
			if got := strings.Contains(dot, `"more"`); got != tt.elided {
				t.Errorf("elided node present = %v, want %v", got, tt.elided)
			}
			if tt.elided {
				hidden := fmt.Sprintf("… %d more", cfg.Series-MaxGroups)
				if !strings.Contains(dot, hidden) {
					t.Errorf("elided node missing label %q", hidden)
				}
				if strings.Contains(dot, `"S20"`) {
					t.Error("group S20 drawn in an elided chain")
				}
				if !strings.Contains(dot, `"S19" -> "more"`) {
					t.Error("elided node not chained after S19")
				}
			}
		})
	}
}

func TestFmtLabel_Detailed(t *testing.T) {
	cfg := config(t, 11.1, 6)
	label := fmtLabel(cfg, 0, true)

	if !strings.HasPrefix(label, "S1 · 2P\n") {
		t.Errorf("fmtLabel() detailed should start with group: %q", label)
	}
	if !strings.Contains(label, "tap 11.1 V") {
		t.Errorf("fmtLabel() first group should tap full pack voltage: %q", label)
	}
	if !strings.Contains(fmtLabel(cfg, 2, true), "tap 3.7 V") {
		t.Error("fmtLabel() last group should tap one cell voltage")
	}
	if !strings.Contains(label, "balanced") {
		t.Errorf("fmtLabel() missing cell id: %q", label)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(config(t, 48, 15), Options{Detailed: true}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("root element not normalized: %.200s", s)
	}
	if !strings.Contains(s, "S13") {
		t.Error("rendered SVG missing last group")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s", got)
	}

	if got := normalizeViewBox([]byte("<svg/>")); string(got) != "<svg/>" {
		t.Errorf("no viewBox should pass through, got %s", got)
	}
}
