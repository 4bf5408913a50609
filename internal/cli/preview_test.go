package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/cellstack/pkg/layout"
)

func TestRenderPreview(t *testing.T) {
	tests := []struct {
		name string
		s, p int
		mode layout.Mode
		want []string
	}{
		{
			name: "single cell",
			s:    1, p: 1, mode: layout.ModeAuto,
			want: []string{
				"  +",
				"  █",
				"  −",
			},
		},
		{
			name: "2S2P grid",
			s:    2, p: 2, mode: layout.ModeAuto,
			want: []string{
				"  +",
				"  █═█ ┐",
				"  █═█ ┘",
				"    −",
			},
		},
		{
			name: "3S1P forced grid",
			s:    3, p: 1, mode: layout.ModeGrid,
			want: []string{
				"  +",
				"  █ ┐",
				"┌ █ ┘",
				"└ █",
				"  −",
			},
		},
		{
			name: "3S1P row",
			s:    3, p: 1, mode: layout.ModeAuto,
			want: []string{
				"+   −",
				"  ┌─┐",
				"█ █ █",
				"└─┘",
			},
		},
		{
			name: "4S1P row exits bottom",
			s:    4, p: 1, mode: layout.ModeRow,
			want: []string{
				"+",
				"  ┌─┐",
				"█ █ █ █",
				"└─┘ └─┘",
				"      −",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := layout.Compute(tt.s, tt.p, tt.mode)
			if err != nil {
				t.Fatal(err)
			}
			got := renderPreview(sc)
			want := strings.Join(tt.want, "\n")
			if got != want {
				t.Errorf("preview mismatch\ngot:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}
