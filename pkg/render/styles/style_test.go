package styles

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/cellstack/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "slate", false},
		{"slate", "slate", false},
		{"blueprint", "blueprint", false},
		{"handdrawn", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Lookup(tt.name)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidStyle) {
					t.Fatalf("Lookup(%q) error = %v, want INVALID_STYLE", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.name, err)
			}
			if s.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	if got := Names(); !slices.Equal(got, []string{"blueprint", "slate"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestAnimAttr(t *testing.T) {
	tests := []struct {
		name string
		anim Anim
		want []string
	}{
		{
			name: "zero value",
			anim: Anim{},
		},
		{
			name: "pop",
			anim: Anim{Name: FadeInPop, Duration: 0.5, Delay: 0.13, Origin: "center"},
			want: []string{"transform-origin:center", "animation:fade-in-pop 0.50s ease-out both", "animation-delay:0.13s"},
		},
		{
			name: "line",
			anim: Anim{Name: DrawLine, Duration: 0.5, Delay: 0.1, Dash: 32},
			want: []string{"stroke-dasharray:32.0;stroke-dashoffset:32.0", "animation:draw-line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.anim.Attr()
			if len(tt.want) == 0 && got != "" {
				t.Fatalf("Attr() = %q, want empty", got)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Attr() = %q, missing %q", got, w)
				}
			}
		})
	}
}

func TestStylesRenderElements(t *testing.T) {
	for _, s := range registry {
		t.Run(s.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			s.RenderDefs(&buf)
			s.RenderConnector(&buf, Connector{ID: "series-0", X: 1, Y: 2, W: 12, H: 16})
			s.RenderTerminal(&buf, Terminal{ID: "terminal-positive", Positive: true, CX: 36, CY: 20, R: 12, X1: 36, Y1: 52, X2: 36, Y2: 20})
			s.RenderTerminal(&buf, Terminal{ID: "terminal-negative", CX: 36, CY: 164, R: 12})
			s.RenderBusBar(&buf, BusBar{ID: "pos-bus-0", Positive: true, W: 10, H: 6})
			s.RenderCell(&buf, Cell{ID: "cell-0-0", W: 32, H: 64})
			s.RenderNotice(&buf, Notice{W: 200, H: 40, Title: "A & B", Body: "x < y"})

			out := buf.String()
			for _, want := range []string{
				`id="series-0"`, `id="terminal-positive"`, `id="terminal-negative-wire"`,
				`id="pos-bus-0"`, `id="cell-0-0"`, "A &amp; B", "x &lt; y", PlusSign, MinusSign,
			} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q", want)
				}
			}
			if strings.Contains(out, "animation") {
				t.Error("zero Anim should not emit animation styles")
			}
		})
	}
}
