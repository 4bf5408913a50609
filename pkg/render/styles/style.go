package styles

import (
	"bytes"
	"slices"
	"strings"

	"github.com/matzehuels/cellstack/pkg/errors"
)

// Style defines the visual appearance of a pack diagram.
type Style interface {
	// Name is the identifier used on the command line and in the API.
	Name() string
	// Background returns the canvas fill colour, or "" for transparent.
	Background() string
	// RenderDefs writes SVG <defs> content (patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderConnector writes a series connector strip.
	RenderConnector(buf *bytes.Buffer, c Connector)
	// RenderTerminal writes a terminal wire and its badge.
	RenderTerminal(buf *bytes.Buffer, t Terminal)
	// RenderBusBar writes a parallel bus bar.
	RenderBusBar(buf *bytes.Buffer, b BusBar)
	// RenderCell writes a single cell.
	RenderCell(buf *bytes.Buffer, c Cell)
	// RenderNotice writes the advisory banner.
	RenderNotice(buf *bytes.Buffer, n Notice)
}

// Cell contains all data needed to render a single cell.
type Cell struct {
	ID         string
	X, Y, W, H float64
	Anim       Anim
}

// BusBar contains positioning data for a bus bar.
type BusBar struct {
	ID         string
	Positive   bool
	X, Y, W, H float64
	Anim       Anim
}

// Connector contains positioning data for a series connector.
type Connector struct {
	ID         string
	X, Y, W, H float64
	Anim       Anim
}

// Terminal contains the badge position and lead wire of a pack terminal.
type Terminal struct {
	ID             string
	Positive       bool
	CX, CY, R      float64
	X1, Y1, X2, Y2 float64 // Wire from the pack to the badge centre
	WireAnim       Anim
	BadgeAnim      Anim
}

// Notice is the advisory banner drawn above a clamped pack.
type Notice struct {
	X, Y, W, H float64
	Title      string
	Body       string
}

// DefaultName is the style used when none is requested.
const DefaultName = "slate"

var registry = []Style{Slate{}, Blueprint{}}

// Names returns the registered style names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, s := range registry {
		names = append(names, s.Name())
	}
	slices.Sort(names)
	return names
}

// Lookup returns the style registered under name. The empty string selects
// the default style.
func Lookup(name string) (Style, error) {
	if name == "" {
		name = DefaultName
	}
	for _, s := range registry {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: %s)", name, strings.Join(Names(), ", "))
}
