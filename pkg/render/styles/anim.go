package styles

import (
	"fmt"
	"strings"
)

// Keyframe names shared by every style. The matching @keyframes rules are
// emitted once per document by the sink.
const (
	DrawLine  = "draw-line"
	GrowX     = "grow-x"
	GrowY     = "grow-y"
	FadeInPop = "fade-in-pop"
)

// Anim describes the entrance animation of one element. The zero value means
// no animation.
type Anim struct {
	Name     string
	Duration float64 // seconds
	Delay    float64 // seconds
	Origin   string  // CSS transform-origin, e.g. "left center"
	Dash     float64 // stroke length for DrawLine
}

// Enabled reports whether the element animates.
func (a Anim) Enabled() bool { return a.Name != "" }

// Attr returns a style attribute (with a leading space) for the animation,
// or "" when the element does not animate.
func (a Anim) Attr() string {
	if !a.Enabled() {
		return ""
	}
	var parts []string
	if a.Dash > 0 {
		parts = append(parts, fmt.Sprintf("stroke-dasharray:%.1f;stroke-dashoffset:%.1f", a.Dash, a.Dash))
	}
	if a.Origin != "" {
		parts = append(parts, "transform-origin:"+a.Origin)
	}
	parts = append(parts, fmt.Sprintf("animation:%s %.2fs ease-out both", a.Name, a.Duration))
	parts = append(parts, fmt.Sprintf("animation-delay:%.2fs", a.Delay))
	return fmt.Sprintf(` style="%s"`, strings.Join(parts, ";"))
}
