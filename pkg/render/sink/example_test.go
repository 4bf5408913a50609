package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/render/sink"
	"github.com/matzehuels/cellstack/pkg/render/styles"
)

func ExampleRenderSVG() {
	sc, err := layout.Compute(4, 1, layout.ModeAuto)
	if err != nil {
		panic(err)
	}
	svg := string(sink.RenderSVG(sc, sink.WithStyle(styles.Blueprint{}), sink.WithStatic()))
	fmt.Println(strings.HasPrefix(svg, "<svg"), strings.Count(svg, `class="cell"`))
	// Output: true 4
}
