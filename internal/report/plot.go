package report

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/twucrit/internal/analysis"
)

// Plot draws ys against the evenly spaced xs of a sweep.
func Plot(xs, ys []float64, p analysis.Property, width, height int) string {
	if len(ys) == 0 {
		return ErrorText.Render("no points to plot")
	}

	caption := p.Label
	if p.Unit != "" {
		caption += " (" + p.Unit + ")"
	}
	caption += fmt.Sprintf(" for x in [%g, %g]", xs[0], xs[len(xs)-1])

	return asciigraph.Plot(ys,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}
