package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// PlotCrossSection plots cross-sections tabulated on an energy grid.
func PlotCrossSection(energies, xs []float64, caption string) string {
	if len(xs) == 0 {
		return ""
	}
	return asciigraph.Plot(xs,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s  [%.3g eV .. %.3g eV, log grid]", caption, energies[0], energies[len(energies)-1])),
	)
}
