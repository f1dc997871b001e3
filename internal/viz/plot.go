package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/mat"
)

// PlotSeries renders a per-element value series as an ascii graph,
// indexed by element position in the chain.
func PlotSeries(caption string, data []float64) string {
	if len(data) == 0 {
		return ""
	}
	// asciigraph needs at least two points to draw a line.
	if len(data) == 1 {
		data = []float64{data[0], data[0]}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}

// FormatMatrix renders a dense matrix with aligned columns.
func FormatMatrix(m mat.Matrix) string {
	rows, cols := m.Dims()
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&b, "%8.3f", m.At(r, c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatVec renders a column vector as one labeled value per line.
func FormatVec(label string, v *mat.VecDense) string {
	var b strings.Builder
	for i := 0; i < v.Len(); i++ {
		fmt.Fprintf(&b, "%s%d: %10.6f\n", label, i, v.AtVec(i))
	}
	return b.String()
}
