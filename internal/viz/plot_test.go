package viz

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestPlotSeries(t *testing.T) {
	out := PlotSeries("displacement per mass", []float64{1, 2, 3, 2})
	if out == "" {
		t.Fatal("expected a plot")
	}
	if !strings.Contains(out, "displacement per mass") {
		t.Error("caption missing from plot")
	}
}

func TestPlotSeries_SinglePoint(t *testing.T) {
	if out := PlotSeries("one", []float64{5}); out == "" {
		t.Error("single point series should still plot")
	}
}

func TestPlotSeries_Empty(t *testing.T) {
	if out := PlotSeries("none", nil); out != "" {
		t.Errorf("empty series should produce no plot, got %q", out)
	}
}

func TestFormatMatrix(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{-1, 1, 0, -1})
	out := FormatMatrix(m)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "-1.000") || !strings.Contains(lines[0], "1.000") {
		t.Errorf("unexpected first row: %q", lines[0])
	}
}

func TestFormatVec(t *testing.T) {
	v := mat.NewVecDense(2, []float64{1.5, -2.25})
	out := FormatVec("u", v)

	if !strings.Contains(out, "u0:") || !strings.Contains(out, "u1:") {
		t.Errorf("labels missing: %q", out)
	}
	if !strings.Contains(out, "1.500000") || !strings.Contains(out, "-2.250000") {
		t.Errorf("values missing: %q", out)
	}
}
