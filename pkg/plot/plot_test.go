package plot

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/plotforge/plotforge/pkg/errors"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func checkPNG(t *testing.T, data []byte, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("output is not a PNG")
	}
}

func TestScatter(t *testing.T) {
	png, err := Scatter(ScatterOptions{
		X:      []float64{1, 2, 3, 4},
		Y:      []float64{2, 4, 1, 3},
		Labels: []string{"a", "b"},
	})
	checkPNG(t, png, err)
}

func TestScatter_SinglePoint(t *testing.T) {
	png, err := Scatter(ScatterOptions{X: []float64{1}, Y: []float64{1}})
	checkPNG(t, png, err)
}

func TestScatter_LabelsLongerThanData(t *testing.T) {
	// Out-of-bounds labels are dropped, never indexed.
	png, err := Scatter(ScatterOptions{
		X:      []float64{1, 2},
		Y:      []float64{1, 2},
		Labels: []string{"a", "b", "c", "d"},
	})
	checkPNG(t, png, err)
}

func TestScatter_PerPointColors(t *testing.T) {
	png, err := Scatter(ScatterOptions{
		X:      []float64{1, 2, 3},
		Y:      []float64{1, 2, 3},
		Colors: []string{"red", "green", "blue"},
	})
	checkPNG(t, png, err)
}

func TestScatter_LengthMismatch(t *testing.T) {
	_, err := Scatter(ScatterOptions{X: []float64{1, 2}, Y: []float64{1}})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("want INVALID_INPUT, got %v", err)
	}
}

func TestScatter_UnknownColor(t *testing.T) {
	_, err := Scatter(ScatterOptions{
		X:      []float64{1, 2},
		Y:      []float64{1, 2},
		Colors: []string{"not-a-color"},
	})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("want INVALID_INPUT, got %v", err)
	}
}

func TestLine(t *testing.T) {
	for _, style := range []string{"-", "--", ":", "-."} {
		png, err := Line(LineOptions{
			X:         []float64{1, 2, 3},
			Y:         []float64{1, 4, 9},
			LineStyle: style,
			Color:     "red",
		})
		checkPNG(t, png, err)
	}
}

func TestLine_UnknownStyle(t *testing.T) {
	_, err := Line(LineOptions{X: []float64{1, 2}, Y: []float64{1, 2}, LineStyle: "~"})
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("want INVALID_STYLE, got %v", err)
	}
}

func TestHistogram(t *testing.T) {
	png, err := Histogram(HistogramOptions{
		Data: []float64{1, 1, 2, 2, 2, 3, 5, 5, 8, 9},
		Bins: 5,
	})
	checkPNG(t, png, err)
}

func TestHistogram_XLabelRendered(t *testing.T) {
	base := HistogramOptions{
		Data: []float64{1, 2, 2, 3, 3, 3, 4},
		Bins: 4,
	}

	a := base
	a.XLabel = "Duration"
	b := base
	b.XLabel = "Mass"

	pngA, err := Histogram(a)
	checkPNG(t, pngA, err)
	pngB, err := Histogram(b)
	checkPNG(t, pngB, err)

	if bytes.Equal(pngA, pngB) {
		t.Error("x_label should change the rendered output")
	}
}

func TestHistogram_ConstantSamples(t *testing.T) {
	png, err := Histogram(HistogramOptions{Data: []float64{4, 4, 4}, Bins: 3})
	checkPNG(t, png, err)
}

func TestBin(t *testing.T) {
	counts, edges := bin([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 10 {
		t.Errorf("bin counts sum = %d, want 10", total)
	}
	if len(edges) != 6 {
		t.Errorf("edges = %d, want 6", len(edges))
	}
	if edges[0] != 0 || edges[5] != 9 {
		t.Errorf("edge range = [%v, %v], want [0, 9]", edges[0], edges[5])
	}
	// Max sample lands in the last bin, not out of range.
	if counts[4] != 2 {
		t.Errorf("last bin = %d, want 2", counts[4])
	}
}

func TestClassification(t *testing.T) {
	png, err := Classification(ClassificationOptions{
		X:          []float64{1, 2, 3},
		Y:          []float64{1, 2, 3},
		Categories: []string{"a", "b", "a"},
	})
	checkPNG(t, png, err)
}

func TestPartitionByCategory(t *testing.T) {
	parts := partitionByCategory(
		[]string{"a", "b", "a"},
		[]float64{1, 2, 3},
		[]float64{1, 2, 3},
	)

	want := []categorySeries{
		{Category: "a", X: []float64{1, 3}, Y: []float64{1, 3}},
		{Category: "b", X: []float64{2}, Y: []float64{2}},
	}
	if !reflect.DeepEqual(parts, want) {
		t.Errorf("partitionByCategory = %+v, want %+v", parts, want)
	}
}

func TestClassification_CategoryMismatch(t *testing.T) {
	_, err := Classification(ClassificationOptions{
		X:          []float64{1, 2},
		Y:          []float64{1, 2},
		Categories: []string{"a"},
	})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("want INVALID_INPUT, got %v", err)
	}
}

func TestSurface3D_Scatter(t *testing.T) {
	png, err := Surface3D(Surface3DOptions{
		X: []float64{0, 1, 2},
		Y: []float64{0, 1, 2},
		Z: []float64{0, 1, 4},
	})
	checkPNG(t, png, err)
}

func TestSurface3D_Surface(t *testing.T) {
	png, err := Surface3D(Surface3DOptions{
		X:        []float64{0, 0, 1, 1},
		Y:        []float64{0, 1, 0, 1},
		Z:        []float64{1, 2, 3, 4},
		PlotType: "surface",
	})
	checkPNG(t, png, err)
}

func TestSurface3D_WireframeFallback(t *testing.T) {
	// 3 points over a 2x2 candidate grid: must degrade to scatter, not fail.
	png, err := Surface3D(Surface3DOptions{
		X:        []float64{0, 0, 1},
		Y:        []float64{0, 1, 0},
		Z:        []float64{1, 2, 3},
		PlotType: "wireframe",
	})
	checkPNG(t, png, err)
}

func TestSurface3D_UnknownPlotType(t *testing.T) {
	_, err := Surface3D(Surface3DOptions{
		X:        []float64{0, 1},
		Y:        []float64{0, 1},
		Z:        []float64{0, 1},
		PlotType: "contour",
	})
	if !errors.Is(err, errors.ErrCodeInvalidPlotType) {
		t.Errorf("want INVALID_PLOT_TYPE, got %v", err)
	}
}

func TestHeatmap(t *testing.T) {
	png, err := Heatmap(HeatmapOptions{
		Data:    [][]float64{{1, 2, 3}, {4, 5, 6}},
		XLabels: []string{"c1", "c2", "c3"},
		YLabels: []string{"r1", "r2"},
	})
	checkPNG(t, png, err)
}

func TestHeatmap_Ragged(t *testing.T) {
	_, err := Heatmap(HeatmapOptions{Data: [][]float64{{1, 2}, {3}}})
	if !errors.Is(err, errors.ErrCodeInvalidMatrix) {
		t.Errorf("want INVALID_MATRIX, got %v", err)
	}
}

func TestHeatmap_UnknownColormap(t *testing.T) {
	_, err := Heatmap(HeatmapOptions{
		Data:     [][]float64{{1, 2}},
		Colormap: "sparkle",
	})
	if !errors.Is(err, errors.ErrCodeInvalidColormap) {
		t.Errorf("want INVALID_COLORMAP, got %v", err)
	}
}

func TestIdempotentRendering(t *testing.T) {
	opts := ScatterOptions{X: []float64{1, 2, 3}, Y: []float64{3, 1, 2}}

	first, err := Scatter(opts)
	checkPNG(t, first, err)
	second, err := Scatter(opts)
	checkPNG(t, second, err)
}

func TestMarkerDotWidth(t *testing.T) {
	if got := markerDotWidth(50); got < 3 || got > 4 {
		t.Errorf("markerDotWidth(50) = %v, want ~3.5", got)
	}
	// Tiny sizes clamp to a visible minimum.
	if got := markerDotWidth(1); got != 2 {
		t.Errorf("markerDotWidth(1) = %v, want 2", got)
	}
}
