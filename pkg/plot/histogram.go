package plot

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotforge/plotforge/pkg/errors"
)

var (
	histFill = drawing.Color{R: 135, G: 206, B: 235, A: 180} // skyblue
	histEdge = drawing.Color{R: 0, G: 0, B: 0, A: 255}
)

// Histogram renders a frequency histogram as PNG bytes. Samples are bucketed
// into equal-width bins across the data range.
func Histogram(opts HistogramOptions) ([]byte, error) {
	opts.setDefaults()
	if err := errors.ValidateSamples(opts.Data, opts.Bins); err != nil {
		return nil, err
	}

	counts, edges := bin(opts.Data, opts.Bins)

	bars := make([]chart.Value, len(counts))
	for i, c := range counts {
		center := (edges[i] + edges[i+1]) / 2
		bars[i] = chart.Value{
			Value: float64(c),
			Label: fmt.Sprintf("%.3g", center),
			Style: chart.Style{
				FillColor:   histFill,
				StrokeColor: histEdge,
				StrokeWidth: 0.5,
			},
		}
	}

	ch := chart.BarChart{
		Title:    opts.Title,
		Width:    widthWide,
		Height:   heightShort,
		BarWidth: barWidth(len(bars)),
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 20, Right: 20, Bottom: 40},
		},
		YAxis: chart.YAxis{
			Name:           opts.YLabel,
			GridMajorStyle: gridStyle,
		},
		Bars: bars,
	}
	ch.Elements = []chart.Renderable{xAxisLabel(opts.XLabel)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render histogram")
	}
	return buf.Bytes(), nil
}

// xAxisLabel draws name centered below the plot area. BarChart carries no
// x-axis name field, so the label is attached as an extra renderable the same
// way Classification attaches its legend.
func xAxisLabel(name string) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		style := chart.Style{
			FontSize:  10,
			FontColor: chart.DefaultTextColor,
		}.InheritFrom(defaults)
		style.WriteTextOptionsToRenderer(r)

		tb := r.MeasureText(name)
		x := canvasBox.Left + (canvasBox.Width()-tb.Width())/2
		r.Text(name, x, canvasBox.Bottom+36)
	}
}

// bin buckets samples into n equal-width bins and returns per-bin counts
// together with the n+1 bin edges. A degenerate range (all samples equal)
// collapses to a single unit-width bin around the value.
func bin(data []float64, n int) (counts []int, edges []float64) {
	min, max := minMax(data)
	if min == max {
		min, max = min-0.5, max+0.5
	}
	width := (max - min) / float64(n)

	counts = make([]int, n)
	for _, v := range data {
		i := int((v - min) / width)
		if i >= n { // max falls into the last bin
			i = n - 1
		}
		counts[i]++
	}

	edges = make([]float64, n+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	return counts, edges
}

// barWidth sizes bars so the full bin count fits the canvas.
func barWidth(n int) int {
	w := (widthWide - 100) / n
	if w < 2 {
		w = 2
	}
	if w > 60 {
		w = 60
	}
	return w
}
