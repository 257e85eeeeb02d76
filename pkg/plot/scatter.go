package plot

import (
	"bytes"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotforge/plotforge/pkg/errors"
)

// gridStyle is the low-opacity major gridline style shared by the 2D charts.
var gridStyle = chart.Style{
	StrokeColor: drawing.Color{R: 0, G: 0, B: 0, A: 70},
	StrokeWidth: 1.0,
}

// Scatter renders a scatter plot as PNG bytes.
//
// Points use the given per-point color tokens when provided, uniform blue
// otherwise. Labels are annotated next to their points; a labels sequence
// shorter or longer than the coordinate sequences is truncated to the
// in-bounds prefix rather than rejected.
func Scatter(opts ScatterOptions) ([]byte, error) {
	opts.setDefaults()
	if err := errors.ValidateSeries(opts.X, opts.Y); err != nil {
		return nil, err
	}

	dotColors, err := resolveDotColors(opts.Colors, len(opts.X))
	if err != nil {
		return nil, err
	}

	style := chart.Style{
		StrokeWidth: 0,
		DotWidth:    markerDotWidth(opts.Size),
		DotColor:    namedColors["blue"],
	}
	if dotColors != nil {
		style.DotColorProvider = func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
			return dotColors[index]
		}
	}

	series := []chart.Series{chart.ContinuousSeries{
		XValues: opts.X,
		YValues: opts.Y,
		Style:   style,
	}}
	if ann := annotations(opts.Labels, opts.X, opts.Y); len(ann) > 0 {
		series = append(series, chart.AnnotationSeries{
			Annotations: ann,
			Style:       chart.Style{FontSize: 10, StrokeWidth: 0},
		})
	}

	ch := chart.Chart{
		Title:  opts.Title,
		Width:  widthWide,
		Height: heightTall,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           opts.XLabel,
			GridMajorStyle: gridStyle,
			Range:          paddedRange(opts.X),
		},
		YAxis: chart.YAxis{
			Name:           opts.YLabel,
			GridMajorStyle: gridStyle,
			Range:          paddedRange(opts.Y),
		},
		Series: series,
	}

	return renderChart(&ch, "scatter plot")
}

// annotations builds label annotations for points whose index is in bounds of
// both coordinate sequences.
func annotations(labels []string, x, y []float64) []chart.Value2 {
	n := len(labels)
	if len(x) < n {
		n = len(x)
	}
	if len(y) < n {
		n = len(y)
	}

	out := make([]chart.Value2, 0, n)
	for i := 0; i < n; i++ {
		if labels[i] == "" {
			continue
		}
		out = append(out, chart.Value2{XValue: x[i], YValue: y[i], Label: labels[i]})
	}
	return out
}

// resolveDotColors maps color tokens to concrete colors, one per point.
// A nil or empty token list means the caller wants the uniform default.
func resolveDotColors(tokens []string, n int) ([]drawing.Color, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]drawing.Color, n)
	for i := 0; i < n; i++ {
		// Reuse the last token when fewer tokens than points were given.
		token := tokens[min(i, len(tokens)-1)]
		c, err := ColorByName(token)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// markerDotWidth converts a marker area in points squared (the conventional
// scatter size unit) to a dot radius in pixels.
func markerDotWidth(size int) float64 {
	r := math.Sqrt(float64(size)) / 2
	if r < 2 {
		r = 2
	}
	return r
}

// paddedRange returns an explicit axis range with headroom so charts with a
// single point (or a degenerate axis) still render.
func paddedRange(vs []float64) chart.Range {
	min, max := minMax(vs)
	if min == max {
		min, max = min-1, max+1
	}
	pad := (max - min) * 0.05
	return &chart.ContinuousRange{Min: min - pad, Max: max + pad}
}

// renderChart encodes a finished chart to PNG, wrapping failures.
func renderChart(ch *chart.Chart, kind string) ([]byte, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", kind)
	}
	return buf.Bytes(), nil
}
