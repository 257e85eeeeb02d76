package plot

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/plotforge/plotforge/pkg/errors"
)

// dashArrays maps line style tokens to stroke dash patterns.
var dashArrays = map[string][]float64{
	"-":  nil,
	"--": {8, 5},
	":":  {2, 4},
	"-.": {8, 4, 2, 4},
}

// Line renders a line chart as PNG bytes. Points are connected in input
// order with the requested style and color, with markers overlaid.
func Line(opts LineOptions) ([]byte, error) {
	opts.setDefaults()
	if err := errors.ValidateSeries(opts.X, opts.Y); err != nil {
		return nil, err
	}
	if err := errors.ValidateLineStyle(opts.LineStyle); err != nil {
		return nil, err
	}
	color, err := ColorByName(opts.Color)
	if err != nil {
		return nil, err
	}

	ch := chart.Chart{
		Title:  opts.Title,
		Width:  widthWide,
		Height: heightShort,
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
		Series: []chart.Series{chart.ContinuousSeries{
			XValues: opts.X,
			YValues: opts.Y,
			Style: chart.Style{
				StrokeWidth:     2.0,
				StrokeColor:     color,
				StrokeDashArray: dashArrays[opts.LineStyle],
				DotWidth:        3,
				DotColor:        color,
			},
		}},
	}

	return renderChart(&ch, "line chart")
}
