package plot

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/plotforge/plotforge/pkg/errors"
)

// Classification renders a categorized scatter plot as PNG bytes.
//
// Distinct category values are collected in first-seen order and each
// assigned a color from the fixed qualitative palette; one series per
// category is drawn with a legend entry.
func Classification(opts ClassificationOptions) ([]byte, error) {
	opts.setDefaults()
	if err := errors.ValidateSeries(opts.X, opts.Y); err != nil {
		return nil, err
	}
	if err := errors.ValidateCategories(opts.Categories, len(opts.X)); err != nil {
		return nil, err
	}

	parts := partitionByCategory(opts.Categories, opts.X, opts.Y)

	series := make([]chart.Series, 0, len(parts))
	for i, part := range parts {
		series = append(series, chart.ContinuousSeries{
			Name:    part.Category,
			XValues: part.X,
			YValues: part.Y,
			Style: chart.Style{
				StrokeWidth: 0,
				DotWidth:    markerDotWidth(60),
				DotColor:    CategoryColor(i),
			},
		})
	}

	ch := chart.Chart{
		Title:  opts.Title,
		Width:  widthWide,
		Height: heightTall,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 20, Right: 110, Bottom: 20},
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
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return renderChart(&ch, "classification plot")
}

// categorySeries holds the points belonging to one category.
type categorySeries struct {
	Category string
	X, Y     []float64
}

// partitionByCategory splits parallel x/y points into one group per distinct
// category value, in first-seen order. Point order within each group follows
// input order.
func partitionByCategory(categories []string, x, y []float64) []categorySeries {
	distinct := DistinctCategories(categories)

	index := make(map[string]int, len(distinct))
	out := make([]categorySeries, len(distinct))
	for i, c := range distinct {
		index[c] = i
		out[i].Category = c
	}

	for j, c := range categories {
		i := index[c]
		out[i].X = append(out[i].X, x[j])
		out[i].Y = append(out[i].Y, y[j])
	}
	return out
}
