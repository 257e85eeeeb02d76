package plot

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/plotforge/plotforge/pkg/errors"
)

// Heatmap layout constants, in pixels.
const (
	heatMarginLeft   = 110
	heatMarginRight  = 120 // room for the colorbar
	heatMarginTop    = 60
	heatMarginBottom = 90 // room for rotated column labels
	colorbarWidth    = 24
)

// Heatmap renders a color-mapped matrix as PNG bytes.
//
// Column labels, when provided, are drawn rotated below the matrix; row
// labels are drawn to the left. A vertical colorbar maps the value range.
func Heatmap(opts HeatmapOptions) ([]byte, error) {
	opts.setDefaults()
	if err := errors.ValidateMatrix(opts.Data, opts.YLabels, opts.XLabels); err != nil {
		return nil, err
	}
	cm, err := ColormapByName(opts.Colormap)
	if err != nil {
		return nil, err
	}

	rows, cols := len(opts.Data), len(opts.Data[0])
	min, max := matrixMinMax(opts.Data)

	dc := gg.NewContext(widthWide, heightTall)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotW := float64(widthWide - heatMarginLeft - heatMarginRight)
	plotH := float64(heightTall - heatMarginTop - heatMarginBottom)
	cellW := plotW / float64(cols)
	cellH := plotH / float64(rows)

	// Cells.
	for i, row := range opts.Data {
		for j, v := range row {
			x := heatMarginLeft + float64(j)*cellW
			y := heatMarginTop + float64(i)*cellH
			dc.SetColor(cm.At(normalize(v, min, max)))
			// Slight overdraw so antialiasing doesn't leave seams.
			dc.DrawRectangle(x, y, cellW+0.5, cellH+0.5)
			dc.Fill()
		}
	}

	dc.SetRGB(0, 0, 0)

	// Column labels, rotated 45 degrees below the matrix.
	for j, label := range opts.XLabels {
		x := heatMarginLeft + (float64(j)+0.5)*cellW
		y := heatMarginTop + plotH + 12
		dc.Push()
		dc.RotateAbout(-gg.Radians(45), x, y)
		dc.DrawStringAnchored(label, x, y, 1, 0.5)
		dc.Pop()
	}

	// Row labels, right-aligned beside the matrix.
	for i, label := range opts.YLabels {
		y := heatMarginTop + (float64(i)+0.5)*cellH
		dc.DrawStringAnchored(label, heatMarginLeft-8, y, 1, 0.5)
	}

	drawColorbar(dc, cm, min, max, plotH)

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(opts.Title, widthWide/2, float64(heatMarginTop)/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode heatmap")
	}
	return buf.Bytes(), nil
}

// drawColorbar draws the vertical color scale with min/max annotations.
func drawColorbar(dc *gg.Context, cm Colormap, min, max, plotH float64) {
	barX := float64(widthWide - heatMarginRight + 30)
	barTop := float64(heatMarginTop)
	barH := plotH * 0.8

	steps := int(barH)
	for s := 0; s < steps; s++ {
		t := 1 - float64(s)/float64(steps-1) // top of the bar is the max
		dc.SetColor(cm.At(t))
		dc.DrawRectangle(barX, barTop+float64(s), colorbarWidth, 1.5)
		dc.Fill()
	}

	dc.SetRGBA(0, 0, 0, 0.7)
	dc.SetLineWidth(1)
	dc.DrawRectangle(barX, barTop, colorbarWidth, barH)
	dc.Stroke()

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(fmt.Sprintf("%.3g", max), barX+colorbarWidth+6, barTop, 0, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.3g", min), barX+colorbarWidth+6, barTop+barH, 0, 0.5)
}

// matrixMinMax returns the extrema across all matrix cells.
func matrixMinMax(data [][]float64) (min, max float64) {
	min, max = data[0][0], data[0][0]
	for _, row := range data {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}
