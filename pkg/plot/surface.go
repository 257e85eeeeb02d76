package plot

import (
	"bytes"
	"image/color"
	"math"
	"sort"

	"github.com/fogleman/gg"

	"github.com/plotforge/plotforge/pkg/errors"
)

// Surface3D renders a 3D plot as PNG bytes.
//
// For plot_type "scatter" every point is drawn at its projected position,
// colored by z-value on the viridis colormap. For "surface" and "wireframe"
// the flat triples are first run through [ReconstructGrid]; when they form a
// complete rectangular grid the reshaped mesh is rendered as shaded cells or
// wire outlines, otherwise the call silently degrades to the scatter path.
func Surface3D(opts Surface3DOptions) ([]byte, error) {
	opts.setDefaults()
	if err := errors.ValidateSeries3D(opts.X, opts.Y, opts.Z); err != nil {
		return nil, err
	}
	if err := errors.ValidatePlotType(opts.PlotType); err != nil {
		return nil, err
	}

	dc := gg.NewContext(width3D, height3D)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	p := newProjector(opts.X, opts.Y, opts.Z)
	cm := colormaps[DefaultColormap]

	switch opts.PlotType {
	case "surface", "wireframe":
		if g, ok := ReconstructGrid(opts.X, opts.Y, opts.Z); ok {
			if opts.PlotType == "surface" {
				drawSurface(dc, p, g, cm)
			} else {
				drawWireframe(dc, p, g)
			}
			break
		}
		// Not a complete grid: degrade to unordered points.
		drawScatter3D(dc, p, opts.X, opts.Y, opts.Z, cm)
	default:
		drawScatter3D(dc, p, opts.X, opts.Y, opts.Z, cm)
	}

	drawAxes3D(dc, p, opts)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode 3d plot")
	}
	return buf.Bytes(), nil
}

// projector maps data-space triples onto the 2D canvas with a fixed-angle
// axonometric projection. Depth increases toward the viewer.
type projector struct {
	minX, maxX float64
	minY, maxY float64
	minZ, maxZ float64

	scale   float64
	offsetX float64
	offsetY float64
}

// Projection constants: a 30 degree ground-plane angle with the vertical
// axis compressed slightly, which reads like a conventional 3D chart box.
const (
	projCos    = 0.866 // cos 30°
	projSin    = 0.5   // sin 30°
	projHeight = 0.85  // vertical exaggeration of the z axis
)

func newProjector(x, y, z []float64) projector {
	p := projector{}
	p.minX, p.maxX = minMax(x)
	p.minY, p.maxY = minMax(y)
	p.minZ, p.maxZ = minMax(z)

	// Fit the projected unit cube into the canvas with margins.
	var us, vs []float64
	for _, c := range [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	} {
		u, v := projectUnit(c[0], c[1], c[2])
		us = append(us, u)
		vs = append(vs, v)
	}
	uMin, uMax := minMax(us)
	vMin, vMax := minMax(vs)

	const margin = 110
	sx := (width3D - 2*margin) / (uMax - uMin)
	sy := (height3D - 2*margin) / (vMax - vMin)
	p.scale = math.Min(sx, sy)
	p.offsetX = width3D/2 - p.scale*(uMin+uMax)/2
	p.offsetY = height3D/2 + p.scale*(vMin+vMax)/2
	return p
}

// projectUnit maps a point in the unit cube to abstract (u, v) coordinates,
// v increasing upward.
func projectUnit(nx, ny, nz float64) (u, v float64) {
	u = (nx - ny) * projCos
	v = nz*projHeight - (nx+ny)*projSin*0.5
	return u, v
}

// point projects a data-space triple to canvas coordinates plus a depth used
// for painter ordering (larger means nearer the viewer).
func (p projector) point(x, y, z float64) (px, py, depth float64) {
	nx := normalize(x, p.minX, p.maxX)
	ny := normalize(y, p.minY, p.maxY)
	nz := normalize(z, p.minZ, p.maxZ)

	u, v := projectUnit(nx, ny, nz)
	return p.offsetX + u*p.scale, p.offsetY - v*p.scale, nx + ny
}

func drawScatter3D(dc *gg.Context, p projector, x, y, z []float64, cm Colormap) {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	depth := make([]float64, len(x))
	for i := range x {
		_, _, depth[i] = p.point(x[i], y[i], z[i])
	}
	// Far points first so near points overdraw them.
	sort.SliceStable(idx, func(a, b int) bool { return depth[idx[a]] < depth[idx[b]] })

	for _, i := range idx {
		px, py, _ := p.point(x[i], y[i], z[i])
		c := cm.At(normalize(z[i], p.minZ, p.maxZ))

		dc.DrawCircle(px, py, 6)
		dc.SetColor(c)
		dc.FillPreserve()
		dc.SetRGBA(0, 0, 0, 0.5)
		dc.SetLineWidth(0.8)
		dc.Stroke()
	}
}

// surfaceCell is one renderable quad of the reconstructed mesh.
type surfaceCell struct {
	xs, ys [4]float64
	value  float64
	depth  float64
}

func meshCells(p projector, g Grid) []surfaceCell {
	var cells []surfaceCell
	for i := 0; i < len(g.Y)-1; i++ {
		for j := 0; j < len(g.X)-1; j++ {
			corners := [4][3]float64{
				{g.X[j], g.Y[i], g.Z[i][j]},
				{g.X[j+1], g.Y[i], g.Z[i][j+1]},
				{g.X[j+1], g.Y[i+1], g.Z[i+1][j+1]},
				{g.X[j], g.Y[i+1], g.Z[i+1][j]},
			}
			var cell surfaceCell
			var zSum, depthSum float64
			for k, c := range corners {
				px, py, d := p.point(c[0], c[1], c[2])
				cell.xs[k], cell.ys[k] = px, py
				zSum += c[2]
				depthSum += d
			}
			cell.value = zSum / 4
			cell.depth = depthSum / 4
			cells = append(cells, cell)
		}
	}
	// Painter order: far cells first.
	sort.SliceStable(cells, func(a, b int) bool { return cells[a].depth < cells[b].depth })
	return cells
}

func drawSurface(dc *gg.Context, p projector, g Grid, cm Colormap) {
	for _, cell := range meshCells(p, g) {
		c := cm.At(normalize(cell.value, p.minZ, p.maxZ))

		dc.MoveTo(cell.xs[0], cell.ys[0])
		for k := 1; k < 4; k++ {
			dc.LineTo(cell.xs[k], cell.ys[k])
		}
		dc.ClosePath()
		dc.SetColor(color.RGBA{c.R, c.G, c.B, 210})
		dc.FillPreserve()
		dc.SetRGBA(0, 0, 0, 0.25)
		dc.SetLineWidth(0.6)
		dc.Stroke()
	}
}

func drawWireframe(dc *gg.Context, p projector, g Grid) {
	dc.SetRGBA(0.27, 0.45, 0.65, 0.8)
	dc.SetLineWidth(1.2)

	for i := range g.Y {
		for j := range g.X {
			px, py, _ := p.point(g.X[j], g.Y[i], g.Z[i][j])
			if j == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.Stroke()
	}
	for j := range g.X {
		for i := range g.Y {
			px, py, _ := p.point(g.X[j], g.Y[i], g.Z[i][j])
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.Stroke()
	}
}

// drawAxes3D draws the three coordinate axes of the data cube with their
// labels, plus the chart title.
func drawAxes3D(dc *gg.Context, p projector, opts Surface3DOptions) {
	origin := [3]float64{p.minX, p.maxY, p.minZ}
	ends := [3][3]float64{
		{p.maxX, p.maxY, p.minZ}, // x axis
		{p.minX, p.minY, p.minZ}, // y axis
		{p.minX, p.maxY, p.maxZ}, // z axis
	}
	labels := [3]string{opts.XLabel, opts.YLabel, opts.ZLabel}

	ox, oy, _ := p.point(origin[0], origin[1], origin[2])
	dc.SetRGBA(0.2, 0.2, 0.2, 0.9)
	dc.SetLineWidth(1.5)
	for i, end := range ends {
		ex, ey, _ := p.point(end[0], end[1], end[2])
		dc.DrawLine(ox, oy, ex, ey)
		dc.Stroke()

		// Nudge the label outward along the axis direction.
		lx := ex + (ex-ox)*0.08
		ly := ey + (ey-oy)*0.08
		dc.DrawStringAnchored(labels[i], lx, ly, 0.5, 0.5)
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(opts.Title, width3D/2, 28, 0.5, 0.5)
}
