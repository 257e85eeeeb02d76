package plot

// Canvas dimensions in pixels, mirroring the conventional figure sizes for
// each chart kind at 100 px per inch.
const (
	widthWide   = 1000
	heightTall  = 800
	heightShort = 600
	width3D     = 1200
	height3D    = 900
)

// Default input parameters applied by the option setters.
const (
	DefaultNodeSize   = 1000
	DefaultFontSize   = 12
	DefaultMarkerSize = 50
	DefaultBins       = 30
	DefaultColormap   = "viridis"
	DefaultLineStyle  = "-"
	DefaultLineColor  = "blue"
)

// GraphOptions configures a relationship graph.
type GraphOptions struct {
	Nodes    []string
	Edges    [][]string // label pairs; entries shorter than 2 are dropped
	Title    string
	NodeSize int // marker area in points squared
	FontSize int
}

func (o *GraphOptions) setDefaults() {
	if o.Title == "" {
		o.Title = "Relationship Graph"
	}
	if o.NodeSize == 0 {
		o.NodeSize = DefaultNodeSize
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
}

// ScatterOptions configures a scatter plot.
type ScatterOptions struct {
	X, Y   []float64
	Labels []string // optional per-point annotations
	Colors []string // optional per-point color tokens; default uniform blue
	Title  string
	XLabel string
	YLabel string
	Size   int // marker area in points squared
}

func (o *ScatterOptions) setDefaults() {
	if o.Title == "" {
		o.Title = "Scatter Plot"
	}
	if o.XLabel == "" {
		o.XLabel = "X-axis"
	}
	if o.YLabel == "" {
		o.YLabel = "Y-axis"
	}
	if o.Size == 0 {
		o.Size = DefaultMarkerSize
	}
}

// Surface3DOptions configures a 3D plot.
type Surface3DOptions struct {
	X, Y, Z  []float64
	PlotType string // "scatter", "surface", or "wireframe"
	Title    string
	XLabel   string
	YLabel   string
	ZLabel   string
}

func (o *Surface3DOptions) setDefaults() {
	if o.PlotType == "" {
		o.PlotType = "scatter"
	}
	if o.Title == "" {
		o.Title = "3D Plot"
	}
	if o.XLabel == "" {
		o.XLabel = "X-axis"
	}
	if o.YLabel == "" {
		o.YLabel = "Y-axis"
	}
	if o.ZLabel == "" {
		o.ZLabel = "Z-axis"
	}
}

// ClassificationOptions configures a categorized scatter plot.
type ClassificationOptions struct {
	X, Y       []float64
	Categories []string // parallel to X/Y
	Title      string
	XLabel     string
	YLabel     string
}

func (o *ClassificationOptions) setDefaults() {
	if o.Title == "" {
		o.Title = "Classification Scatter Plot"
	}
	if o.XLabel == "" {
		o.XLabel = "Feature 1"
	}
	if o.YLabel == "" {
		o.YLabel = "Feature 2"
	}
}

// HistogramOptions configures a histogram.
type HistogramOptions struct {
	Data   []float64
	Bins   int
	Title  string
	XLabel string
	YLabel string
}

func (o *HistogramOptions) setDefaults() {
	if o.Bins == 0 {
		o.Bins = DefaultBins
	}
	if o.Title == "" {
		o.Title = "Histogram"
	}
	if o.XLabel == "" {
		o.XLabel = "Value"
	}
	if o.YLabel == "" {
		o.YLabel = "Frequency"
	}
}

// LineOptions configures a line chart.
type LineOptions struct {
	X, Y      []float64
	Title     string
	XLabel    string
	YLabel    string
	LineStyle string // "-", "--", ":", "-."
	Color     string // named color token or hex
}

func (o *LineOptions) setDefaults() {
	if o.Title == "" {
		o.Title = "Line Chart"
	}
	if o.XLabel == "" {
		o.XLabel = "X-axis"
	}
	if o.YLabel == "" {
		o.YLabel = "Y-axis"
	}
	if o.LineStyle == "" {
		o.LineStyle = DefaultLineStyle
	}
	if o.Color == "" {
		o.Color = DefaultLineColor
	}
}

// HeatmapOptions configures a heatmap.
type HeatmapOptions struct {
	Data     [][]float64 // rectangular matrix, rows × columns
	XLabels  []string    // optional column labels
	YLabels  []string    // optional row labels
	Title    string
	Colormap string
}

func (o *HeatmapOptions) setDefaults() {
	if o.Title == "" {
		o.Title = "Heatmap"
	}
	if o.Colormap == "" {
		o.Colormap = DefaultColormap
	}
}
