package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/plotforge/plotforge/pkg/plot"
)

// Typed argument structs for each tool. Field tags match the declared
// JSON-schema parameter names.

type graphInput struct {
	Nodes    []string   `json:"nodes"`
	Edges    [][]string `json:"edges,omitempty"`
	Title    string     `json:"title,omitempty"`
	NodeSize int        `json:"node_size,omitempty"`
	FontSize int        `json:"font_size,omitempty"`
}

type scatterInput struct {
	X      []float64 `json:"x_data"`
	Y      []float64 `json:"y_data"`
	Labels []string  `json:"labels,omitempty"`
	Colors []string  `json:"colors,omitempty"`
	Title  string    `json:"title,omitempty"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
	Size   int       `json:"size,omitempty"`
}

type surfaceInput struct {
	X        []float64 `json:"x_data"`
	Y        []float64 `json:"y_data"`
	Z        []float64 `json:"z_data"`
	PlotType string    `json:"plot_type,omitempty"`
	Title    string    `json:"title,omitempty"`
	XLabel   string    `json:"x_label,omitempty"`
	YLabel   string    `json:"y_label,omitempty"`
	ZLabel   string    `json:"z_label,omitempty"`
}

type classificationInput struct {
	X          []float64 `json:"x_data"`
	Y          []float64 `json:"y_data"`
	Categories []string  `json:"categories"`
	Title      string    `json:"title,omitempty"`
	XLabel     string    `json:"x_label,omitempty"`
	YLabel     string    `json:"y_label,omitempty"`
}

type histogramInput struct {
	Data   []float64 `json:"data"`
	Bins   int       `json:"bins,omitempty"`
	Title  string    `json:"title,omitempty"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
}

type lineInput struct {
	X         []float64 `json:"x_data"`
	Y         []float64 `json:"y_data"`
	Title     string    `json:"title,omitempty"`
	XLabel    string    `json:"x_label,omitempty"`
	YLabel    string    `json:"y_label,omitempty"`
	LineStyle string    `json:"line_style,omitempty"`
	Color     string    `json:"color,omitempty"`
}

type heatmapInput struct {
	Data     [][]float64 `json:"data"`
	XLabels  []string    `json:"x_labels,omitempty"`
	YLabels  []string    `json:"y_labels,omitempty"`
	Title    string      `json:"title,omitempty"`
	Colormap string      `json:"colormap,omitempty"`
}

func numberItems() mcp.PropertyOption {
	return mcp.Items(map[string]any{"type": "number"})
}

func stringItems() mcp.PropertyOption {
	return mcp.Items(map[string]any{"type": "string"})
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool(
		"create_relationship_graph",
		mcp.WithDescription("Create a directed relationship graph from nodes and edges, laid out with a force-directed algorithm"),
		mcp.WithArray("nodes", mcp.Required(), mcp.Description("Node labels"), stringItems()),
		mcp.WithArray("edges", mcp.Description("Edges as [from, to] label pairs"),
			mcp.Items(map[string]any{"type": "array", "items": map[string]any{"type": "string"}})),
		mcp.WithString("title", mcp.DefaultString("Relationship Graph"), mcp.Description("Chart title")),
		mcp.WithNumber("node_size", mcp.DefaultNumber(plot.DefaultNodeSize), mcp.Description("Node marker area in points squared")),
		mcp.WithNumber("font_size", mcp.DefaultNumber(plot.DefaultFontSize), mcp.Description("Node label font size")),
	), mcp.NewTypedToolHandler(s.handleRelationshipGraph))

	s.mcp.AddTool(mcp.NewTool(
		"create_scatter_plot",
		mcp.WithDescription("Create a scatter plot, with optional point labels and per-point colors"),
		mcp.WithArray("x_data", mcp.Required(), mcp.Description("X coordinates"), numberItems()),
		mcp.WithArray("y_data", mcp.Required(), mcp.Description("Y coordinates, same length as x_data"), numberItems()),
		mcp.WithArray("labels", mcp.Description("Optional per-point annotation labels"), stringItems()),
		mcp.WithArray("colors", mcp.Description("Optional per-point colors (named or #hex)"), stringItems()),
		mcp.WithString("title", mcp.DefaultString("Scatter Plot"), mcp.Description("Chart title")),
		mcp.WithString("x_label", mcp.DefaultString("X-axis"), mcp.Description("X axis label")),
		mcp.WithString("y_label", mcp.DefaultString("Y-axis"), mcp.Description("Y axis label")),
		mcp.WithNumber("size", mcp.DefaultNumber(plot.DefaultMarkerSize), mcp.Description("Marker area in points squared")),
	), mcp.NewTypedToolHandler(s.handleScatter))

	s.mcp.AddTool(mcp.NewTool(
		"create_3d_plot",
		mcp.WithDescription("Create a 3D scatter, surface, or wireframe plot; surface and wireframe fall back to scatter when the points do not form a complete grid"),
		mcp.WithArray("x_data", mcp.Required(), mcp.Description("X coordinates"), numberItems()),
		mcp.WithArray("y_data", mcp.Required(), mcp.Description("Y coordinates"), numberItems()),
		mcp.WithArray("z_data", mcp.Required(), mcp.Description("Z values, same length as x_data and y_data"), numberItems()),
		mcp.WithString("plot_type", mcp.DefaultString("scatter"), mcp.Enum("scatter", "surface", "wireframe"), mcp.Description("Plot style")),
		mcp.WithString("title", mcp.DefaultString("3D Plot"), mcp.Description("Chart title")),
		mcp.WithString("x_label", mcp.DefaultString("X-axis"), mcp.Description("X axis label")),
		mcp.WithString("y_label", mcp.DefaultString("Y-axis"), mcp.Description("Y axis label")),
		mcp.WithString("z_label", mcp.DefaultString("Z-axis"), mcp.Description("Z axis label")),
	), mcp.NewTypedToolHandler(s.handleSurface3D))

	s.mcp.AddTool(mcp.NewTool(
		"create_classification_plot",
		mcp.WithDescription("Create a scatter plot with points colored by category, with a legend"),
		mcp.WithArray("x_data", mcp.Required(), mcp.Description("X coordinates"), numberItems()),
		mcp.WithArray("y_data", mcp.Required(), mcp.Description("Y coordinates, same length as x_data"), numberItems()),
		mcp.WithArray("categories", mcp.Required(), mcp.Description("Category label per point"), stringItems()),
		mcp.WithString("title", mcp.DefaultString("Classification Scatter Plot"), mcp.Description("Chart title")),
		mcp.WithString("x_label", mcp.DefaultString("Feature 1"), mcp.Description("X axis label")),
		mcp.WithString("y_label", mcp.DefaultString("Feature 2"), mcp.Description("Y axis label")),
	), mcp.NewTypedToolHandler(s.handleClassification))

	s.mcp.AddTool(mcp.NewTool(
		"create_histogram",
		mcp.WithDescription("Create a histogram of sample values with equal-width bins"),
		mcp.WithArray("data", mcp.Required(), mcp.Description("Sample values"), numberItems()),
		mcp.WithNumber("bins", mcp.DefaultNumber(plot.DefaultBins), mcp.Description("Number of bins")),
		mcp.WithString("title", mcp.DefaultString("Histogram"), mcp.Description("Chart title")),
		mcp.WithString("x_label", mcp.DefaultString("Value"), mcp.Description("X axis label")),
		mcp.WithString("y_label", mcp.DefaultString("Frequency"), mcp.Description("Y axis label")),
	), mcp.NewTypedToolHandler(s.handleHistogram))

	s.mcp.AddTool(mcp.NewTool(
		"create_line_plot",
		mcp.WithDescription("Create a line chart connecting points in input order, with markers"),
		mcp.WithArray("x_data", mcp.Required(), mcp.Description("X coordinates"), numberItems()),
		mcp.WithArray("y_data", mcp.Required(), mcp.Description("Y coordinates, same length as x_data"), numberItems()),
		mcp.WithString("title", mcp.DefaultString("Line Chart"), mcp.Description("Chart title")),
		mcp.WithString("x_label", mcp.DefaultString("X-axis"), mcp.Description("X axis label")),
		mcp.WithString("y_label", mcp.DefaultString("Y-axis"), mcp.Description("Y axis label")),
		mcp.WithString("line_style", mcp.DefaultString(plot.DefaultLineStyle), mcp.Enum("-", "--", ":", "-."), mcp.Description("Line dash style")),
		mcp.WithString("color", mcp.DefaultString(plot.DefaultLineColor), mcp.Description("Line color (named or #hex)")),
	), mcp.NewTypedToolHandler(s.handleLine))

	s.mcp.AddTool(mcp.NewTool(
		"create_heatmap",
		mcp.WithDescription("Create a heatmap from a rectangular matrix with a colorbar"),
		mcp.WithArray("data", mcp.Required(), mcp.Description("Matrix values, rows of equal length"),
			mcp.Items(map[string]any{"type": "array", "items": map[string]any{"type": "number"}})),
		mcp.WithArray("x_labels", mcp.Description("Optional column labels"), stringItems()),
		mcp.WithArray("y_labels", mcp.Description("Optional row labels"), stringItems()),
		mcp.WithString("title", mcp.DefaultString("Heatmap"), mcp.Description("Chart title")),
		mcp.WithString("colormap", mcp.DefaultString(plot.DefaultColormap), mcp.Description("Colormap name (viridis, plasma, inferno, magma, gray, hot, coolwarm)")),
	), mcp.NewTypedToolHandler(s.handleHeatmap))
}

func (s *Server) handleRelationshipGraph(ctx context.Context, _ mcp.CallToolRequest, in graphInput) (*mcp.CallToolResult, error) {
	return s.run(ctx, "create_relationship_graph", "relationship_graph", "graph", in, func() ([]byte, error) {
		return plot.RelationshipGraph(plot.GraphOptions{
			Nodes:    in.Nodes,
			Edges:    in.Edges,
			Title:    in.Title,
			NodeSize: in.NodeSize,
			FontSize: in.FontSize,
		})
	})
}

func (s *Server) handleScatter(ctx context.Context, _ mcp.CallToolRequest, in scatterInput) (*mcp.CallToolResult, error) {
	return s.run(ctx, "create_scatter_plot", "scatter_plot", "scatter plot", in, func() ([]byte, error) {
		return plot.Scatter(plot.ScatterOptions{
			X:      in.X,
			Y:      in.Y,
			Labels: in.Labels,
			Colors: in.Colors,
			Title:  in.Title,
			XLabel: in.XLabel,
			YLabel: in.YLabel,
			Size:   in.Size,
		})
	})
}

func (s *Server) handleSurface3D(ctx context.Context, _ mcp.CallToolRequest, in surfaceInput) (*mcp.CallToolResult, error) {
	return s.run(ctx, "create_3d_plot", "3d_plot", "3D plot", in, func() ([]byte, error) {
		return plot.Surface3D(plot.Surface3DOptions{
			X:        in.X,
			Y:        in.Y,
			Z:        in.Z,
			PlotType: in.PlotType,
			Title:    in.Title,
			XLabel:   in.XLabel,
			YLabel:   in.YLabel,
			ZLabel:   in.ZLabel,
		})
	})
}

func (s *Server) handleClassification(ctx context.Context, _ mcp.CallToolRequest, in classificationInput) (*mcp.CallToolResult, error) {
	return s.run(ctx, "create_classification_plot", "classification_plot", "classification plot", in, func() ([]byte, error) {
		return plot.Classification(plot.ClassificationOptions{
			X:          in.X,
			Y:          in.Y,
			Categories: in.Categories,
			Title:      in.Title,
			XLabel:     in.XLabel,
			YLabel:     in.YLabel,
		})
	})
}

func (s *Server) handleHistogram(ctx context.Context, _ mcp.CallToolRequest, in histogramInput) (*mcp.CallToolResult, error) {
	return s.run(ctx, "create_histogram", "histogram", "histogram", in, func() ([]byte, error) {
		return plot.Histogram(plot.HistogramOptions{
			Data:   in.Data,
			Bins:   in.Bins,
			Title:  in.Title,
			XLabel: in.XLabel,
			YLabel: in.YLabel,
		})
	})
}

func (s *Server) handleLine(ctx context.Context, _ mcp.CallToolRequest, in lineInput) (*mcp.CallToolResult, error) {
	return s.run(ctx, "create_line_plot", "line_plot", "line plot", in, func() ([]byte, error) {
		return plot.Line(plot.LineOptions{
			X:         in.X,
			Y:         in.Y,
			Title:     in.Title,
			XLabel:    in.XLabel,
			YLabel:    in.YLabel,
			LineStyle: in.LineStyle,
			Color:     in.Color,
		})
	})
}

func (s *Server) handleHeatmap(ctx context.Context, _ mcp.CallToolRequest, in heatmapInput) (*mcp.CallToolResult, error) {
	return s.run(ctx, "create_heatmap", "heatmap", "heatmap", in, func() ([]byte, error) {
		return plot.Heatmap(plot.HeatmapOptions{
			Data:     in.Data,
			XLabels:  in.XLabels,
			YLabels:  in.YLabels,
			Title:    in.Title,
			Colormap: in.Colormap,
		})
	})
}
