package errors

// Validators for chart tool inputs. Handlers call these before any rendering
// work begins so that bad shapes fail fast with a named error code instead of
// surfacing as a rendering-library failure halfway through a figure.

// ValidateSeries validates a pair of parallel x/y coordinate sequences.
// Both must be non-empty and of equal length.
func ValidateSeries(x, y []float64) error {
	if len(x) == 0 {
		return New(ErrCodeInvalidInput, "x_data cannot be empty")
	}
	if len(y) == 0 {
		return New(ErrCodeInvalidInput, "y_data cannot be empty")
	}
	if len(x) != len(y) {
		return New(ErrCodeInvalidInput, "x_data and y_data length mismatch: %d != %d", len(x), len(y))
	}
	return nil
}

// ValidateSeries3D validates parallel x/y/z coordinate sequences.
func ValidateSeries3D(x, y, z []float64) error {
	if err := ValidateSeries(x, y); err != nil {
		return err
	}
	if len(z) != len(x) {
		return New(ErrCodeInvalidInput, "z_data length mismatch: %d != %d", len(z), len(x))
	}
	return nil
}

// ValidateCategories validates a category sequence parallel to n points.
func ValidateCategories(categories []string, n int) error {
	if len(categories) != n {
		return New(ErrCodeInvalidInput, "categories length mismatch: %d != %d points", len(categories), n)
	}
	return nil
}

// ValidateSamples validates a histogram sample sequence and bin count.
func ValidateSamples(data []float64, bins int) error {
	if len(data) == 0 {
		return New(ErrCodeInvalidInput, "data cannot be empty")
	}
	if bins < 1 {
		return New(ErrCodeInvalidInput, "bins must be positive, got %d", bins)
	}
	return nil
}

// ValidateMatrix validates a heatmap matrix: non-empty and rectangular.
// Row/column label sequences, if provided, must match the matrix dimensions.
func ValidateMatrix(data [][]float64, rowLabels, colLabels []string) error {
	if len(data) == 0 || len(data[0]) == 0 {
		return New(ErrCodeInvalidMatrix, "matrix cannot be empty")
	}
	width := len(data[0])
	for i, row := range data {
		if len(row) != width {
			return New(ErrCodeInvalidMatrix, "ragged matrix: row %d has %d columns, want %d", i, len(row), width)
		}
	}
	if len(rowLabels) > 0 && len(rowLabels) != len(data) {
		return New(ErrCodeInvalidMatrix, "y_labels length mismatch: %d labels for %d rows", len(rowLabels), len(data))
	}
	if len(colLabels) > 0 && len(colLabels) != width {
		return New(ErrCodeInvalidMatrix, "x_labels length mismatch: %d labels for %d columns", len(colLabels), width)
	}
	return nil
}

// plotTypes is the set of accepted 3D plot types.
var plotTypes = map[string]bool{
	"scatter":   true,
	"surface":   true,
	"wireframe": true,
}

// ValidatePlotType validates a 3D plot type token.
// Unknown values are rejected rather than silently producing an empty figure.
func ValidatePlotType(plotType string) error {
	if !plotTypes[plotType] {
		return New(ErrCodeInvalidPlotType, "unknown plot_type %q (want scatter, surface, or wireframe)", plotType)
	}
	return nil
}

// lineStyles maps line style tokens to acceptance.
var lineStyles = map[string]bool{
	"-":  true,
	"--": true,
	":":  true,
	"-.": true,
}

// ValidateLineStyle validates a line style token.
func ValidateLineStyle(style string) error {
	if !lineStyles[style] {
		return New(ErrCodeInvalidStyle, "unknown line_style %q (want -, --, :, or -.)", style)
	}
	return nil
}

// ValidateGraphSpec validates relationship graph inputs.
// Edges with fewer than two endpoints are legal (they are dropped by the
// handler), so only the node set is checked here.
func ValidateGraphSpec(nodes []string, edges [][]string) error {
	if len(nodes) == 0 && len(edges) == 0 {
		return New(ErrCodeInvalidInput, "graph must have at least one node or edge")
	}
	return nil
}
