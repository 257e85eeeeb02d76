// Package plot builds chart figures and encodes them as PNG images.
//
// Each builder is a pure function from validated inputs to PNG bytes: it
// creates an explicit figure object for the call, populates it, encodes it,
// and releases it. No rendering state is shared between calls, so builders
// are safe to invoke concurrently.
//
// # Chart kinds
//
//   - [RelationshipGraph]: force-directed node-link diagram via Graphviz
//   - [Scatter]: 2D scatter with optional point labels and per-point colors
//   - [Line]: line chart with style/color tokens and point markers
//   - [Histogram]: frequency histogram over equal-width bins
//   - [Classification]: per-category scatter series with a legend
//   - [Surface3D]: 3D scatter, surface, or wireframe with grid reconstruction
//   - [Heatmap]: color-mapped matrix with tick labels and colorbar
//
// 2D charts are rendered with [github.com/wcharczuk/go-chart/v2], the graph
// diagram with [github.com/goccy/go-graphviz], and the 3D and heatmap figures
// with [github.com/fogleman/gg].
package plot
