package plot

import (
	"bytes"
	"context"
	"fmt"
	"math"

	"github.com/goccy/go-graphviz"

	"github.com/plotforge/plotforge/pkg/errors"
)

// Force-directed layout parameters. K is the ideal spring length passed to
// the fdp engine, maxiter bounds the iteration count. The layout itself is
// still stochastic: no random seed is fixed.
const (
	springConstant   = 2.0
	layoutIterations = 50
)

// RelationshipGraph renders a directed node-link diagram as PNG bytes.
//
// All declared nodes are added first; edges with at least two endpoints are
// then added, implicitly creating any endpoint not present in the node set.
// Edges with fewer than two endpoints are dropped without error. Layout is
// delegated to Graphviz's force-directed fdp engine; the figure has no axes.
func RelationshipGraph(opts GraphOptions) ([]byte, error) {
	opts.setDefaults()
	if err := errors.ValidateGraphSpec(opts.Nodes, opts.Edges); err != nil {
		return nil, err
	}

	dot := graphDOT(opts)

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.FDP)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render relationship graph")
	}
	return buf.Bytes(), nil
}

// graphDOT converts a graph spec to Graphviz DOT format.
func graphDOT(opts GraphOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  fontsize=16;\n")
	buf.WriteString("  bgcolor=white;\n")
	buf.WriteString("  dpi=100;\n")
	fmt.Fprintf(&buf, "  K=%.1f;\n", springConstant)
	fmt.Fprintf(&buf, "  maxiter=%d;\n", layoutIterations)
	buf.WriteString("  splines=true;\n")
	fmt.Fprintf(&buf,
		"  node [shape=circle, style=filled, fillcolor=%q, color=gray, fontsize=%d, fixedsize=true, width=%.2f];\n",
		"#add8e6cc", opts.FontSize, nodeDiameterInches(opts.NodeSize))
	buf.WriteString("  edge [color=gray, arrowhead=vee, arrowsize=1.2];\n")
	buf.WriteString("\n")

	for _, n := range opts.Nodes {
		fmt.Fprintf(&buf, "  %q;\n", n)
	}

	buf.WriteString("\n")
	for _, e := range opts.Edges {
		if len(e) >= 2 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e[0], e[1])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeDiameterInches converts a marker area in points squared (the
// conventional node_size unit) to a circle diameter in inches.
func nodeDiameterInches(size int) float64 {
	d := 2 * math.Sqrt(float64(size)/math.Pi) / 72
	if d < 0.3 {
		d = 0.3
	}
	return d
}
