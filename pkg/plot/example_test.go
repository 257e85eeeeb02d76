package plot_test

import (
	"fmt"

	"github.com/plotforge/plotforge/pkg/plot"
)

func ExampleReconstructGrid() {
	// Four triples covering every combination of x in {0,1} and y in {0,1}
	// form a complete 2x2 grid.
	g, ok := plot.ReconstructGrid(
		[]float64{0, 0, 1, 1},
		[]float64{0, 1, 0, 1},
		[]float64{1, 2, 3, 4},
	)

	fmt.Println("complete:", ok)
	fmt.Println("X:", g.X)
	fmt.Println("Y:", g.Y)
	fmt.Println("Z:", g.Z)
	// Output:
	// complete: true
	// X: [0 1]
	// Y: [0 1]
	// Z: [[1 2] [3 4]]
}

func ExampleReconstructGrid_incomplete() {
	// Three triples cannot fill a 2x2 grid, so callers fall back to
	// rendering the points individually.
	_, ok := plot.ReconstructGrid(
		[]float64{0, 0, 1},
		[]float64{0, 1, 0},
		[]float64{1, 2, 3},
	)

	fmt.Println("complete:", ok)
	// Output:
	// complete: false
}

func ExampleDistinctCategories() {
	distinct := plot.DistinctCategories([]string{"setosa", "virginica", "setosa", "versicolor"})
	fmt.Println(distinct)
	// Output:
	// [setosa virginica versicolor]
}
