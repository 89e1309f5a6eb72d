package builder_test

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/builder"
)

// ExampleBuild shows the deterministic edge order of a 2×2 grid.
func ExampleBuild() {
	l, err := builder.Build(builder.GridKind, builder.WithGridSize(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(l.Nodes)
	fmt.Println(l.Edges)
	// Output:
	// [{1.5 1.5} {1.5 3} {3 1.5} {3 3}]
	// [(0,2) (0,1) (1,3) (2,3)]
}
