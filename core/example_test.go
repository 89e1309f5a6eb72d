package core_test

import (
	"fmt"

	"github.com/katalvlaran/bfsviz/core"
)

// ExampleBuildConnectionsList shows insertion-ordered neighbor sequences.
func ExampleBuildConnectionsList() {
	edges := core.EdgesFromPairs([][2]int{{0, 1}, {0, 2}, {1, 2}})
	conns := core.BuildConnectionsList(4, edges)

	for _, n := range []int{0, 1, 2, 3} {
		fmt.Println(n, conns.Neighbors(n))
	}
	// Output:
	// 0 [1 2]
	// 1 [0 2]
	// 2 [0 1]
	// 3 []
}
