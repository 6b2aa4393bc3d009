package topology_test

import (
	"fmt"

	"github.com/katalvlaran/dungeon/topology"
)

// ExampleMST builds the spanning tree of a weighted triangle:
// 0—1 (1), 1—2 (2), 0—2 (3). The tree keeps 0—1 and 1—2, reported as
// (child, parent) pairs.
func ExampleMST() {
	edges := topology.NewWeightedEdgeSet()
	edges.Add(0, 1, 1)
	edges.Add(1, 0, 1)
	edges.Add(1, 2, 2)
	edges.Add(2, 1, 2)
	edges.Add(0, 2, 3)
	edges.Add(2, 0, 3)

	for _, p := range topology.MST(edges).Pairs() {
		fmt.Printf("%d-%d ", p.A, p.B)
	}
	// Output: 1-0 2-1
}
