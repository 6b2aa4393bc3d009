package topology

import "github.com/katalvlaran/dungeon/internal/rng"

// AddEdgesBack re-adds triangulation edges absent from the tree, each with
// probability p, so the dungeon graph gains loops.
//
// Edges are visited in (From, To) order. A draw is consumed only for an edge
// whose pair is in the result in neither orientation, so once (a,b) is re-added
// its reverse (b,a) is skipped without a draw. The tree is not modified.
//
// Complexity: O(E log E) for the ordered walk.
func AddEdgesBack(seed int64, edges *WeightedEdgeSet, tree *EdgeSet, p float64) *EdgeSet {
	out := tree.Clone()
	r := rng.New(seed)
	for _, e := range edges.Edges() {
		k := e.Key()
		if out.HasEither(k) {
			continue
		}
		if r.Float64() < p {
			out.Add(k)
		}
	}

	return out
}
