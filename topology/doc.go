// Package topology turns selected rooms into the dungeon connection graph.
//
// What & Why
//
//   - Triangulate: a Delaunay triangulation of room centers is a sparse, planar
//     candidate set in which every room reaches its natural neighbors. Edges are
//     stored in both directions and weighted by Manhattan distance, which is the
//     length of the axis-aligned corridors that will eventually be routed.
//
//   - MST: Prim's algorithm from room 0 keeps the cheapest set of links that
//     still reaches every room.
//
//   - AddEdgesBack: a tree has no loops and plays like a corridor maze; a few
//     triangulation edges are re-added at random to create cycles.
//
// Data
//
//	Rooms are referred to by their index in the selected room slice. Edge and
//	pair sets are keyed by integer index pairs; weights are payload only, so no
//	floating-point value ever takes part in set equality. Iteration is always in
//	(From, To) order, which is what makes the randomized stage reproducible.
//
// Errors
//
//	None. Empty or disconnected inputs produce smaller outputs.
//
// Complexity
//
//   - Triangulate:  O(n log n) expected.
//   - MST:          O(E log E), E ≤ 6n for a triangulation.
//   - AddEdgesBack: O(E log E).
package topology
