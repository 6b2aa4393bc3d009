package topology

import (
	"sort"

	"github.com/fogleman/delaunay"

	"github.com/katalvlaran/dungeon/room"
)

// Triangulate builds the candidate connection graph over room centers.
//
//   - 0 or 1 room: empty set.
//   - 2 rooms: (0,1,w) and (1,0,w), w = Manhattan distance.
//   - 3+ rooms: Delaunay triangulation of the centers; every triangle emits its
//     three edges in both directions, weighted by Manhattan distance.
//
// When the centers admit no triangulation (all collinear) the rooms are chained
// in room.ByCenter order instead, which keeps the graph connected.
//
// Complexity: O(n log n) expected for the triangulation, O(E) for the edges.
func Triangulate(rooms []room.Box) *WeightedEdgeSet {
	edges := NewWeightedEdgeSet()
	switch {
	case len(rooms) < 2:
		return edges
	case len(rooms) == 2:
		addBoth(edges, rooms, 0, 1)
		return edges
	}

	pts := make([]delaunay.Point, len(rooms))
	for i, r := range rooms {
		pts[i] = delaunay.Point{X: r.CX, Y: r.CY}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil || len(tri.Triangles) == 0 {
		chain(edges, rooms)
		return edges
	}

	t := tri.Triangles
	for i := 0; i+2 < len(t); i += 3 {
		addBoth(edges, rooms, t[i], t[i+1])
		addBoth(edges, rooms, t[i+1], t[i+2])
		addBoth(edges, rooms, t[i+2], t[i])
	}

	return edges
}

// addBoth inserts (a,b) and (b,a) with the same weight.
func addBoth(edges *WeightedEdgeSet, rooms []room.Box, a, b int) {
	w := rooms[a].Manhattan(rooms[b])
	edges.Add(a, b, w)
	edges.Add(b, a, w)
}

// chain links collinear rooms to their neighbor along the line.
func chain(edges *WeightedEdgeSet, rooms []room.Box) {
	idx := make([]int, len(rooms))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return room.ByCenter(rooms[idx[i]], rooms[idx[j]]) })
	for i := 1; i < len(idx); i++ {
		addBoth(edges, rooms, idx[i-1], idx[i])
	}
}
