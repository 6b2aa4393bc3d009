package topology_test

import (
	"testing"

	"github.com/katalvlaran/dungeon/room"
	"github.com/katalvlaran/dungeon/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle returns the weighted set 0—1 (1), 1—2 (2), 0—2 (3), both directions.
// Its MST is {0—1, 1—2}.
func buildTriangle() *topology.WeightedEdgeSet {
	s := topology.NewWeightedEdgeSet()
	for _, e := range []topology.Edge{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}} {
		s.Add(e.From, e.To, e.Weight)
		s.Add(e.To, e.From, e.Weight)
	}

	return s
}

// quadRooms returns four rooms at the corners of a convex quadrilateral.
func quadRooms() []room.Box {
	return []room.Box{
		room.NewBox(0, 0, 2, 2),
		room.NewBox(10, 0, 2, 2),
		room.NewBox(11, 11, 2, 2),
		room.NewBox(1, 9, 2, 2),
	}
}

// isForest reports whether pairs, taken as undirected edges, contain no cycle.
func isForest(pairs []topology.Pair, n int) bool {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	for _, p := range pairs {
		ra, rb := find(p.A), find(p.B)
		if ra == rb {
			return false
		}
		parent[ra] = rb
	}

	return true
}

func TestTriangulate_Trivial(t *testing.T) {
	assert.Zero(t, topology.Triangulate(nil).Len())
	assert.Zero(t, topology.Triangulate([]room.Box{room.NewBox(0, 0, 1, 1)}).Len())
}

func TestTriangulate_TwoRooms(t *testing.T) {
	rooms := []room.Box{room.NewBox(0, 0, 2, 2), room.NewBox(3, -4, 2, 2)}
	edges := topology.Triangulate(rooms).Edges()

	require.Len(t, edges, 2)
	assert.Equal(t, topology.Edge{From: 0, To: 1, Weight: 7}, edges[0])
	assert.Equal(t, topology.Edge{From: 1, To: 0, Weight: 7}, edges[1])
}

func TestTriangulate_ConvexQuad(t *testing.T) {
	rooms := quadRooms()
	set := topology.Triangulate(rooms)

	// Two triangles share one diagonal: 5 undirected edges, 10 directed.
	assert.Equal(t, 10, set.Len())
	assert.Equal(t, 4, set.Nodes())
	for _, e := range set.Edges() {
		assert.True(t, set.Has(e.To, e.From), "missing reverse of %v", e)
		assert.Equal(t, rooms[e.From].Manhattan(rooms[e.To]), e.Weight)
	}
}

func TestTriangulate_CollinearFallsBackToChain(t *testing.T) {
	rooms := []room.Box{
		room.NewBox(10, 0, 2, 2),
		room.NewBox(0, 0, 2, 2),
		room.NewBox(5, 0, 2, 2),
	}
	set := topology.Triangulate(rooms)

	assert.Equal(t, 4, set.Len())
	assert.True(t, set.Has(1, 2))
	assert.True(t, set.Has(2, 0))
	assert.False(t, set.Has(1, 0))
}

func TestMST_Triangle(t *testing.T) {
	tree := topology.MST(buildTriangle())

	assert.Equal(t, []topology.Pair{{1, 0}, {2, 1}}, tree.Pairs())
}

func TestMST_EmptyInput(t *testing.T) {
	assert.Zero(t, topology.MST(topology.NewWeightedEdgeSet()).Len())
}

func TestMST_ConnectedGivesTree(t *testing.T) {
	rooms := quadRooms()
	tree := topology.MST(topology.Triangulate(rooms))

	assert.Equal(t, len(rooms)-1, tree.Len())
	assert.True(t, isForest(tree.Pairs(), len(rooms)))
}

func TestMST_DisconnectedGivesPartialTree(t *testing.T) {
	s := topology.NewWeightedEdgeSet()
	s.Add(0, 1, 1)
	s.Add(1, 0, 1)
	s.Add(2, 3, 1)
	s.Add(3, 2, 1)

	tree := topology.MST(s)
	assert.Equal(t, []topology.Pair{{1, 0}}, tree.Pairs())
}

func TestMST_FloatWeightsAndPushOrderTies(t *testing.T) {
	build := func(edges ...topology.Edge) *topology.WeightedEdgeSet {
		s := topology.NewWeightedEdgeSet()
		for _, e := range edges {
			s.Add(e.From, e.To, e.Weight)
			s.Add(e.To, e.From, e.Weight)
		}
		return s
	}
	tests := []struct {
		name  string
		edges []topology.Edge
		want  []topology.Pair
	}{
		// Truncated to integers all three weights would tie at 1 and 0—1 would win.
		{"fractional weights", []topology.Edge{{0, 1, 1.9}, {1, 2, 1.1}, {0, 2, 1.0}}, []topology.Pair{{1, 2}, {2, 0}}},
		// Equal weights: root edges were pushed first and pop first.
		{"equal weights", []topology.Edge{{0, 1, 1}, {1, 2, 1}, {0, 2, 1}}, []topology.Pair{{1, 0}, {2, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, topology.MST(build(tc.edges...)).Pairs())
		})
	}
}

func TestAddEdgesBack_Probabilities(t *testing.T) {
	edges := buildTriangle()
	tree := topology.MST(edges)

	none := topology.AddEdgesBack(1, edges, tree, 0)
	assert.Equal(t, tree.Pairs(), none.Pairs())

	all := topology.AddEdgesBack(1, edges, tree, 1)
	assert.Equal(t, []topology.Pair{{0, 2}, {1, 0}, {2, 1}}, all.Pairs())
	assert.Equal(t, 2, tree.Len(), "tree must not be modified")
}

func TestAddEdgesBack_NeverDuplicatesOrientation(t *testing.T) {
	edges := topology.Triangulate(quadRooms())
	tree := topology.MST(edges)

	for seed := int64(1); seed <= 20; seed++ {
		out := topology.AddEdgesBack(seed, edges, tree, 0.5)
		for _, p := range out.Pairs() {
			assert.False(t, out.Has(p.Reverse()), "both orientations of %v present", p)
		}
		assert.GreaterOrEqual(t, out.Len(), tree.Len())
		assert.LessOrEqual(t, out.Len(), edges.Len()/2)
		assert.Equal(t, out.Pairs(), topology.AddEdgesBack(seed, edges, tree, 0.5).Pairs())
	}
}
