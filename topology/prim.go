package topology

import "container/heap"

// MST computes a minimum spanning tree over the triangulation edges with
// Prim's algorithm grown from room 0.
//
// Steps:
//  1. Count distinct nodes; no edges ⇒ empty tree.
//  2. Build adjacency from the directed edges (both orientations are present
//     in a triangulation, so the adjacency is symmetric).
//  3. Push every edge leaving the root into a min-heap keyed by weight, ties
//     broken by push order.
//  4. Pop the cheapest edge; skip it if its head is already in the tree,
//     otherwise record (head, tail), mark the head and push its outgoing edges
//     toward nodes outside the tree.
//  5. Stop once the heap drains.
//
// The result holds one (child, parent) pair per reached non-root node: n-1
// pairs for a connected graph, fewer when some nodes are unreachable from 0.
// Disconnection is not an error at this level.
//
// Weights are compared as floats and ties pop in push order, so the tree can
// differ from one built on integer-truncated weights when fractional
// distances would truncate to a tie.
//
// Complexity: O(E log E) time, O(V + E) memory.
func MST(edges *WeightedEdgeSet) *EdgeSet {
	tree := NewEdgeSet()
	if edges.Len() == 0 {
		return tree
	}

	// 1-2. Adjacency indexed by node, sized to the largest index seen.
	all := edges.Edges()
	n := 0
	for _, e := range all {
		n = max(n, e.From+1, e.To+1)
	}
	adj := make([][]Edge, n)
	for _, e := range all {
		adj[e.From] = append(adj[e.From], e)
	}

	// 3. Seed the heap from the root.
	const root = 0
	inTree := make([]bool, n)
	inTree[root] = true
	pq := &edgePQ{}
	heap.Init(pq)
	seq := 0
	push := func(from int) {
		for _, e := range adj[from] {
			// Edges into the tree can never be chosen.
			if !inTree[e.To] {
				heap.Push(pq, queued{edge: e, seq: seq})
				seq++
			}
		}
	}
	push(root)

	// 4-5. Grow the tree.
	for pq.Len() > 0 {
		// Cheapest crossing candidate.
		e := heap.Pop(pq).(queued).edge
		// Stale entry: head joined the tree after this edge was queued.
		if inTree[e.To] {
			continue
		}
		// Accept and record (child, parent).
		inTree[e.To] = true
		tree.Add(Pair{e.To, e.From})
		// Expand the frontier from the new node.
		push(e.To)
	}

	return tree
}

// queued is a heap entry: the edge plus its push sequence number.
type queued struct {
	edge Edge
	seq  int
}

// edgePQ implements heap.Interface as a min-heap ordered by weight, then by
// push order so equal weights pop in discovery order.
type edgePQ []queued

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(queued)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
