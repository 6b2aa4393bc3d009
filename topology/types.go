package topology

import "sort"

// Pair is an ordered pair of room indices.
type Pair struct {
	A, B int
}

// Reverse returns (B, A).
func (p Pair) Reverse() Pair { return Pair{p.B, p.A} }

// less orders pairs lexicographically by (A, B).
func (p Pair) less(o Pair) bool {
	if p.A != o.A {
		return p.A < o.A
	}

	return p.B < o.B
}

// Edge is a directed room-to-room edge weighted by the Manhattan distance
// between the two room centers.
type Edge struct {
	From, To int
	Weight   float64
}

// Key returns the index pair of e.
func (e Edge) Key() Pair { return Pair{e.From, e.To} }

// WeightedEdgeSet holds triangulation edges keyed by their index pair; the
// weight is payload and never part of the key. The first insertion of a key wins.
type WeightedEdgeSet struct {
	m map[Pair]float64
}

// NewWeightedEdgeSet returns an empty set.
func NewWeightedEdgeSet() *WeightedEdgeSet {
	return &WeightedEdgeSet{m: make(map[Pair]float64)}
}

// Add inserts (from, to, w) unless the pair is already present.
func (s *WeightedEdgeSet) Add(from, to int, w float64) {
	k := Pair{from, to}
	if _, ok := s.m[k]; !ok {
		s.m[k] = w
	}
}

// Has reports whether the directed pair (from, to) is present.
func (s *WeightedEdgeSet) Has(from, to int) bool {
	_, ok := s.m[Pair{from, to}]

	return ok
}

// Len returns the number of directed edges.
func (s *WeightedEdgeSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.m)
}

// Edges returns all edges sorted by (From, To).
func (s *WeightedEdgeSet) Edges() []Edge {
	if s == nil {
		return nil
	}
	out := make([]Edge, 0, len(s.m))
	for k, w := range s.m {
		out = append(out, Edge{From: k.A, To: k.B, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key().less(out[j].Key()) })

	return out
}

// Nodes returns the number of distinct indices appearing in the set.
func (s *WeightedEdgeSet) Nodes() int {
	if s == nil {
		return 0
	}
	seen := make(map[int]struct{}, len(s.m))
	for k := range s.m {
		seen[k.A] = struct{}{}
		seen[k.B] = struct{}{}
	}

	return len(seen)
}

// EdgeSet is a set of ordered index pairs without weights: MST links and the
// final connection set handed to the corridor router.
type EdgeSet struct {
	m map[Pair]struct{}
}

// NewEdgeSet returns a set holding the given pairs.
func NewEdgeSet(pairs ...Pair) *EdgeSet {
	s := &EdgeSet{m: make(map[Pair]struct{}, len(pairs))}
	for _, p := range pairs {
		s.Add(p)
	}

	return s
}

// Add inserts p.
func (s *EdgeSet) Add(p Pair) { s.m[p] = struct{}{} }

// Has reports whether p, in this orientation, is present.
func (s *EdgeSet) Has(p Pair) bool {
	_, ok := s.m[p]

	return ok
}

// HasEither reports whether p is present in either orientation.
func (s *EdgeSet) HasEither(p Pair) bool {
	return s.Has(p) || s.Has(p.Reverse())
}

// Len returns the number of pairs.
func (s *EdgeSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.m)
}

// Pairs returns all pairs sorted by (A, B).
func (s *EdgeSet) Pairs() []Pair {
	if s == nil {
		return nil
	}
	out := make([]Pair, 0, len(s.m))
	for p := range s.m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out
}

// Clone returns an independent copy of s.
func (s *EdgeSet) Clone() *EdgeSet {
	if s == nil {
		return NewEdgeSet()
	}

	return NewEdgeSet(s.Pairs()...)
}
