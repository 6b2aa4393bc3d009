package room

// Less is a strict weak ordering over boxes.
type Less func(a, b Box) bool

// ByDistance orders boxes by the distance of their centers from the origin.
// The sampler uses it to pick the anchor box for separation.
func ByDistance(a, b Box) bool {
	return a.Distance() < b.Distance()
}

// ByCenter orders boxes lexicographically by (CX, CY). Two boxes are equal
// under ByCenter exactly when their centers coincide, which is what
// deduplication keys on.
func ByCenter(a, b Box) bool {
	if a.CX != b.CX {
		return a.CX < b.CX
	}

	return a.CY < b.CY
}

// ByAreaDesc orders boxes from the largest area to the smallest.
func ByAreaDesc(a, b Box) bool {
	return a.Area() > b.Area()
}

// CenterKey is the comparable dedup key of a box under ByCenter.
type CenterKey struct{ CX, CY float64 }

// Key returns the ByCenter key of b.
func (b Box) Key() CenterKey { return CenterKey{b.CX, b.CY} }
