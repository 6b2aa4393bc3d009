package layout

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/dungeon/internal/rng"
	"github.com/katalvlaran/dungeon/room"
)

// Separate pushes overlapping boxes apart in SeparationRounds greedy rounds.
//
// boxes[0] is the anchor and never moves. In each round every later box i
// takes its own center vector, normalized, as push direction and is moved out
// of every earlier box it overlaps, in index order. The result depends on input
// order and may still contain overlaps.
//
// A box whose center sits exactly on the origin has no direction; it gets a
// random unit direction from seed. The input slice is not modified.
//
// Complexity: O(R·n²) time with R = SeparationRounds, O(n) memory.
func Separate(boxes []room.Box, seed int64) []room.Box {
	out := append([]room.Box(nil), boxes...)
	var fallback *rand.Rand // built lazily; most runs never need it

	for round := 0; round < SeparationRounds; round++ {
		// Box 0 is the anchor; every later box moves.
		for cur := 1; cur < len(out); cur++ {
			// Push direction: the box center seen from the origin.
			dx, dy := out[cur].CX, out[cur].CY
			norm := math.Hypot(dx, dy)
			// Centered on the origin: no direction, draw one.
			if norm == 0 {
				if fallback == nil {
					fallback = rng.New(seed)
				}
				dx, dy = randomDirection(fallback)
				norm = math.Hypot(dx, dy)
			}
			dx /= norm
			dy /= norm

			// Clear earlier boxes in index order; later pushes may undo earlier ones.
			for fixed := 0; fixed < cur; fixed++ {
				if out[cur].Overlaps(out[fixed]) {
					out[cur].PushAwayFrom(out[fixed], dx, dy)
				}
			}
		}
	}

	return out
}

// randomDirection draws a non-zero vector with components in [-1, 1).
func randomDirection(r *rand.Rand) (float64, float64) {
	for {
		dx, dy := 2*r.Float64()-1, 2*r.Float64()-1
		if dx != 0 || dy != 0 {
			return dx, dy
		}
	}
}

// Overlaps counts the pairs of boxes whose interiors intersect.
//
// Complexity: O(n²).
func Overlaps(boxes []room.Box) int {
	n := 0
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if boxes[i].Overlaps(boxes[j]) {
				n++
			}
		}
	}

	return n
}
