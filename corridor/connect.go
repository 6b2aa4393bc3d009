package corridor

import (
	"math"

	"github.com/katalvlaran/dungeon/internal/rng"
	"github.com/katalvlaran/dungeon/room"
	"github.com/katalvlaran/dungeon/topology"
)

// Options configures Connect.
type Options struct {
	// OverlapPadding is the minimum shared extent, in tiles, that lets two
	// rooms be joined by one straight segment.
	OverlapPadding int
	// BothDirections emits both L variants for rooms that need an L.
	BothDirections bool
	// FirstHorizontalProb is the chance that a single L starts horizontally.
	FirstHorizontalProb float64
}

// Connect routes a centerline for every connection (A, B) in edges, visited
// in (A, B) order:
//
//   - horizontal extents share at least OverlapPadding: one vertical segment
//     at the middle of the shared x-range, from A.CY to B.CY;
//   - else vertical extents share at least OverlapPadding: one horizontal
//     segment at the middle of the shared y-range, from A.CX to B.CX;
//   - else an L through (B.CX, A.CY) (horizontal first) or (A.CX, B.CY)
//     (vertical first): both when BothDirections, otherwise one chosen by a
//     seeded draw against FirstHorizontalProb.
//
// Edges referring to rooms outside the slice are ignored.
//
// Complexity: O(E log E).
func Connect(seed int64, rooms []room.Box, edges *topology.EdgeSet, opts Options) *LineSet {
	lines := NewLineSet()
	r := rng.New(seed)
	pad := float64(opts.OverlapPadding)

	for _, p := range edges.Pairs() {
		if p.A < 0 || p.B < 0 || p.A >= len(rooms) || p.B >= len(rooms) {
			continue
		}
		a, b := rooms[p.A], rooms[p.B]

		switch {
		case math.Abs(a.CX-b.CX) <= a.W/2+b.W/2-pad:
			x := (math.Max(a.X, b.X) + math.Min(a.X+a.W, b.X+b.W)) / 2
			lines.Add(room.Line{X1: x, Y1: a.CY, X2: x, Y2: b.CY})
		case math.Abs(a.CY-b.CY) <= a.H/2+b.H/2-pad:
			y := (math.Max(a.Y, b.Y) + math.Min(a.Y+a.H, b.Y+b.H)) / 2
			lines.Add(room.Line{X1: a.CX, Y1: y, X2: b.CX, Y2: y})
		case opts.BothDirections:
			addHorizontalFirst(lines, a, b)
			addVerticalFirst(lines, a, b)
		case r.Float64() < opts.FirstHorizontalProb:
			addHorizontalFirst(lines, a, b)
		default:
			addVerticalFirst(lines, a, b)
		}
	}

	return lines
}

func addHorizontalFirst(lines *LineSet, a, b room.Box) {
	lines.Add(room.Line{X1: a.CX, Y1: a.CY, X2: b.CX, Y2: a.CY})
	lines.Add(room.Line{X1: b.CX, Y1: a.CY, X2: b.CX, Y2: b.CY})
}

func addVerticalFirst(lines *LineSet, a, b room.Box) {
	lines.Add(room.Line{X1: a.CX, Y1: a.CY, X2: a.CX, Y2: b.CY})
	lines.Add(room.Line{X1: a.CX, Y1: b.CY, X2: b.CX, Y2: b.CY})
}

// Select moves every box with area ≤ maxRoomSize that touches a corridor line
// (room.Box.TouchesLine) out of the pool and into corridors. Order is kept in
// both outputs; the input is not modified.
//
// Complexity: O(n·L).
func Select(boxes []room.Box, lines *LineSet, maxRoomSize int) (remaining, corridors []room.Box) {
	segs := lines.Lines()
	limit := float64(maxRoomSize)
	remaining = make([]room.Box, 0, len(boxes))

	for _, b := range boxes {
		if b.Area() <= limit && touchesAny(b, segs) {
			corridors = append(corridors, b)
			continue
		}
		remaining = append(remaining, b)
	}

	return remaining, corridors
}

func touchesAny(b room.Box, segs []room.Line) bool {
	for _, l := range segs {
		if b.TouchesLine(l) {
			return true
		}
	}

	return false
}
