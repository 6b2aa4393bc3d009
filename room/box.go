package room

import (
	"fmt"
	"math"
)

// Box is an axis-aligned rectangle candidate for a room or a corridor room.
//
// X, Y is the top-left corner and CX, CY the center. Both pairs are derived
// from each other and W, H; use the methods below to mutate a Box.
type Box struct {
	X, Y   float64
	CX, CY float64
	W, H   float64
}

// NewBox builds a Box from its center and size. The center is recomputed
// from the corner so that CX == X + W/2 holds exactly in floating point.
func NewBox(cx, cy, w, h float64) Box {
	b := Box{W: w, H: h}
	b.MoveTo(cx-w/2, cy-h/2)

	return b
}

// Area returns W*H.
func (b Box) Area() float64 { return b.W * b.H }

// Distance returns the Euclidean distance of the center from the origin.
func (b Box) Distance() float64 { return math.Hypot(b.CX, b.CY) }

// Manhattan returns |ΔCX| + |ΔCY| between the two centers.
func (b Box) Manhattan(o Box) float64 {
	return math.Abs(b.CX-o.CX) + math.Abs(b.CY-o.CY)
}

// Overlaps reports whether the interiors of b and o intersect.
// Boxes sharing only an edge or a corner do not overlap.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.CX-o.CX) < b.W/2+o.W/2 && math.Abs(b.CY-o.CY) < b.H/2+o.H/2
}

// Touches reports whether b and o overlap or share an edge or corner.
func (b Box) Touches(o Box) bool {
	return math.Abs(b.CX-o.CX) <= b.W/2+o.W/2 && math.Abs(b.CY-o.CY) <= b.H/2+o.H/2
}

// TouchesLine reports whether the axis-aligned segment l passes through or
// along b. A horizontal segment must lie within half the height of the center
// and either span CX or end strictly inside the box horizontally; vertical
// segments are symmetric.
func (b Box) TouchesLine(l Line) bool {
	if l.Horizontal() && math.Abs(l.Y1-b.CY) <= b.H/2 {
		if between(b.CX, l.X1, l.X2) ||
			math.Abs(l.X1-b.CX) < b.W/2 || math.Abs(l.X2-b.CX) < b.W/2 {
			return true
		}
	}
	if l.Vertical() && math.Abs(l.X1-b.CX) <= b.W/2 {
		if between(b.CY, l.Y1, l.Y2) ||
			math.Abs(l.Y1-b.CY) < b.H/2 || math.Abs(l.Y2-b.CY) < b.H/2 {
			return true
		}
	}

	return false
}

// Move translates the box by (dx, dy).
func (b *Box) Move(dx, dy float64) {
	b.MoveTo(b.X+dx, b.Y+dy)
}

// MoveTo places the top-left corner at (x, y).
func (b *Box) MoveTo(x, y float64) {
	b.X, b.Y = x, y
	b.CX = x + b.W/2
	b.CY = y + b.H/2
}

// SnapToGrid rounds the corner to integers away from zero.
func (b *Box) SnapToGrid() {
	b.MoveTo(awayFromZero(b.X), awayFromZero(b.Y))
}

// PushAwayFrom moves b out of fixed along the unit direction (dirX, dirY).
//
// An axis-aligned direction butts b against the matching side of fixed and
// leaves the other coordinate untouched. A diagonal direction aims at the
// nearest corner placement of fixed, then keeps whichever of the two
// direction-preserving corrections travels the shorter L1 distance, and snaps
// the result to the grid.
//
// The direction must be finite and non-zero; anything else is a caller bug and
// panics.
func (b *Box) PushAwayFrom(fixed Box, dirX, dirY float64) {
	var tx, ty float64
	switch {
	case dirX > 0 && dirY == 0:
		b.MoveTo(fixed.X+fixed.W, b.Y)
		return
	case dirX < 0 && dirY == 0:
		b.MoveTo(fixed.X-b.W, b.Y)
		return
	case dirX == 0 && dirY > 0:
		b.MoveTo(b.X, fixed.Y+fixed.H)
		return
	case dirX == 0 && dirY < 0:
		b.MoveTo(b.X, fixed.Y-b.H)
		return
	case dirX > 0 && dirY > 0:
		tx, ty = fixed.X+fixed.W, fixed.Y+fixed.H
	case dirX > 0 && dirY < 0:
		tx, ty = fixed.X+fixed.W, fixed.Y-b.H
	case dirX < 0 && dirY > 0:
		tx, ty = fixed.X-b.W, fixed.Y+fixed.H
	case dirX < 0 && dirY < 0:
		tx, ty = fixed.X-b.W, fixed.Y-b.H
	default:
		panic(fmt.Sprintf("room: PushAwayFrom: invalid direction (%v, %v)", dirX, dirY))
	}

	dx := tx - b.X
	dy := ty - b.Y
	// Keep the move on the direction ray: either clear X exactly and scale Y,
	// or clear Y exactly and scale X.
	dx2 := dy / dirY * dirX
	dy2 := dx / dirX * dirY
	if math.Abs(dx)+math.Abs(dy2) < math.Abs(dx2)+math.Abs(dy) {
		tx, ty = b.X+dx, b.Y+dy2
	} else {
		tx, ty = b.X+dx2, b.Y+dy
	}
	b.MoveTo(awayFromZero(tx), awayFromZero(ty))
}

// String renders the box for logs and test failures.
func (b Box) String() string {
	return fmt.Sprintf("Box{c=(%g,%g) %gx%g}", b.CX, b.CY, b.W, b.H)
}

// awayFromZero floors negatives and ceils non-negatives.
func awayFromZero(v float64) float64 {
	if v < 0 {
		return math.Floor(v)
	}

	return math.Ceil(v)
}

// between reports whether v lies in the closed interval spanned by a and b.
func between(v, a, b float64) bool {
	return (a <= v && b >= v) || (a >= v && b <= v)
}
