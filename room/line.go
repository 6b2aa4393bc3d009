package room

import "fmt"

// Line is an axis-aligned corridor centerline from (X1, Y1) to (X2, Y2).
// An L-shaped connection is two Lines.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Horizontal reports Y1 == Y2.
func (l Line) Horizontal() bool { return l.Y1 == l.Y2 }

// Vertical reports X1 == X2.
func (l Line) Vertical() bool { return l.X1 == l.X2 }

// String renders the segment for logs and test failures.
func (l Line) String() string {
	return fmt.Sprintf("Line{(%g,%g)->(%g,%g)}", l.X1, l.Y1, l.X2, l.Y2)
}
