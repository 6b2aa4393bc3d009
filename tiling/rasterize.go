package tiling

import (
	"math"

	"github.com/katalvlaran/dungeon/room"
)

// Rasterize bakes corridor lines, corridor rooms and rooms into a new grid.
//
// Steps:
//  1. Allocate a zero grid of mapWidth*mapHeight.
//  2. Each line marks a two-tile-thick run with Path: the run covers
//     floor(lo-0.5) ≤ t < ceil(hi+0.5) along the segment, on the rows (or
//     columns) floor(c-0.5) and floor(c+0.5) around its fixed coordinate.
//  3. Each corridor box fills its footprint with CorridorRoom.
//  4. Each room fills its footprint with Room, last, so rooms win every cell
//     they cover.
//
// World coordinates are shifted by (mapWidth/2, mapHeight/2) onto the grid and
// box corners are truncated toward zero. Cells falling outside the grid are
// skipped.
//
// Complexity: O(W·H + Σ line lengths + Σ box areas).
func Rasterize(rooms, corridors []room.Box, lines []room.Line, mapWidth, mapHeight int) (*Grid, error) {
	g, err := NewGrid(mapWidth, mapHeight)
	if err != nil {
		return nil, err
	}
	halfW, halfH := float64(mapWidth/2), float64(mapHeight/2)

	// Corridor lines first; boxes overwrite them.
	for _, l := range lines {
		// Shift world coordinates onto the grid.
		x1, y1 := l.X1+halfW, l.Y1+halfH
		x2, y2 := l.X2+halfW, l.Y2+halfH
		switch {
		case l.Horizontal():
			// Two rows straddling the centerline, padded half a tile at each end.
			lo, hi := math.Min(x1, x2), math.Max(x1, x2)
			r1, r2 := int(math.Floor(y1-0.5)), int(math.Floor(y1+0.5))
			for x := int(math.Floor(lo - 0.5)); x < int(math.Ceil(hi+0.5)); x++ {
				g.set(x, r1, Path)
				g.set(x, r2, Path)
			}
		case l.Vertical():
			// Same with two columns.
			lo, hi := math.Min(y1, y2), math.Max(y1, y2)
			c1, c2 := int(math.Floor(x1-0.5)), int(math.Floor(x1+0.5))
			for y := int(math.Floor(lo - 0.5)); y < int(math.Ceil(hi+0.5)); y++ {
				g.set(c1, y, Path)
				g.set(c2, y, Path)
			}
		}
	}

	// Corridor rooms over paths.
	for _, b := range corridors {
		g.fill(b, halfW, halfH, CorridorRoom)
	}
	// Rooms last, so they win.
	for _, b := range rooms {
		g.fill(b, halfW, halfH, Room)
	}

	return g, nil
}

// fill writes t over the footprint of b shifted by (halfW, halfH).
func (g *Grid) fill(b room.Box, halfW, halfH float64, t Tile) {
	x0, y0 := int(b.X+halfW), int(b.Y+halfH)
	for y := y0; float64(y) < b.Y+b.H+halfH; y++ {
		for x := x0; float64(x) < b.X+b.W+halfW; x++ {
			g.set(x, y, t)
		}
	}
}
