package tiling

import "strings"

// InBounds reports whether (col, row) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// index maps (col, row) to a row-major index.
func (g *Grid) index(col, row int) int {
	return row*g.Width + col
}

// Coordinate converts a row-major index back to (col, row).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (col, row int) {
	return idx % g.Width, idx / g.Width
}

// World converts a row-major index to origin-centered world coordinates.
func (g *Grid) World(idx int) (x, y int) {
	col, row := g.Coordinate(idx)

	return col - g.Width/2, row - g.Height/2
}

// At returns the tile at (col, row), or Empty outside the grid.
func (g *Grid) At(col, row int) Tile {
	if !g.InBounds(col, row) {
		return Empty
	}

	return g.Cells[g.index(col, row)]
}

// set writes t at (col, row) and ignores out-of-grid cells.
func (g *Grid) set(col, row int, t Tile) {
	if g.InBounds(col, row) {
		g.Cells[g.index(col, row)] = t
	}
}

// Count returns the number of cells holding t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.Cells {
		if c == t {
			n++
		}
	}

	return n
}

// Codes returns the cells as plain integers (0 empty, 1 path, 2 corridor room,
// 3 room) for callers that want the raw tile-code array.
func (g *Grid) Codes() []int {
	out := make([]int, len(g.Cells))
	for i, c := range g.Cells {
		out[i] = int(c)
	}

	return out
}

// String renders one line per row using Tile.Rune.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			sb.WriteRune(g.Cells[g.index(col, row)].Rune())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
