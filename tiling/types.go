package tiling

import "errors"

// ErrEmptyGrid indicates a grid with zero width or height was requested.
var ErrEmptyGrid = errors.New("tiling: grid must have at least one row and one column")

// Tile is the code stored in one grid cell.
type Tile uint8

const (
	// Empty is solid rock.
	Empty Tile = iota
	// Path is a tile on a corridor centerline run.
	Path
	// CorridorRoom is a tile inside a leftover box reused as corridor.
	CorridorRoom
	// Room is a tile inside a selected room.
	Room
)

// Walkable reports whether t is anything but Empty.
func (t Tile) Walkable() bool { return t != Empty }

// Rune returns the ASCII glyph used by Grid.String.
func (t Tile) Rune() rune {
	switch t {
	case Path:
		return '.'
	case CorridorRoom:
		return '+'
	case Room:
		return '#'
	default:
		return ' '
	}
}

// Grid is the rasterized map: Width*Height cells in row-major order.
//
// Cell index row*Width+col corresponds to the world coordinate
// (col - Width/2, row - Height/2); the world origin is the grid center.
type Grid struct {
	Width, Height int
	Cells         []Tile
}

// NewGrid allocates an all-Empty grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{Width: width, Height: height, Cells: make([]Tile, width*height)}, nil
}
