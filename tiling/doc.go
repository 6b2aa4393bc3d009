// Package tiling rasterizes rooms, corridor rooms and corridor lines onto a
// fixed-size tile grid and analyzes the result.
//
// What:
//
//   - Rasterize: the last pipeline stage. Lines become two-tile-wide Path runs,
//     corridor rooms become CorridorRoom, rooms become Room with priority.
//   - Regions: 4-connected walkable regions, to check that the map is one piece.
//   - String: ASCII view ('#' room, '+' corridor room, '.' path, ' ' empty).
//
// Coordinates:
//
//	Cell (col, row) ↔ world (col - Width/2, row - Height/2). The world origin,
//	where the cropper centers the rooms, is the middle of the grid.
//
// Errors:
//
//   - ErrEmptyGrid: zero width or height.
package tiling
