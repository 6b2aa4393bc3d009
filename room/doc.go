// Package room defines the geometric value types shared by every stage of the
// dungeon pipeline: the axis-aligned room Box and the axis-aligned corridor Line.
//
// What:
//
//   - Box keeps its top-left corner (X, Y) and its center (CX, CY) in lockstep.
//     Every mutator (Move, MoveTo, SnapToGrid, PushAwayFrom) rewrites both.
//   - Overlap is strict (shared edges do not overlap); Touching is inclusive.
//   - Two named orderings exist and are never mixed:
//     ByDistance orders by Euclidean distance of the center from the origin,
//     ByCenter orders lexicographically by (CX, CY) and backs deduplication.
//   - Line is a horizontal (Y1 == Y2) or vertical (X1 == X2) segment.
//
// Coordinates are world units with the origin at the map center; Y grows downwards
// once rasterized, but nothing in this package depends on that.
//
// Complexity: every method is O(1).
package room
