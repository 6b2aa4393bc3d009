// Package layout implements the box stages of the dungeon pipeline: sampling a
// bag of candidate boxes, pushing overlapping boxes apart, recentering and
// cropping the bag to the map, and selecting the rooms.
//
// Stages
//
//   - Sample(seed, opts) []room.Box
//     Draws up to opts.NumBox boxes with at most opts.MaxIteration draws. Box
//     sizes come from a small or large Distribution (uniform integer or normal),
//     placements from a rectangle or an ellipse. Exact center duplicates are
//     rejected. Output is sorted by room.ByDistance and the nearest box is
//     snapped to the grid to anchor separation.
//
//   - Separate(boxes, seed) []room.Box
//     Ten greedy rounds; each box after the first is pushed away from every
//     earlier box it overlaps, along its own normalized center vector. Residual
//     overlap is allowed; use Overlaps to count it.
//
//   - CenterAndCrop(boxes, mapWidth, mapHeight) []room.Box
//     Shifts the bag by its rounded mean center and drops boxes leaving the map.
//
//   - Select(boxes, numRooms, allowTouching) (remaining, rooms []room.Box)
//     Greedy, largest area first; rooms never touch unless allowTouching.
//
// Determinism
//
//	Every randomized stage builds its own *rand.Rand from the seed it is given.
//	Same seed and inputs ⇒ identical output. Inputs are never mutated; each stage
//	works on a copy.
//
// Errors
//
//	The stages are total. An inverted uniform range (B < A) makes Sample return
//	an empty bag, which is how configuration errors surface at this level.
package layout
