// Package corridor routes corridor centerlines between connected rooms and
// reclassifies small leftover boxes crossed by those lines as corridor rooms.
//
// Connect picks the simplest shape per connection: one straight segment when
// the rooms share enough extent on an axis, an L otherwise. Select then walks
// the boxes the room selector left behind; a small box crossed by a line turns
// into a corridor room, which later widens the corridor on the tile grid.
//
// Segments live in a LineSet keyed by quantized integer coordinates, so equal
// segments from different connections collapse without float set-equality.
package corridor
