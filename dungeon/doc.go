// Package dungeon generates seeded room-and-corridor dungeon layouts.
//
// 🚀 What
//
//	Generate(cfg) runs the whole pipeline and returns rooms, corridor rooms,
//	leftover boxes, the triangulation, the spanning tree, the final
//	connections, the corridor lines and the rasterized tile grid:
//
//	  layout.Sample         random boxes inside an ellipse or a rectangle
//	  layout.Separate       greedy push-apart, 10 rounds
//	  layout.CenterAndCrop  recenter on the mean, drop boxes off the map
//	  layout.Select         largest non-touching boxes become rooms
//	  topology.Triangulate  Delaunay over room centers, Manhattan weights
//	  topology.MST          Prim from room 0
//	  topology.AddEdgesBack re-add some triangulation edges for loops
//	  corridor.Connect      straight or L-shaped centerlines
//	  corridor.Select       small boxes on a line become corridor rooms
//	  tiling.Rasterize      bake everything into a tile grid
//
// ✨ Guarantees
//
//   - Deterministic: same Config ⇒ identical Result, including the grid.
//   - Pure: Generate reads cfg and writes nothing else; callers decide when to re-run.
//   - Total: odd or tiny inputs give smaller dungeons, not errors. Only
//     structurally invalid configs (see Config.Validate) are rejected.
//
// Configuration
//
//	DefaultConfig() gives sane defaults. LoadConfig reads YAML on top of the
//	defaults; Config.Encode writes it back. Options such as WithLogger only
//	affect observation, never the output.
//
// Quick example:
//
//	cfg := dungeon.DefaultConfig()
//	cfg.Seed = 7
//	res, err := dungeon.Generate(cfg)
//	if err != nil { ... }
//	fmt.Print(res.Grid)
package dungeon
