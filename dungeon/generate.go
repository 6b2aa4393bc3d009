package dungeon

import (
	"log/slog"

	"github.com/katalvlaran/dungeon/corridor"
	"github.com/katalvlaran/dungeon/internal/rng"
	"github.com/katalvlaran/dungeon/layout"
	"github.com/katalvlaran/dungeon/room"
	"github.com/katalvlaran/dungeon/tiling"
	"github.com/katalvlaran/dungeon/topology"
)

// Stream identifiers for the per-stage seeds derived from Config.Seed.
const (
	streamSample uint64 = iota + 1
	streamSeparate
	streamAddBack
	streamConnect
)

// Result is the output of one pipeline run. Every field is a fresh value
// owned by the caller; nothing points back into pipeline state.
type Result struct {
	// Rooms are the selected rooms; edge indices refer to this slice.
	Rooms []room.Box
	// Corridors are leftover boxes reclassified as corridor rooms.
	Corridors []room.Box
	// Boxes are the leftover boxes that became neither.
	Boxes []room.Box
	// Triangulation holds the candidate edges, both directions.
	Triangulation []topology.Edge
	// MST holds the spanning-tree links as (child, parent) pairs.
	MST []topology.Pair
	// Connections is MST plus the re-added edges; corridors follow these.
	Connections []topology.Pair
	// Lines are the routed corridor centerlines.
	Lines []room.Line
	// Grid is the rasterized map.
	Grid *tiling.Grid
	// Regions is the number of 4-connected walkable regions of Grid.
	Regions int
}

// Empty reports whether the run produced no rooms at all.
func (r *Result) Empty() bool { return len(r.Rooms) == 0 }

// Generate runs the full pipeline for cfg:
//
//	Sample → Separate → CenterAndCrop → Select → Triangulate → MST →
//	AddEdgesBack → Connect → corridor.Select → Rasterize
//
// Each randomized stage gets its own seed derived from cfg.Seed, so equal
// configurations give identical results.
//
// Errors: cfg.Validate failures (ErrInvalidProbability, ErrInvalidMapSize,
// ErrInvalidCount, ErrInvalidValue). A configuration that samples no boxes,
// such as an inverted uniform range, is not an error: the Result is Empty and
// its Grid is all tiling.Empty.
func Generate(cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := newRunConfig(opts...).logger.With(slog.Int64("seed", cfg.Seed))

	// 1-4. Boxes.
	boxes := layout.Sample(rng.Derive(cfg.Seed, streamSample), cfg.sampleOptions())
	log.Debug("sampled boxes", slog.Int("boxes", len(boxes)), slog.Int("requested", cfg.NumBox))

	boxes = layout.Separate(boxes, rng.Derive(cfg.Seed, streamSeparate))
	log.Debug("separated boxes", slog.Int("residual_overlaps", layout.Overlaps(boxes)))

	boxes = layout.CenterAndCrop(boxes, cfg.MapWidth, cfg.MapHeight)
	log.Debug("cropped boxes", slog.Int("boxes", len(boxes)))

	boxes, rooms := layout.Select(boxes, cfg.NumRooms, cfg.AllowTouching)
	log.Debug("selected rooms", slog.Int("rooms", len(rooms)), slog.Int("requested", cfg.NumRooms))

	// 5-7. Connection graph.
	tri := topology.Triangulate(rooms)
	tree := topology.MST(tri)
	links := topology.AddEdgesBack(rng.Derive(cfg.Seed, streamAddBack), tri, tree, cfg.AddBackProb)
	log.Debug("built connection graph",
		slog.Int("triangulation_edges", tri.Len()),
		slog.Int("mst_edges", tree.Len()),
		slog.Int("connections", links.Len()))

	// 8. Corridors.
	lines := corridor.Connect(rng.Derive(cfg.Seed, streamConnect), rooms, links, cfg.corridorOptions())
	boxes, corridors := corridor.Select(boxes, lines, cfg.MaxRoomSize)
	log.Debug("routed corridors", slog.Int("lines", lines.Len()), slog.Int("corridor_rooms", len(corridors)))

	// 9. Tiles.
	segs := lines.Lines()
	grid, err := tiling.Rasterize(rooms, corridors, segs, cfg.MapWidth, cfg.MapHeight)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Rooms:         rooms,
		Corridors:     corridors,
		Boxes:         boxes,
		Triangulation: tri.Edges(),
		MST:           tree.Pairs(),
		Connections:   links.Pairs(),
		Lines:         segs,
		Grid:          grid,
		Regions:       len(grid.Regions()),
	}
	if res.Empty() {
		log.Warn("generated an empty dungeon; check the box size distributions")
	}
	log.Info("generated dungeon",
		slog.Int("rooms", len(res.Rooms)),
		slog.Int("corridors", len(res.Corridors)),
		slog.Int("regions", res.Regions))

	return res, nil
}
