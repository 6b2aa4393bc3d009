package tiling

// neighborOffsets is 4-connectivity: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Regions finds all 4-connected regions of walkable cells.
// Each region is a slice of row-major cell indices in BFS order; regions are
// listed in the row-major order of their first cell.
//
// A well-formed dungeon is a single region; more than one means a room or
// corridor room was left unreachable.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, len(g.Cells))
	var regions [][]int

	for i0, c := range g.Cells {
		if !c.Walkable() || seen[i0] {
			continue
		}
		// BFS to collect the region.
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			col, row := g.Coordinate(queue[qi])
			for _, d := range neighborOffsets {
				nc, nr := col+d[0], row+d[1]
				if !g.InBounds(nc, nr) {
					continue
				}
				ni := g.index(nc, nr)
				if !seen[ni] && g.Cells[ni].Walkable() {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}
