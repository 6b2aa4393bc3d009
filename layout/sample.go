package layout

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/dungeon/internal/rng"
	"github.com/katalvlaran/dungeon/room"
)

// Sample draws the initial bag of candidate boxes.
//
// Steps:
//  1. Clamp distribution parameters to ≥ 0, radii to ≥ 1, the large-box
//     multiplier to ≥ 0.01. A Uniform class with B < A or B > MaxUniformEdge
//     yields an empty bag.
//  2. Until NumBox distinct boxes exist or MaxIteration draws are spent:
//     a. pick the class: small when u < SmallBoxProb, large otherwise;
//     b. draw w, h from the class distribution, round half away from zero, floor to 1;
//     c. reject (draw spent, no box) when w/h or h/w exceeds the class RatioLimit;
//     d. draw the center in the region, scaling large boxes toward the center
//     for Ellipse;
//     e. keep the box unless another box already has exactly that center.
//  3. Sort by room.ByDistance (stable over room.ByCenter order) and snap the
//     nearest box to the grid.
//
// Complexity: O(MaxIteration + k log k) time, O(k) memory, k = boxes returned.
func Sample(seed int64, opts SampleOptions) []room.Box {
	small := clampDist(opts.Small)
	large := clampDist(opts.Large)
	if !small.valid() || !large.valid() {
		return nil
	}
	rx := math.Max(minRadius, opts.RadiusX)
	ry := math.Max(minRadius, opts.RadiusY)
	mult := math.Max(minRadiusMultiplier, opts.LargeBoxRadiusMultiplier)

	r := rng.New(seed)
	seen := make(map[room.CenterKey]room.Box, max(opts.NumBox, 0))

	for iter := 0; len(seen) < opts.NumBox && iter < opts.MaxIteration; iter++ {
		isLarge := r.Float64() >= opts.SmallBoxProb
		dist := small
		if isLarge {
			dist = large
		}

		w, h := dist.draw(r), dist.draw(r)
		if w/h > dist.RatioLimit || h/w > dist.RatioLimit {
			continue
		}

		var cx, cy float64
		if opts.Region == Rect {
			cx = (r.Float64() - 0.5) * 2 * rx
			cy = (r.Float64() - 0.5) * 2 * ry
		} else {
			t := 2 * math.Pi * r.Float64()
			u := math.Sqrt(r.Float64())
			if isLarge {
				u *= mult
			}
			cx = rx * u * math.Cos(t)
			cy = ry * u * math.Sin(t)
		}

		b := room.NewBox(cx, cy, w, h)
		if _, dup := seen[b.Key()]; !dup {
			seen[b.Key()] = b
		}
	}
	if len(seen) == 0 {
		return nil
	}

	boxes := make([]room.Box, 0, len(seen))
	for _, b := range seen {
		boxes = append(boxes, b)
	}
	// Map order is random: fix the ByCenter order first so the stable
	// distance sort breaks ties the same way on every run.
	sort.Slice(boxes, func(i, j int) bool { return room.ByCenter(boxes[i], boxes[j]) })
	sort.SliceStable(boxes, func(i, j int) bool { return room.ByDistance(boxes[i], boxes[j]) })
	boxes[0].SnapToGrid()

	return boxes
}

// clampDist returns d with negative parameters raised to zero.
func clampDist(d Distribution) Distribution {
	d.A = math.Max(0, d.A)
	d.B = math.Max(0, d.B)

	return d
}

// valid rejects an inverted uniform range and one too wide to draw from.
func (d Distribution) valid() bool {
	return d.Kind == Normal || (d.B >= d.A && d.B <= MaxUniformEdge)
}

// draw returns one edge length: rounded half away from zero, at least 1.
func (d Distribution) draw(r *rand.Rand) float64 {
	var v float64
	if d.Kind == Normal {
		v = r.NormFloat64()*d.B + d.A
	} else {
		lo, hi := int(d.A), int(d.B)
		v = float64(lo + r.Intn(hi-lo+1))
	}

	return math.Max(1, math.Round(v))
}
