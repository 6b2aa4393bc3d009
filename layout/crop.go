package layout

import (
	"math"

	"github.com/katalvlaran/dungeon/room"
)

// CenterAndCrop recenters the bag on its rounded mean center and keeps only
// boxes lying fully inside [-mapWidth/2, mapWidth/2] × [-mapHeight/2, mapHeight/2]
// (integer halves). Empty input yields nil.
//
// Complexity: O(n).
func CenterAndCrop(boxes []room.Box, mapWidth, mapHeight int) []room.Box {
	if len(boxes) == 0 {
		return nil
	}

	var sx, sy float64
	for _, b := range boxes {
		sx += b.CX
		sy += b.CY
	}
	cx := math.Round(sx / float64(len(boxes)))
	cy := math.Round(sy / float64(len(boxes)))

	halfW, halfH := float64(mapWidth/2), float64(mapHeight/2)
	kept := make([]room.Box, 0, len(boxes))
	for _, b := range boxes {
		b.Move(-cx, -cy)
		if b.X < -halfW || b.Y < -halfH || b.X+b.W > halfW || b.Y+b.H > halfH {
			continue
		}
		kept = append(kept, b)
	}

	return kept
}
