package layout

import (
	"sort"

	"github.com/katalvlaran/dungeon/room"
)

// Select greedily picks up to numRooms rooms, largest area first.
//
// A candidate touching (room.Box.Touches) an already accepted room is skipped
// unless allowTouching. Accepted boxes leave the pool; the rest come back as
// remaining, still in descending-area order, for corridor reuse.
//
// Complexity: O(n log n + n·k) time, k = rooms accepted.
func Select(boxes []room.Box, numRooms int, allowTouching bool) (remaining, rooms []room.Box) {
	pool := append([]room.Box(nil), boxes...)
	sort.SliceStable(pool, func(i, j int) bool { return room.ByAreaDesc(pool[i], pool[j]) })

	remaining = make([]room.Box, 0, len(pool))
	for _, cand := range pool {
		if len(rooms) >= numRooms || (!allowTouching && touchesAny(cand, rooms)) {
			remaining = append(remaining, cand)
			continue
		}
		rooms = append(rooms, cand)
	}

	return remaining, rooms
}

func touchesAny(b room.Box, others []room.Box) bool {
	for _, o := range others {
		if o.Touches(b) {
			return true
		}
	}

	return false
}
