package corridor

import (
	"math"
	"sort"

	"github.com/katalvlaran/dungeon/room"
)

// lineScale is the quantization used for line keys. Room coordinates are
// multiples of 1/2 in practice, so 1/1024 keeps distinct segments distinct.
const lineScale = 1024

// lineKey is the canonical integer key of a Line.
type lineKey [4]int64

func keyOf(l room.Line) lineKey {
	q := func(v float64) int64 { return int64(math.Round(v * lineScale)) }

	return lineKey{q(l.X1), q(l.Y1), q(l.X2), q(l.Y2)}
}

func (k lineKey) less(o lineKey) bool {
	for i := range k {
		if k[i] != o[i] {
			return k[i] < o[i]
		}
	}

	return false
}

// LineSet is a set of corridor segments keyed by quantized integer
// coordinates; the float Line is kept as payload. Identical segments produced
// by different connections collapse into one.
type LineSet struct {
	m map[lineKey]room.Line
}

// NewLineSet returns a set holding the given lines.
func NewLineSet(lines ...room.Line) *LineSet {
	s := &LineSet{m: make(map[lineKey]room.Line, len(lines))}
	for _, l := range lines {
		s.Add(l)
	}

	return s
}

// Add inserts l unless an equal segment is present.
func (s *LineSet) Add(l room.Line) {
	k := keyOf(l)
	if _, ok := s.m[k]; !ok {
		s.m[k] = l
	}
}

// Has reports whether l is in the set.
func (s *LineSet) Has(l room.Line) bool {
	_, ok := s.m[keyOf(l)]

	return ok
}

// Len returns the number of segments.
func (s *LineSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.m)
}

// Lines returns the segments in key order.
func (s *LineSet) Lines() []room.Line {
	if s == nil {
		return nil
	}
	keys := make([]lineKey, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	out := make([]room.Line, len(keys))
	for i, k := range keys {
		out[i] = s.m[k]
	}

	return out
}
