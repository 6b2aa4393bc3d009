package room_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/dungeon/room"
	"github.com/stretchr/testify/assert"
)

// assertCentered checks the corner/center invariant CX = X + W/2, CY = Y + H/2.
func assertCentered(t *testing.T, b room.Box) {
	t.Helper()
	assert.Equal(t, b.X+b.W/2, b.CX, "CX out of sync for %v", b)
	assert.Equal(t, b.Y+b.H/2, b.CY, "CY out of sync for %v", b)
}

func TestNewBox_DerivesCorner(t *testing.T) {
	b := room.NewBox(1.5, -2, 3, 4)
	assert.Equal(t, 0.0, b.X)
	assert.Equal(t, -4.0, b.Y)
	assertCentered(t, b)
}

func TestBox_MutatorsKeepCenter(t *testing.T) {
	b := room.NewBox(0.3, -0.7, 3, 5)

	b.Move(2.25, -1)
	assertCentered(t, b)

	b.MoveTo(-3.5, 4.5)
	assertCentered(t, b)

	b.SnapToGrid()
	assert.Equal(t, -4.0, b.X) // negative corners floor
	assert.Equal(t, 5.0, b.Y)  // positive corners ceil
	assertCentered(t, b)
}

func TestBox_OverlapIsStrict_TouchIsInclusive(t *testing.T) {
	a := room.NewBox(0, 0, 2, 2)
	edge := room.NewBox(2, 0, 2, 2)    // shares the x=1 edge
	corner := room.NewBox(2, 2, 2, 2)  // shares the (1,1) corner
	inside := room.NewBox(1, 0.5, 2, 2) // interiors intersect
	apart := room.NewBox(5, 5, 2, 2)

	assert.False(t, a.Overlaps(edge))
	assert.True(t, a.Touches(edge))
	assert.False(t, a.Overlaps(corner))
	assert.True(t, a.Touches(corner))
	assert.True(t, a.Overlaps(inside))
	assert.True(t, a.Touches(inside))
	assert.False(t, a.Touches(apart))
}

func TestBox_Manhattan(t *testing.T) {
	a := room.NewBox(1, 2, 1, 1)
	b := room.NewBox(-2, 6, 3, 3)
	assert.Equal(t, 7.0, a.Manhattan(b))
	assert.Equal(t, a.Manhattan(b), b.Manhattan(a))
}

func TestBox_PushAwayFrom_Axis(t *testing.T) {
	fixed := room.NewBox(0, 0, 4, 4) // corner (-2,-2)

	b := room.NewBox(1, 0.5, 2, 2)
	b.PushAwayFrom(fixed, 1, 0)
	assert.Equal(t, 2.0, b.X) // butted against the right side
	assert.Equal(t, -0.5, b.Y)
	assert.False(t, b.Overlaps(fixed))
	assertCentered(t, b)

	b = room.NewBox(0, -1, 2, 2)
	b.PushAwayFrom(fixed, 0, -1)
	assert.Equal(t, -4.0, b.Y)
	assert.False(t, b.Overlaps(fixed))
	assertCentered(t, b)
}

func TestBox_PushAwayFrom_Diagonal(t *testing.T) {
	fixed := room.NewBox(0, 0, 4, 4)
	b := room.NewBox(1, 1, 2, 2)

	b.PushAwayFrom(fixed, 0.6, 0.8)
	assert.False(t, b.Overlaps(fixed), "diagonal push must clear overlap: %v", b)
	assert.Equal(t, b.X, float64(int(b.X)), "corner must be snapped")
	assert.Equal(t, b.Y, float64(int(b.Y)), "corner must be snapped")
	assertCentered(t, b)
}

func TestBox_PushAwayFrom_InvalidDirectionPanics(t *testing.T) {
	fixed := room.NewBox(0, 0, 4, 4)
	b := room.NewBox(1, 1, 2, 2)
	assert.Panics(t, func() { b.PushAwayFrom(fixed, 0, 0) })
}

func TestBox_TouchesLine(t *testing.T) {
	b := room.NewBox(0, 0, 2, 2)

	tests := []struct {
		name string
		line room.Line
		want bool
	}{
		{"horizontal through center", room.Line{X1: -5, Y1: 0, X2: 5, Y2: 0}, true},
		{"horizontal on top edge", room.Line{X1: -5, Y1: -1, X2: 5, Y2: -1}, true},
		{"horizontal ending inside", room.Line{X1: 0.5, Y1: 0.5, X2: 9, Y2: 0.5}, true},
		{"horizontal above", room.Line{X1: -5, Y1: -1.5, X2: 5, Y2: -1.5}, false},
		{"horizontal short of box", room.Line{X1: 3, Y1: 0, X2: 9, Y2: 0}, false},
		{"vertical through center", room.Line{X1: 0, Y1: 9, X2: 0, Y2: -9}, true},
		{"vertical beside", room.Line{X1: 2, Y1: -9, X2: 2, Y2: 9}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.TouchesLine(tc.line))
		})
	}
}

func TestOrderings_AreDistinct(t *testing.T) {
	boxes := []room.Box{
		room.NewBox(5, 0, 1, 1),
		room.NewBox(-1, 0, 1, 1),
		room.NewBox(0, 3, 1, 1),
	}

	byDist := append([]room.Box(nil), boxes...)
	sort.SliceStable(byDist, func(i, j int) bool { return room.ByDistance(byDist[i], byDist[j]) })
	assert.Equal(t, -1.0, byDist[0].CX)
	assert.Equal(t, 3.0, byDist[1].CY)
	assert.Equal(t, 5.0, byDist[2].CX)

	byCenter := append([]room.Box(nil), boxes...)
	sort.SliceStable(byCenter, func(i, j int) bool { return room.ByCenter(byCenter[i], byCenter[j]) })
	assert.Equal(t, -1.0, byCenter[0].CX)
	assert.Equal(t, 0.0, byCenter[1].CX)
	assert.Equal(t, 5.0, byCenter[2].CX)

	assert.Equal(t, boxes[1].Key(), room.NewBox(-1, 0, 7, 7).Key())
}
