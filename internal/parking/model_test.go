package parking

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultLayout() PuzzleState {
	return PuzzleState{
		Size: 6,
		Exit: Exit{Row: 2, Col: 5},
		Vehicles: []Vehicle{
			{ID: "C", Row: 0, Col: 0, Length: 3, Orientation: Vertical},
			{ID: "A", Row: 0, Col: 3, Length: 2, Orientation: Vertical},
			{ID: "B", Row: 0, Col: 4, Length: 3, Orientation: Vertical},
			{ID: "D", Row: 3, Col: 2, Length: 2, Orientation: Horizontal},
			{ID: "E", Row: 4, Col: 1, Length: 3, Orientation: Horizontal},
			{ID: "F", Row: 3, Col: 5, Length: 2, Orientation: Vertical},
			{ID: "G", Row: 5, Col: 0, Length: 2, Orientation: Horizontal},
			{ID: "H", Row: 5, Col: 2, Length: 2, Orientation: Horizontal},
			{ID: "X", Row: 2, Col: 1, Length: 2, Orientation: Horizontal, Goal: true},
		},
	}
}

func TestCanonicalKeyIgnoresListOrder(t *testing.T) {
	a := defaultLayout()
	b := a.Clone()
	b.Vehicles[0], b.Vehicles[1] = b.Vehicles[1], b.Vehicles[0]
	assert.True(t, a.Equal(b))
}

func TestCanonicalKeyDiffersOnPositionChange(t *testing.T) {
	a := defaultLayout()
	b := a.Clone()
	b.Vehicles[0].Col++
	assert.False(t, a.Equal(b))
}

func TestCloneDoesNotAlias(t *testing.T) {
	a := defaultLayout()
	b := a.Clone()
	b.Vehicles[0].Row = 99
	assert.NotEqual(t, a.Vehicles[0].Row, b.Vehicles[0].Row)
}

// denselyPackedLayout tiles a 12x12 board (the largest size spec.md
// allows) with length-2 horizontal dominoes, producing well over 16
// vehicles without violating any invariant ValidateState enforces.
func denselyPackedLayout() PuzzleState {
	s := PuzzleState{
		Size: 12,
		Exit: Exit{Row: 0, Col: 11},
		Vehicles: []Vehicle{
			{ID: "X", Row: 0, Col: 10, Length: 2, Orientation: Horizontal, Goal: true},
		},
	}
	for row := 1; row < 12; row++ {
		for col := 0; col < 12; col += 2 {
			s.Vehicles = append(s.Vehicles, Vehicle{
				ID:          "F" + strconv.Itoa(row*12+col),
				Row:         row,
				Col:         col,
				Length:      2,
				Orientation: Horizontal,
			})
		}
	}
	return s
}

func TestCanonicalKeySupportsMoreThanSixteenVehicles(t *testing.T) {
	s := denselyPackedLayout()
	require.Greater(t, len(s.Vehicles), 16)
	require.NoError(t, ValidateState(s))
	require.True(t, IsSolved(s))

	b := s.Clone()
	assert.True(t, s.Equal(b))

	b.Vehicles[1].Col++
	assert.False(t, s.Equal(b), "a position change among >16 vehicles must still be distinguishable")

	sv := NewSolver(nil, nil)
	result := sv.Solve(s)
	assert.True(t, result.Solution.Completed)
	assert.Equal(t, 0, result.Moves)
}
