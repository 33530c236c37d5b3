package parking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveStops is an obviously-correct one-tile-at-a-time oracle for
// SlideStops: it tries ApplyMove with every possible step count in both
// directions and keeps only the maximal reachable position per direction,
// mirroring the "slow oracle vs. fast implementation" shape of the
// teacher's own bitboard tests.
func naiveStops(t *testing.T, s PuzzleState, vehicleID string) []PuzzleState {
	t.Helper()
	idx, ok := vehicleByID(s, vehicleID)
	require.True(t, ok)
	v := s.Vehicles[idx]

	var stops []PuzzleState
	for _, direction := range []int{1, -1} {
		var furthest *PuzzleState
		for steps := 1; steps <= s.Size; steps++ {
			result, err := ApplyMove(s, MoveRequest{VehicleID: vehicleID, Steps: steps * direction})
			if err != nil {
				break
			}
			st := result.State
			furthest = &st
		}
		if furthest != nil {
			stops = append(stops, *furthest)
		}
	}
	_ = v
	return stops
}

func TestSlideStopsAgainstNaiveOracle(t *testing.T) {
	s := defaultLayout()
	for _, v := range s.Vehicles {
		fast, err := SlideStops(s, v.ID)
		require.NoError(t, err)
		slow := naiveStops(t, s, v.ID)

		require.Equal(t, len(slow), len(fast), "vehicle %s", v.ID)
		for _, want := range slow {
			found := false
			for _, got := range fast {
				if want.Equal(got) {
					found = true
					break
				}
			}
			assert.True(t, found, "vehicle %s: fast SlideStops missing naive result", v.ID)
		}
	}
}

func TestSlideStopsReturnsNoneForBoxedInVehicle(t *testing.T) {
	s := PuzzleState{
		Size: 4,
		Exit: Exit{Row: 0, Col: 3},
		Vehicles: []Vehicle{
			{ID: "X", Row: 0, Col: 0, Length: 2, Orientation: Horizontal, Goal: true},
			{ID: "Blocker", Row: 0, Col: 2, Length: 2, Orientation: Horizontal},
		},
	}
	stops, err := SlideStops(s, "X")
	require.NoError(t, err)
	assert.Empty(t, stops, "X is boxed in on both sides and at the left edge")
}

func TestGenerateAllStopsLabelsCompletion(t *testing.T) {
	s := defaultLayout()
	results, err := GenerateAllStops(s)
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, IsSolved(r.State), r.Completed)
	}
}
