package parking

import "github.com/pkg/errors"

// SlideStops yields each state reachable by sliding the chosen vehicle as
// far as possible in a single direction without passing through another
// vehicle or leaving the board. A direction that cannot advance at all
// contributes no child, so horizontal vehicles yield at most two states
// (max left, max right) and vertical vehicles at most two (max up, max
// down). This is the key move generator for the solver: measuring depth
// in relocation events rather than tiles (spec.md §9, Design Note (a)).
func SlideStops(s PuzzleState, vehicleID string) ([]PuzzleState, error) {
	idx, ok := vehicleByID(s, vehicleID)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidMove, "vehicle %q does not exist", vehicleID)
	}
	board, err := buildOccupancy(s.Vehicles, s.Size, vehicleID)
	if err != nil {
		return nil, err
	}

	v := s.Vehicles[idx]
	var stops []PuzzleState

	if v.Orientation == Horizontal {
		c := v.Col
		for c > 0 && board[v.Row][c-1] == "" {
			c--
		}
		if c != v.Col {
			stops = append(stops, withVehicleAt(s, idx, v.Row, c))
		}

		c = v.Col
		for c+v.Length < s.Size && board[v.Row][c+v.Length] == "" {
			c++
		}
		if c != v.Col {
			stops = append(stops, withVehicleAt(s, idx, v.Row, c))
		}
		return stops, nil
	}

	r := v.Row
	for r > 0 && board[r-1][v.Col] == "" {
		r--
	}
	if r != v.Row {
		stops = append(stops, withVehicleAt(s, idx, r, v.Col))
	}

	r = v.Row
	for r+v.Length < s.Size && board[r+v.Length][v.Col] == "" {
		r++
	}
	if r != v.Row {
		stops = append(stops, withVehicleAt(s, idx, r, v.Col))
	}
	return stops, nil
}

func withVehicleAt(s PuzzleState, idx, row, col int) PuzzleState {
	next := s.Clone()
	next.Vehicles[idx].Row = row
	next.Vehicles[idx].Col = col
	return next
}

// GenerateAllStops iterates vehicles in their listed order and yields
// every stop position for every vehicle, each labelled with whether it
// solves the puzzle.
func GenerateAllStops(s PuzzleState) ([]MoveResult, error) {
	var results []MoveResult
	for _, v := range s.Vehicles {
		stops, err := SlideStops(s, v.ID)
		if err != nil {
			return nil, err
		}
		for _, child := range stops {
			results = append(results, MoveResult{State: child, Completed: IsSolved(child)})
		}
	}
	return results, nil
}
