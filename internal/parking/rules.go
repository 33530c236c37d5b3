package parking

import "github.com/pkg/errors"

// occupancy is a size x size grid mapping each cell to the id of the
// vehicle occupying it, or "" if empty. It is the shared building block
// behind ApplyMove and the successor generator (ValidateState fills its
// own grid the same way), mirroring _board_from / validate_state in the
// original solve_parking_backend.
type occupancy [][]string

func buildOccupancy(vehicles []Vehicle, size int, excludeID string) (occupancy, error) {
	grid := make(occupancy, size)
	for i := range grid {
		grid[i] = make([]string, size)
	}
	for _, v := range vehicles {
		if v.ID == excludeID {
			continue
		}
		for _, rc := range cells(v) {
			row, col := rc[0], rc[1]
			if row < 0 || row >= size || col < 0 || col >= size {
				return nil, errors.Wrapf(ErrInvalidPuzzle, "vehicle %q occupies a cell outside the board", v.ID)
			}
			if grid[row][col] != "" {
				return nil, errors.Wrapf(ErrInvalidPuzzle, "overlapping vehicles %q and %q", grid[row][col], v.ID)
			}
			grid[row][col] = v.ID
		}
	}
	return grid, nil
}

// ValidateState fails with ErrInvalidPuzzle if the state violates any of
// the global invariants spec.md §4.4 lists: size too small, exit
// off-board or not on the right edge, duplicate ids, out-of-bounds
// vehicles, a non-horizontal goal vehicle, a goal count other than one,
// or overlapping vehicles.
func ValidateState(s PuzzleState) error {
	if s.Size < 2 {
		return errors.Wrapf(ErrInvalidPuzzle, "board size %d must be at least 2", s.Size)
	}
	if s.Exit.Row < 0 || s.Exit.Row >= s.Size || s.Exit.Col < 0 || s.Exit.Col >= s.Size {
		return errors.Wrap(ErrInvalidPuzzle, "exit is outside the board bounds")
	}
	if s.Exit.Col != s.Size-1 {
		return errors.Wrap(ErrInvalidPuzzle, "exit column must be on the right edge of the board")
	}

	seen := make(map[string]bool, len(s.Vehicles))
	goalCount := 0
	grid := make(occupancy, s.Size)
	for i := range grid {
		grid[i] = make([]string, s.Size)
	}

	for _, v := range s.Vehicles {
		if seen[v.ID] {
			return errors.Wrapf(ErrInvalidPuzzle, "duplicate vehicle identifier %q", v.ID)
		}
		seen[v.ID] = true

		if v.Orientation == Horizontal {
			if v.Col+v.Length > s.Size {
				return errors.Wrapf(ErrInvalidPuzzle, "vehicle %q extends beyond the board horizontally", v.ID)
			}
		} else {
			if v.Row+v.Length > s.Size {
				return errors.Wrapf(ErrInvalidPuzzle, "vehicle %q extends beyond the board vertically", v.ID)
			}
		}

		if v.Goal {
			goalCount++
			if v.Orientation != Horizontal {
				return errors.Wrap(ErrInvalidPuzzle, "goal vehicle must be horizontal")
			}
		}

		for _, rc := range cells(v) {
			row, col := rc[0], rc[1]
			if row < 0 || row >= s.Size || col < 0 || col >= s.Size {
				return errors.Wrapf(ErrInvalidPuzzle, "vehicle %q occupies a cell outside the board", v.ID)
			}
			if grid[row][col] != "" {
				return errors.Wrap(ErrInvalidPuzzle, "overlapping vehicles in puzzle state")
			}
			grid[row][col] = v.ID
		}
	}

	if goalCount != 1 {
		return errors.Wrapf(ErrInvalidPuzzle, "puzzle must contain exactly one goal vehicle, found %d", goalCount)
	}
	return nil
}

// IsSolved reports whether the goal vehicle's rightmost cell coincides
// with the exit.
func IsSolved(s PuzzleState) bool {
	goal, ok := goalVehicle(s)
	if !ok || goal.Orientation != Horizontal {
		return false
	}
	tailCol := goal.Col + goal.Length - 1
	return goal.Row == s.Exit.Row && tailCol == s.Exit.Col
}

// ApplyMove advances one tile at a time for |steps| iterations in the
// direction given by sign(steps), failing with ErrInvalidMove if the
// vehicle doesn't exist, if any intermediate step would leave the board,
// or if it would collide with another vehicle.
func ApplyMove(s PuzzleState, move MoveRequest) (MoveResult, error) {
	idx, ok := vehicleByID(s, move.VehicleID)
	if !ok {
		return MoveResult{}, errors.Wrapf(ErrInvalidMove, "vehicle %q does not exist", move.VehicleID)
	}
	if move.Steps == 0 {
		return MoveResult{}, errors.Wrap(ErrInvalidMove, "steps must be non-zero")
	}

	board, err := buildOccupancy(s.Vehicles, s.Size, move.VehicleID)
	if err != nil {
		return MoveResult{}, err
	}

	target := s.Vehicles[idx]
	direction := 1
	if move.Steps < 0 {
		direction = -1
	}
	steps := move.Steps
	if steps < 0 {
		steps = -steps
	}

	row, col := target.Row, target.Col
	for i := 0; i < steps; i++ {
		if target.Orientation == Horizontal {
			nextCol := col + target.Length
			if direction < 0 {
				nextCol = col - 1
			}
			if nextCol < 0 || nextCol >= s.Size {
				return MoveResult{}, errors.Wrapf(ErrInvalidMove, "vehicle %q would leave the board on the col axis", move.VehicleID)
			}
			if board[row][nextCol] != "" {
				return MoveResult{}, errors.Wrapf(ErrInvalidMove, "vehicle %q is blocked by %q", move.VehicleID, board[row][nextCol])
			}
			col += direction
		} else {
			nextRow := row + target.Length
			if direction < 0 {
				nextRow = row - 1
			}
			if nextRow < 0 || nextRow >= s.Size {
				return MoveResult{}, errors.Wrapf(ErrInvalidMove, "vehicle %q would leave the board on the row axis", move.VehicleID)
			}
			if board[nextRow][col] != "" {
				return MoveResult{}, errors.Wrapf(ErrInvalidMove, "vehicle %q is blocked by %q", move.VehicleID, board[nextRow][col])
			}
			row += direction
		}
	}

	next := s.Clone()
	next.Vehicles[idx].Row = row
	next.Vehicles[idx].Col = col

	return MoveResult{State: next, Completed: IsSolved(next)}, nil
}
