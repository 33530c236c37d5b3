// Package parking implements core B, the sliding-vehicle ("parking")
// puzzle: the board/vehicle model, the slide-until-blocked successor
// function, the legality checker, the goal predicate, and a breadth-first
// optimal solver over canonicalised states.
package parking

import (
	"sort"
	"strconv"
	"strings"
)

// Orientation is a closed two-valued tag.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Vehicle occupies Length contiguous cells starting at (Row, Col), either
// extending right (Horizontal) or down (Vertical). Exactly one vehicle in
// a valid PuzzleState has Goal set, and it must be Horizontal.
type Vehicle struct {
	ID          string
	Row, Col    int
	Length      int
	Orientation Orientation
	Goal        bool
}

// Exit is the cell the goal vehicle's trailing edge must reach. Col must
// equal size-1 (the right edge) for a valid puzzle.
type Exit struct {
	Row, Col int
}

// PuzzleState is a value object: every mutating operation in this package
// returns a fresh PuzzleState and leaves its input unchanged.
type PuzzleState struct {
	Size     int
	Exit     Exit
	Vehicles []Vehicle
}

// Clone returns a deep copy so callers (and this package's own successor
// generators) can mutate freely without aliasing the input.
func (s PuzzleState) Clone() PuzzleState {
	vehicles := make([]Vehicle, len(s.Vehicles))
	copy(vehicles, s.Vehicles)
	return PuzzleState{Size: s.Size, Exit: s.Exit, Vehicles: vehicles}
}

// vehicleKey is the 5-tuple spec.md uses to define state equality, for a
// single vehicle.
type vehicleKey struct {
	id          string
	orientation Orientation
	length      int
	row, col    int
}

// CanonicalKey derives a value such that two states are equal as puzzle
// configurations iff their keys are equal: size, exit, and the vehicle
// list sorted by id (spec.md §3's "canonical key uses vehicles sorted by
// id"). The vehicle list is folded into a single string rather than a
// fixed-size array: spec.md bounds board size (2..12) but places no cap
// on vehicle count, so the key must stay comparable (and usable as a map
// key in Solver.Solve) for any number of vehicles a valid state can hold.
type CanonicalKey struct {
	size    int
	exitRow int
	exitCol int
	digest  string
}

// Canonicalize builds the comparable canonical key for a state.
func (s PuzzleState) Canonicalize() CanonicalKey {
	keys := make([]vehicleKey, len(s.Vehicles))
	for i, v := range s.Vehicles {
		keys[i] = vehicleKey{id: v.ID, orientation: v.Orientation, length: v.Length, row: v.Row, col: v.Col}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].id < keys[j].id })

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k.id)
		b.WriteByte(';')
		b.WriteByte(byte('0' + k.orientation))
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(k.length))
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(k.row))
		b.WriteByte(';')
		b.WriteString(strconv.Itoa(k.col))
		b.WriteByte('|')
	}

	return CanonicalKey{
		size:    s.Size,
		exitRow: s.Exit.Row,
		exitCol: s.Exit.Col,
		digest:  b.String(),
	}
}

// Equal reports whether two states represent the same configuration per
// spec.md §3's equality rule.
func (s PuzzleState) Equal(other PuzzleState) bool {
	return s.Canonicalize() == other.Canonicalize()
}

// MoveRequest is a single-vehicle relocation request. Positive Steps move
// right for horizontal vehicles, down for vertical ones.
type MoveRequest struct {
	VehicleID string
	Steps     int
}

// MoveResult pairs the resulting state with whether it solves the puzzle.
type MoveResult struct {
	State     PuzzleState
	Completed bool
}

// goalVehicle returns the puzzle's single goal vehicle and whether one was
// found. validate_state guarantees exactly one exists for any state this
// package is asked to operate on past validation.
func goalVehicle(s PuzzleState) (Vehicle, bool) {
	for _, v := range s.Vehicles {
		if v.Goal {
			return v, true
		}
	}
	return Vehicle{}, false
}

func vehicleByID(s PuzzleState, id string) (int, bool) {
	for i, v := range s.Vehicles {
		if v.ID == id {
			return i, true
		}
	}
	return -1, false
}

// cells returns every grid coordinate occupied by v.
func cells(v Vehicle) [][2]int {
	coords := make([][2]int, v.Length)
	for offset := 0; offset < v.Length; offset++ {
		if v.Orientation == Horizontal {
			coords[offset] = [2]int{v.Row, v.Col + offset}
		} else {
			coords[offset] = [2]int{v.Row + offset, v.Col}
		}
	}
	return coords
}
