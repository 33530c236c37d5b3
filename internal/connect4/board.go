// Package connect4 implements the bitboard engine described by core A:
// a 7x6 board encoded as two 49-bit masks, a four-in-a-row detector built
// from shifted-AND convolutions, and the drop/undo pair that keeps the
// board invariant intact across a search tree.
package connect4

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Color is a two-valued tag. Yellow moves first by convention.
type Color int

const (
	Yellow Color = iota
	Red
)

// ColorNames mirrors connect4/datamodel.py's COLOR_NAMES tuple.
var ColorNames = [2]string{"yellow", "red"}

func (c Color) String() string {
	if c != Yellow && c != Red {
		return "unknown"
	}
	return ColorNames[c]
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == Yellow {
		return Red
	}
	return Yellow
}

const (
	// BoardWidth is the number of columns.
	BoardWidth = 7
	// BoardHeight is the number of playable rows per column.
	BoardHeight = 6
	// boardStride is the number of bits reserved per column: the six
	// playable rows plus one sentinel bit used by the legal-move test.
	boardStride = BoardHeight + 1
	// BoardCapacity is the number of cells on the board (42).
	BoardCapacity = BoardWidth * BoardHeight
)

// Bitboard is an unsigned integer with at least 49 significant bits.
type Bitboard uint64

// Precomputed per-column masks, derived once at package init the way
// connect4/datamodel.py builds its module-level tuples.
var (
	columnBottomMask [BoardWidth]Bitboard
	columnTopMask    [BoardWidth]Bitboard
	columnTopSlotMask [BoardWidth]Bitboard
	columnMask       [BoardWidth]Bitboard
)

func init() {
	for c := 0; c < BoardWidth; c++ {
		columnBottomMask[c] = 1 << uint(c*boardStride)
		columnTopMask[c] = 1 << uint(c*boardStride+BoardHeight)
		columnTopSlotMask[c] = 1 << uint(c*boardStride+BoardHeight-1)
		columnMask[c] = Bitboard(0x7F) << uint(c*boardStride)
	}
}

// Sentinel errors for the core error taxonomy (spec §7).
var (
	ErrIllegalColumn = errors.New("column out of range")
	ErrColumnFull    = errors.New("column is full")
	ErrNothingToUndo = errors.New("no move to undo")
)

// MoveResult describes the outcome of a single drop. Exactly one of
// HasWinner/Draw holds, or neither if the game continues.
type MoveResult struct {
	Column int
	Bit    Bitboard
	Winner Color
	HasWinner bool
	Draw   bool
}

// State is the mutable bitboard position for a single match.
type State struct {
	ToPlay     Color
	boards     [2]Bitboard
	mask       Bitboard
	moveCount  int
	lastResult *MoveResult
}

// NewState returns an empty board with the given starting color.
func NewState(starting Color) *State {
	return &State{ToPlay: starting}
}

// Board returns the bitboard owned by the given color.
func (s *State) Board(c Color) Bitboard { return s.boards[c] }

// Mask returns the combined occupancy bitboard.
func (s *State) Mask() Bitboard { return s.mask }

// MoveCount returns the number of stones placed so far.
func (s *State) MoveCount() int { return s.moveCount }

// LastResult returns the result of the most recent drop, or nil if none
// has been played (or the last one was undone).
func (s *State) LastResult() *MoveResult { return s.lastResult }

// LegalColumns yields every column whose top slot is still empty.
func (s *State) LegalColumns() []int {
	cols := make([]int, 0, BoardWidth)
	for c := 0; c < BoardWidth; c++ {
		if s.mask&columnTopSlotMask[c] == 0 {
			cols = append(cols, c)
		}
	}
	return cols
}

// IsColumnPlayable reports whether the column has room, validating the
// column index first.
func (s *State) IsColumnPlayable(column int) (bool, error) {
	if err := validateColumn(column); err != nil {
		return false, err
	}
	return s.mask&columnTopSlotMask[column] == 0, nil
}

func validateColumn(column int) error {
	if column < 0 || column >= BoardWidth {
		return errors.Wrapf(ErrIllegalColumn, "column %d must be in [0,%d)", column, BoardWidth)
	}
	return nil
}

// Drop plays a stone for the side to move into the given column. It
// implements the classic stacked-bitboard increment-and-mask trick:
// adding the column's bottom bit to the occupancy mask and re-masking to
// the column produces exactly the next empty slot's bit.
func (s *State) Drop(column int) (MoveResult, error) {
	if err := validateColumn(column); err != nil {
		return MoveResult{}, err
	}
	if s.mask&columnTopSlotMask[column] != 0 {
		return MoveResult{}, errors.Wrapf(ErrColumnFull, "column %d", column)
	}

	moveBit := (s.mask + columnBottomMask[column]) & columnMask[column]

	owner := s.ToPlay
	updatedBoard := s.boards[owner] | moveBit
	s.boards[owner] = updatedBoard
	s.mask |= moveBit
	s.moveCount++

	result := MoveResult{Column: column, Bit: moveBit}
	if hasConnectFour(updatedBoard) {
		result.Winner = owner
		result.HasWinner = true
	} else if s.moveCount == BoardCapacity {
		result.Draw = true
	}

	s.lastResult = &result
	s.ToPlay = owner.Other()
	return result, nil
}

// UndoLastMove reverses the most recent Drop, restoring ToPlay, mask,
// boards and moveCount exactly. It must be balanced with every Drop made
// inside a search tree (spec §5's single sharp correctness constraint).
func (s *State) UndoLastMove() error {
	last := s.lastResult
	if last == nil {
		return ErrNothingToUndo
	}
	s.ToPlay = s.ToPlay.Other()
	s.boards[s.ToPlay] &^= last.Bit
	s.mask &^= last.Bit
	s.moveCount--
	s.lastResult = nil
	return nil
}

// hasConnectFour reports whether the single-player bitboard b contains a
// four-in-a-row. For each shift direction (vertical, horizontal, the two
// diagonals) it ANDs the board with itself shifted by s, then checks
// whether that intersection still contains a pair 2*s apart. Correctness
// relies on the stride-(height+1) encoding: the unplayable sentinel bit at
// the top of every column prevents horizontal/diagonal runs from
// wrapping into the neighboring column.
func hasConnectFour(b Bitboard) bool {
	for _, shift := range [...]uint{1, boardStride, boardStride - 1, boardStride + 1} {
		t := b & (b >> shift)
		if t&(t>>(2*shift)) != 0 {
			return true
		}
	}
	return false
}

// Snapshot returns a BoardHeight x BoardWidth grid of glyphs. grid[0] is
// bitboard row 0 (the bottom of the stack) with no reversal, even though
// that puts the bottom of the stack at the top of the returned grid. The
// caller picks whichever orientation it needs; the core hands back both
// the raw bitboards (via Board/Mask) and this grid.
func (s *State) Snapshot() [BoardHeight][BoardWidth]byte {
	var grid [BoardHeight][BoardWidth]byte
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = '.'
		}
	}
	for column := 0; column < BoardWidth; column++ {
		for row := 0; row < BoardHeight; row++ {
			bit := Bitboard(1) << uint(column*boardStride+row)
			switch {
			case s.boards[Yellow]&bit != 0:
				grid[row][column] = 'Y'
			case s.boards[Red]&bit != 0:
				grid[row][column] = 'R'
			}
		}
	}
	return grid
}

// PopCount is exposed for invariant tests (spec §8: popcount(mask) ==
// move_count).
func (s *State) PopCount() int {
	return bits.OnesCount64(uint64(s.mask))
}
