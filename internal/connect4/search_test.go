package connect4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpeningMove is the spec's seed scenario 4.
func TestOpeningMove(t *testing.T) {
	s := NewState(Yellow)
	col, ok, _, err := BestMove(s, 4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, BoardWidth/2, col)
}

// TestSearchAvoidsLoss is the spec's seed scenario 3: Red threatens a
// vertical four in column 0 (rows 0..2), Yellow to move at depth 4 must
// block in column 0.
func TestSearchAvoidsLoss(t *testing.T) {
	s := NewState(Yellow)
	// Build: Red stones stacked at column 0 rows 0..2, Yellow scattered
	// elsewhere, Yellow to move.
	// Yellow plays 1, 3, 5 (no threat of its own) while Red stacks three
	// stones in column 0.
	sequence := []int{1, 0, 3, 0, 5, 0}
	for _, c := range sequence {
		_, err := s.Drop(c)
		require.NoError(t, err)
	}
	require.Equal(t, Yellow, s.ToPlay)

	col, ok, _, err := BestMove(s, 4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, col, "search must block Red's vertical threat in column 0")
}

func TestBestMoveOnFullBoardFails(t *testing.T) {
	// Mark every column's top slot occupied directly; BestMove only cares
	// whether a legal column exists, not how the position was reached.
	s := NewState(Yellow)
	for c := 0; c < BoardWidth; c++ {
		s.mask |= columnMask[c]
	}
	s.moveCount = BoardCapacity

	_, _, _, err := BestMove(s, 4)
	assert.ErrorIs(t, err, ErrBoardFull)
}

func TestDifficultyDepthMapping(t *testing.T) {
	assert.Equal(t, 3, Casual.Depth())
	assert.Equal(t, 5, Standard.Depth())
	assert.Equal(t, 7, Challenger.Depth())
	assert.Equal(t, 9, Expert.Depth())
}
