package connect4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameLoopMultiplayerRoles(t *testing.T) {
	g := NewGameLoop(Yellow, nil)
	out, err := g.PlayTurn(3)
	require.NoError(t, err)
	assert.Equal(t, PlayerOne, out.Role)
	assert.Equal(t, Yellow, out.Player)
	assert.Equal(t, 1, out.TurnIndex)

	out, err = g.PlayTurn(2)
	require.NoError(t, err)
	assert.Equal(t, PlayerTwo, out.Role)
	assert.Equal(t, Red, out.Player)
}

func TestGameLoopSoloRoles(t *testing.T) {
	g := NewSoloGameLoop(Yellow, Red, nil)
	out, err := g.PlayTurn(3)
	require.NoError(t, err)
	assert.Equal(t, AI, out.Role, "human plays Red, so Yellow's turn is the AI")

	out, err = g.PlayTurn(2)
	require.NoError(t, err)
	assert.Equal(t, Human, out.Role)
}

func TestGameLoopIsOverAndWinner(t *testing.T) {
	g := NewGameLoop(Yellow, nil)
	for _, c := range []int{0, 1, 0, 1, 0, 1, 0} {
		_, err := g.PlayTurn(c)
		require.NoError(t, err)
	}
	assert.True(t, g.IsOver())
	w, ok := g.Winner()
	assert.True(t, ok)
	assert.Equal(t, Yellow, w)
}

func TestGameLoopResetCyclesStartingColor(t *testing.T) {
	g := NewGameLoop(Yellow, nil)
	_, err := g.PlayTurn(0)
	require.NoError(t, err)

	g.Reset(Red)
	assert.Equal(t, Red, g.State().ToPlay)
	assert.Equal(t, 0, g.State().MoveCount())
}
