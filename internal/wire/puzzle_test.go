package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gportella/arcade-hub/internal/parking"
)

func sampleState() parking.PuzzleState {
	return parking.PuzzleState{
		Size: 6,
		Exit: parking.Exit{Row: 2, Col: 5},
		Vehicles: []parking.Vehicle{
			{ID: "X", Row: 2, Col: 1, Length: 2, Orientation: parking.Horizontal, Goal: true},
			{ID: "C", Row: 0, Col: 0, Length: 3, Orientation: parking.Vertical},
		},
	}
}

func TestMarshalUnmarshalPuzzleRoundTrips(t *testing.T) {
	s := sampleState()
	data, err := MarshalPuzzle(s)
	require.NoError(t, err)

	got, err := UnmarshalPuzzle(data)
	require.NoError(t, err)
	assert.True(t, s.Equal(got))
}

func TestMarshalPuzzleFieldNamesMatchWireFormat(t *testing.T) {
	data, err := MarshalPuzzle(sampleState())
	require.NoError(t, err)

	s := string(data)
	for _, want := range []string{
		`"size":6`,
		`"exit":{"row":2,"col":5}`,
		`"id":"X"`,
		`"orientation":"horizontal"`,
		`"orientation":"vertical"`,
		`"goal":true`,
	} {
		assert.Contains(t, s, want)
	}
}

func TestUnmarshalPuzzleRejectsUnknownOrientation(t *testing.T) {
	_, err := UnmarshalPuzzle([]byte(`{"size":6,"exit":{"row":0,"col":5},
		"vehicles":[{"id":"X","row":0,"col":0,"length":2,"orientation":"diagonal","goal":true}]}`))
	assert.Error(t, err)
}
