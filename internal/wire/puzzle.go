// Package wire shapes the JSON payloads the two cores exchange with an
// embedding host, without opening any transport itself (spec.md §6: HTTP
// and WebSocket hosting are out of scope here).
package wire

import (
	"encoding/json"

	"github.com/gportella/arcade-hub/internal/parking"
	"github.com/pkg/errors"
)

// PuzzleDocument is the on-disk/wire JSON shape for a parking.PuzzleState,
// preserved bit-exact with the field names and nesting the original
// SQLite-backed service persisted (solve_parking_backend/models.py).
type PuzzleDocument struct {
	Size     int               `json:"size"`
	Exit     ExitDocument      `json:"exit"`
	Vehicles []VehicleDocument `json:"vehicles"`
}

// ExitDocument mirrors parking.Exit.
type ExitDocument struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// VehicleDocument mirrors parking.Vehicle, with Orientation spelled out as
// the lowercase strings the original service wrote to disk.
type VehicleDocument struct {
	ID          string `json:"id"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Length      int    `json:"length"`
	Orientation string `json:"orientation"`
	Goal        bool   `json:"goal"`
}

const (
	orientationHorizontal = "horizontal"
	orientationVertical   = "vertical"
)

// EncodePuzzle converts a PuzzleState into its wire document.
func EncodePuzzle(s parking.PuzzleState) PuzzleDocument {
	doc := PuzzleDocument{
		Size:     s.Size,
		Exit:     ExitDocument{Row: s.Exit.Row, Col: s.Exit.Col},
		Vehicles: make([]VehicleDocument, len(s.Vehicles)),
	}
	for i, v := range s.Vehicles {
		doc.Vehicles[i] = VehicleDocument{
			ID:          v.ID,
			Row:         v.Row,
			Col:         v.Col,
			Length:      v.Length,
			Orientation: orientationString(v.Orientation),
			Goal:        v.Goal,
		}
	}
	return doc
}

// DecodePuzzle converts a wire document back into a parking.PuzzleState.
// It does not call parking.ValidateState; callers that need invariant
// checking do that explicitly after decoding.
func DecodePuzzle(doc PuzzleDocument) (parking.PuzzleState, error) {
	s := parking.PuzzleState{
		Size:     doc.Size,
		Exit:     parking.Exit{Row: doc.Exit.Row, Col: doc.Exit.Col},
		Vehicles: make([]parking.Vehicle, len(doc.Vehicles)),
	}
	for i, v := range doc.Vehicles {
		orientation, err := parseOrientation(v.Orientation)
		if err != nil {
			return parking.PuzzleState{}, errors.Wrapf(err, "vehicle %q", v.ID)
		}
		s.Vehicles[i] = parking.Vehicle{
			ID:          v.ID,
			Row:         v.Row,
			Col:         v.Col,
			Length:      v.Length,
			Orientation: orientation,
			Goal:        v.Goal,
		}
	}
	return s, nil
}

func orientationString(o parking.Orientation) string {
	if o == parking.Vertical {
		return orientationVertical
	}
	return orientationHorizontal
}

func parseOrientation(s string) (parking.Orientation, error) {
	switch s {
	case orientationHorizontal:
		return parking.Horizontal, nil
	case orientationVertical:
		return parking.Vertical, nil
	default:
		return 0, errors.Errorf("unknown orientation %q", s)
	}
}

// MarshalPuzzle encodes a PuzzleState directly to JSON bytes.
func MarshalPuzzle(s parking.PuzzleState) ([]byte, error) {
	data, err := json.Marshal(EncodePuzzle(s))
	if err != nil {
		return nil, errors.Wrap(err, "marshal puzzle document")
	}
	return data, nil
}

// UnmarshalPuzzle decodes JSON bytes into a PuzzleState.
func UnmarshalPuzzle(data []byte) (parking.PuzzleState, error) {
	var doc PuzzleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return parking.PuzzleState{}, errors.Wrap(err, "unmarshal puzzle document")
	}
	return DecodePuzzle(doc)
}
