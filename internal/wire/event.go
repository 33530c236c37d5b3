package wire

import (
	"github.com/google/uuid"

	"github.com/gportella/arcade-hub/internal/connect4"
)

// EventType tags the single move event this package emits. The wire format
// leaves room for other event types at the host level; the core only ever
// produces "move".
const EventType = "move"

// MoveEvent is the Connect-4 wire event: the JSON shape an embedding host
// emits after every drop, carrying enough to replay or display the move
// without re-deriving it from the bitboard state (spec.md §6).
type MoveEvent struct {
	Type        string `json:"type"`
	GameID      string `json:"gameId"`
	PlayerID    string `json:"playerId"`
	Column      int    `json:"column"`
	Color       int    `json:"color"`
	ColorName   string `json:"colorName"`
	TurnIndex   int    `json:"turnIndex"`
	Bit         uint64 `json:"bit"`
	Winner      *int   `json:"winner"`
	WinnerName  string `json:"winnerName,omitempty"`
	Draw        bool   `json:"draw"`
}

// NewGameID mints a fresh game identifier, mirroring the per-match uuid the
// original session layer (connect_4/backend/src/connect4/sessions.py) minted.
func NewGameID() string {
	return uuid.NewString()
}

// NewMoveEvent builds the wire event for a single drop, given the game and
// player identifiers, the color that moved, the turn index (0-based count
// of moves played before this one), and the MoveResult connect4.Drop
// returned.
func NewMoveEvent(gameID, playerID string, moved connect4.Color, turnIndex int, result connect4.MoveResult) MoveEvent {
	event := MoveEvent{
		Type:      EventType,
		GameID:    gameID,
		PlayerID:  playerID,
		Column:    result.Column,
		Color:     int(moved),
		ColorName: moved.String(),
		TurnIndex: turnIndex,
		Bit:       uint64(result.Bit),
		Draw:      result.Draw,
	}
	if result.HasWinner {
		winner := int(result.Winner)
		event.Winner = &winner
		event.WinnerName = result.Winner.String()
	}
	return event
}
