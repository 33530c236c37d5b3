package connect4

import (
	"io"
	"log/slog"
)

// TurnRole tags which participant is responsible for a turn.
type TurnRole int

const (
	PlayerOne TurnRole = iota
	PlayerTwo
	Human
	AI
)

func (r TurnRole) String() string {
	switch r {
	case PlayerOne:
		return "player_one"
	case PlayerTwo:
		return "player_two"
	case Human:
		return "human"
	case AI:
		return "ai"
	default:
		return "unknown"
	}
}

// Mode selects how roles are bound to colors.
type Mode int

const (
	Multiplayer Mode = iota
	Solo
)

// TurnOutcome is returned by PlayTurn.
type TurnOutcome struct {
	Player    Color
	Result    MoveResult
	TurnIndex int
	Role      TurnRole
}

// GameLoop is thin orchestration over a *State: it tracks a turn counter
// and a role binding, and exposes the drop/terminate contract a host
// needs without ever touching I/O itself.
type GameLoop struct {
	state      *State
	mode       Mode
	turnIndex  int
	humanColor Color
	logger     *slog.Logger
}

// NewGameLoop constructs a loop in multiplayer mode: Yellow<->PlayerOne,
// Red<->PlayerTwo.
func NewGameLoop(starting Color, logger *slog.Logger) *GameLoop {
	return newGameLoop(starting, Multiplayer, Yellow, logger)
}

// NewSoloGameLoop constructs a loop with one human-bound color; the other
// color is the AI.
func NewSoloGameLoop(starting Color, humanColor Color, logger *slog.Logger) *GameLoop {
	return newGameLoop(starting, Solo, humanColor, logger)
}

func newGameLoop(starting Color, mode Mode, humanColor Color, logger *slog.Logger) *GameLoop {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &GameLoop{
		state:      NewState(starting),
		mode:       mode,
		humanColor: humanColor,
		logger:     logger,
	}
}

// State exposes the underlying bitboard state for read access.
func (g *GameLoop) State() *State { return g.state }

// LegalColumns delegates to the underlying state.
func (g *GameLoop) LegalColumns() []int { return g.state.LegalColumns() }

// PlayTurn drops a stone for the side to move and advances the turn
// counter, logging the way connect4/game.py's play_turn logged at debug
// level (turn index, column, winner/draw, next color, move count).
func (g *GameLoop) PlayTurn(column int) (TurnOutcome, error) {
	player := g.state.ToPlay
	g.logger.Debug("turn attempt",
		"turn", g.turnIndex+1, "player", player.String(), "column", column)

	result, err := g.state.Drop(column)
	if err != nil {
		return TurnOutcome{}, err
	}
	g.turnIndex++

	g.logger.Debug("turn result",
		"turn", g.turnIndex, "column", column,
		"winner", winnerName(result), "draw", result.Draw,
		"next", g.state.ToPlay.String(), "move_count", g.state.MoveCount())

	return TurnOutcome{
		Player:    player,
		Result:    result,
		TurnIndex: g.turnIndex,
		Role:      g.roleFor(player),
	}, nil
}

// IsOver reports whether the most recent turn ended the game.
func (g *GameLoop) IsOver() bool {
	last := g.state.LastResult()
	return last != nil && (last.HasWinner || last.Draw)
}

// Winner returns the winning color and whether there is one.
func (g *GameLoop) Winner() (Color, bool) {
	last := g.state.LastResult()
	if last == nil {
		return 0, false
	}
	return last.Winner, last.HasWinner
}

// Reset starts a fresh match, optionally handing the opening move to a
// different color so a host can cycle who starts across a session (spec
// §3: "a session may cycle who starts").
func (g *GameLoop) Reset(starting Color) {
	g.state = NewState(starting)
	g.turnIndex = 0
}

func (g *GameLoop) roleFor(color Color) TurnRole {
	if g.mode == Multiplayer {
		if color == Yellow {
			return PlayerOne
		}
		return PlayerTwo
	}
	if color == g.humanColor {
		return Human
	}
	return AI
}

func winnerName(r MoveResult) string {
	if r.HasWinner {
		return r.Winner.String()
	}
	return ""
}
