package connect4

import "github.com/pkg/errors"

// ErrBoardFull is returned by BestMove when no legal column remains.
var ErrBoardFull = errors.New("board is full")

// Difficulty maps a human-facing tier to a search depth (spec §6).
type Difficulty int

const (
	Casual Difficulty = iota
	Standard
	Challenger
	Expert
)

// Depth returns the ply count a host should pass to BestMove for this
// difficulty tier.
func (d Difficulty) Depth() int {
	switch d {
	case Casual:
		return 3
	case Challenger:
		return 7
	case Expert:
		return 9
	default:
		return 5 // Standard
	}
}

// terminalScore returns the leaf value for a terminal MoveResult: +1 if
// Yellow wins, -1 if Red wins, 0 on a draw. The second return value is
// false when the result is non-terminal (the game continues).
func terminalScore(result MoveResult) (float64, bool) {
	switch {
	case result.HasWinner && result.Winner == Yellow:
		return 1, true
	case result.HasWinner && result.Winner == Red:
		return -1, true
	case result.Draw:
		return 0, true
	default:
		return 0, false
	}
}

// BestMove drives AI play with depth-limited minimax and alpha-beta
// pruning: Yellow maximises, Red minimises. On an empty board it returns
// the centre column without running the recursion. depth must be >= 1.
func BestMove(state *State, depth int) (column int, hasMove bool, score float64, err error) {
	playable := state.LegalColumns()
	if len(playable) == 0 {
		return 0, false, 0, ErrBoardFull
	}

	if state.MoveCount() == 0 {
		return BoardWidth / 2, true, 0, nil
	}

	best, bestScore := searchRoot(state, depth, playable)
	if best != nil {
		return *best, true, bestScore, nil
	}
	// Fallback: recursion returned nothing despite legal moves existing.
	return playable[0], true, 0, nil
}

func searchRoot(state *State, depth int, playable []int) (*int, float64) {
	maximizing := state.ToPlay == Yellow
	alpha, beta := negInf, posInf

	var bestScore float64
	if maximizing {
		bestScore = negInf
	} else {
		bestScore = posInf
	}
	var best *int

	for _, column := range playable {
		result, err := state.Drop(column)
		if err != nil {
			// Unreachable: column came from LegalColumns.
			continue
		}

		var score float64
		if terminal, ok := terminalScore(result); ok {
			score = terminal
		} else if depth <= 1 {
			score = 0
		} else {
			score = negamaxScore(state, depth-1, alpha, beta)
		}

		// The recursion's own undos clear the single-slot record; re-arm it
		// with this drop so the undo below removes exactly this stone.
		state.lastResult = &result
		_ = state.UndoLastMove()

		if best == nil || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			c := column
			best = &c
		}
		if maximizing {
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if bestScore < beta {
				beta = bestScore
			}
		}
		if beta <= alpha {
			break
		}
	}
	return best, bestScore
}

const (
	posInf = 1 << 30
	negInf = -(1 << 30)
)

// negamaxScore recurses below the root. Every Drop inside this function is
// balanced by an UndoLastMove before trying the next sibling column, which
// is the one correctness constraint spec §5 calls out by name.
func negamaxScore(state *State, depth int, alpha, beta float64) float64 {
	playable := state.LegalColumns()
	if len(playable) == 0 {
		return 0
	}

	maximizing := state.ToPlay == Yellow
	var best float64
	if maximizing {
		best = negInf
	} else {
		best = posInf
	}

	for _, column := range playable {
		result, err := state.Drop(column)
		if err != nil {
			continue
		}

		var score float64
		if terminal, ok := terminalScore(result); ok {
			score = terminal
		} else if depth == 1 {
			score = 0
		} else {
			score = negamaxScore(state, depth-1, alpha, beta)
		}

		state.lastResult = &result
		_ = state.UndoLastMove()

		if maximizing {
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
