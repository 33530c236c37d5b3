package parking

import (
	"log/slog"
	"math/rand"
	"time"
)

// MaxIterations bounds the BFS's work; exceeding it surfaces as a
// non-completed result rather than corrupting state (spec §7,
// ResourceExhausted).
const MaxIterations = 1_000_000

// SolveResult is the public outcome of a Solve call.
type SolveResult struct {
	Solution  MoveResult
	Moves     int
	Path      []PuzzleState
	ElapsedMS float64
}

// Solver runs the breadth-first search described by spec.md §4.6. It
// keeps no state between calls to Solve; the visited map and arena are
// local scratch freed on return, per spec §5.
type Solver struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewSolver constructs a Solver. A nil logger silences solver tracing; a
// nil clock defaults to time.Now. Both are injected rather than read
// globally so the core never reaches for ambient state on its own
// (spec §5: "the core ... never reaches for a clock beyond optional
// timing of the solver").
func NewSolver(logger *slog.Logger, clock func() time.Time) *Solver {
	if clock == nil {
		clock = time.Now
	}
	return &Solver{logger: logger, now: clock}
}

// node is one arena entry: the state it holds, the BFS depth it was
// discovered at, and an index back into the arena for its parent. Using
// indices instead of pointers avoids reference cycles and gives O(1)
// rollback during path reconstruction (spec.md §9, "cyclic ownership").
type node struct {
	state  PuzzleState
	depth  int
	parent int // -1 for the root
}

// Solve performs a breadth-first search over stop-position successors
// starting from state, returning the optimal (fewest relocation events)
// path to a solved configuration, or Solution.Completed == false if none
// is found within MaxIterations expansions.
func (sv *Solver) Solve(state PuzzleState) SolveResult {
	start := sv.now()

	arena := []node{{state: state, depth: 0, parent: -1}}
	visited := map[CanonicalKey]int{state.Canonicalize(): 0}
	queue := []int{0}

	if IsSolved(state) {
		return sv.finish(arena, 0, SolveResult{
			Solution: MoveResult{State: state, Completed: true},
			Moves:    0,
		}, start)
	}

	iterations := 0
	for len(queue) > 0 {
		iterations++
		if iterations > MaxIterations {
			sv.log("solve: iteration cap exceeded")
			break
		}

		currentIdx := queue[0]
		queue = queue[1:]
		current := arena[currentIdx]

		children, err := GenerateAllStops(current.state)
		if err != nil {
			sv.log("solve: successor generation failed", "error", err)
			continue
		}

		for _, child := range children {
			childKey := child.State.Canonicalize()
			childDepth := current.depth + 1

			if best, seen := visited[childKey]; seen && best <= childDepth {
				continue
			}
			visited[childKey] = childDepth

			childIdx := len(arena)
			arena = append(arena, node{state: child.State, depth: childDepth, parent: currentIdx})

			if child.Completed {
				return sv.finish(arena, childIdx, SolveResult{
					Solution: child,
					Moves:    childDepth,
				}, start)
			}
			queue = append(queue, childIdx)
		}
	}

	return SolveResult{Solution: MoveResult{State: state, Completed: false}, Moves: 0}
}

// finish reconstructs the path by walking parent indices back from
// terminalIdx to the root, then reversing.
func (sv *Solver) finish(arena []node, terminalIdx int, result SolveResult, start time.Time) SolveResult {
	var reversed []PuzzleState
	for idx := terminalIdx; idx != -1; idx = arena[idx].parent {
		reversed = append(reversed, arena[idx].state)
	}
	path := make([]PuzzleState, len(reversed))
	for i, s := range reversed {
		path[len(reversed)-1-i] = s
	}
	result.Path = path
	result.ElapsedMS = float64(sv.now().Sub(start).Microseconds()) / 1000.0
	sv.log("solve: found solution", "moves", result.Moves, "states_explored", len(arena))
	return result
}

func (sv *Solver) log(msg string, args ...any) {
	if sv.logger != nil {
		sv.logger.Debug(msg, args...)
	}
}

// exitDistance computes how far the goal vehicle's trailing edge is from
// the exit: a positive value means the goal vehicle should still advance.
func exitDistance(s PuzzleState, goal Vehicle) int {
	if goal.Orientation == Horizontal {
		return s.Exit.Col - goal.Col - goal.Length + 1
	}
	return s.Exit.Row - goal.Row - goal.Length + 1
}

// RandomMove implements the intended behavior spec.md §9 Design Note (b)
// settles on: prefer advancing the goal vehicle toward the exit when
// that slide is legal, otherwise fall back to relocating a uniformly
// chosen random non-goal vehicle one maximal stop in a random direction.
// If neither succeeds the state is returned unchanged with
// Completed == false, matching the Python original's no-op-on-failure
// shape.
func RandomMove(s PuzzleState, rng *rand.Rand) MoveResult {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	goal, ok := goalVehicle(s)
	if ok {
		if d := exitDistance(s, goal); d != 0 {
			if result, err := ApplyMove(s, MoveRequest{VehicleID: goal.ID, Steps: d}); err == nil {
				return result
			}
		}
	}

	var candidates []Vehicle
	for _, v := range s.Vehicles {
		if !v.Goal {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return MoveResult{State: s, Completed: false}
	}
	chosen := candidates[rng.Intn(len(candidates))]

	stops, err := SlideStops(s, chosen.ID)
	if err != nil || len(stops) == 0 {
		return MoveResult{State: s, Completed: false}
	}
	picked := stops[rng.Intn(len(stops))]
	return MoveResult{State: picked, Completed: IsSolved(picked)}
}
