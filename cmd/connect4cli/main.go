// Command connect4cli is a terminal front end for the Connect-4 core,
// playing human-vs-human or human-vs-AI games from stdin.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gportella/arcade-hub/internal/connect4"
)

func main() {
	var (
		p1Type     string
		p2Type     string
		iterations int
		cpuProfile string
	)

	root := &cobra.Command{
		Use:   "connect4cli",
		Short: "Play Connect-4 against the bitboard engine from a terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile != "" {
				f, err := os.Create(cpuProfile)
				if err != nil {
					return fmt.Errorf("create cpu profile: %w", err)
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return fmt.Errorf("start cpu profile: %w", err)
				}
				defer pprof.StopCPUProfile()
			}
			return run(p1Type, p2Type, iterations)
		},
	}

	root.Flags().StringVar(&p1Type, "p1", "human", "Player 1 type (human/ai)")
	root.Flags().StringVar(&p2Type, "p2", "ai", "Player 2 type (human/ai)")
	// The teacher's MCTS player spends an iteration budget; this core's
	// search is depth-limited alpha-beta instead, so -iterations is kept
	// for flag compatibility but read directly as the search depth (plies).
	root.Flags().IntVar(&iterations, "iterations", connect4.Standard.Depth(), "search depth (plies) for the ai player")
	root.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(p1Type, p2Type string, depth int) error {
	if depth < 1 {
		depth = 1
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	loop := connect4.NewGameLoop(connect4.Yellow, logger)
	reader := bufio.NewReader(os.Stdin)

	playerIsHuman := map[connect4.Color]bool{
		connect4.Yellow: strings.EqualFold(p1Type, "human"),
		connect4.Red:    strings.EqualFold(p2Type, "human"),
	}

	for !loop.IsOver() {
		printBoard(loop.State())
		toPlay := loop.State().ToPlay
		var column int
		if playerIsHuman[toPlay] {
			c, err := promptColumn(reader, toPlay)
			if err != nil {
				return err
			}
			column = c
		} else {
			col, ok, _, err := connect4.BestMove(loop.State(), depth)
			if err != nil {
				return fmt.Errorf("ai move: %w", err)
			}
			if !ok {
				break
			}
			column = col
			fmt.Printf("%s plays column %d\n", toPlay, column+1)
		}

		outcome, err := loop.PlayTurn(column)
		if err != nil {
			fmt.Println("invalid move:", err)
			continue
		}
		if outcome.Result.HasWinner {
			printBoard(loop.State())
			fmt.Printf("%s wins!\n", outcome.Result.Winner)
			return nil
		}
		if outcome.Result.Draw {
			printBoard(loop.State())
			fmt.Println("draw")
			return nil
		}
	}
	return nil
}

func promptColumn(reader *bufio.Reader, toPlay connect4.Color) (int, error) {
	for {
		fmt.Printf("%s, enter a column (1-%d): ", toPlay, connect4.BoardWidth)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > connect4.BoardWidth {
			fmt.Println("enter a number between 1 and", connect4.BoardWidth)
			continue
		}
		return n - 1, nil
	}
}

func printBoard(state *connect4.State) {
	grid := state.Snapshot()
	for _, row := range grid {
		for _, cell := range row {
			fmt.Printf("%c ", cell)
		}
		fmt.Println()
	}
	for c := 1; c <= connect4.BoardWidth; c++ {
		fmt.Printf("%d ", c)
	}
	fmt.Println()
}
