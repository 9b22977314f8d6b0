package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagMoves string
	flagSave  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a list of moves without the UI",
	Long: `Start a game from --seed, apply the given moves and print the result.

Moves are letters (U D L R) or words (up, down, left, right) separated by
spaces or commas. Moves given after the game is over are ignored.

Examples:
  slide2048 run --seed 7 --moves LLUR
  slide2048 run --seed 7 --moves "left, left, up" --save`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&flagMoves, "moves", "m", "", "Moves to play")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Record the session in the journal")
}

func runRun(cmd *cobra.Command, args []string) {
	moves, err := t2048.ParseMoves(flagMoves)
	if err != nil {
		fail("%v", err)
	}
	rules, err := loadRules()
	if err != nil {
		fail("%v", err)
	}

	started := time.Now()
	seed := sessionSeed()
	s, applied, err := t2048.Replay(seed, moves,
		engine.WithPolicy(rules.Policy()),
		engine.WithLogger(logger))
	if err != nil {
		fail("%v", err)
	}

	snap := s.Snapshot()
	fmt.Printf("Seed:  %d\n", seed)
	fmt.Printf("Moves: %d of %d applied\n", applied, len(moves))
	fmt.Printf("Score: %d\n", snap.Score)
	fmt.Printf("State: %s\n", snap.State)
	fmt.Println()
	fmt.Print(formatBoard(snap.Ranks))

	if !flagSave {
		return
	}

	rulesYAML, err := rulesText(rules)
	if err != nil {
		fail("%v", err)
	}
	store, err := storage.Open(settings.DB)
	if err != nil {
		fail("opening journal: %v", err)
	}
	defer store.Close()

	id, err := store.SaveSession(recordFromSession(s, moves[:applied], rulesYAML, started, time.Now()))
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("\nSaved as %s\n", id)
}
