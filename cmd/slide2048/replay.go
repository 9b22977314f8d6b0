package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a journal entry and verify it",
	Long: `Re-run a recorded session from its seed, rules and moves, and check that
it ends on the recorded board and score. The id may be any unique prefix of
at least four characters.

Examples:
  slide2048 replay 3f2a9c1d`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	store, err := storage.Open(settings.DB)
	if err != nil {
		fail("opening journal: %v", err)
	}
	defer store.Close()

	rec, err := store.Session(args[0])
	if err != nil {
		fail("%v", err)
	}

	res, err := verifyRecord(rec, engine.WithLogger(logger))
	if err != nil && !errors.Is(err, errReplayMismatch) {
		fail("%v", err)
	}

	snap := res.Session.Snapshot()
	fmt.Printf("Session %s (seed %d, %d moves)\n\n", rec.ShortID(), rec.Seed, rec.MoveCount)
	fmt.Print(formatBoard(snap.Ranks))
	fmt.Printf("\nScore: %d (recorded %d)\n", res.Score, rec.Score)

	if err != nil {
		fail("%v", err)
	}
	fmt.Println("Replay matches the journal.")
}
