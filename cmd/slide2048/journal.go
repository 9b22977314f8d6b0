package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List recorded sessions",
	Long: `Display the most recently finished sessions.

Examples:
  slide2048 journal
  slide2048 journal --limit 50
  slide2048 journal --interactive
  slide2048 journal delete 3f2a9c1d`,
	Args: cobra.NoArgs,
	Run:  runJournal,
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded session",
	Args:  cobra.ExactArgs(1),
	Run:   runJournalDelete,
}

func init() {
	journalCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of sessions to show")
	journalCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the journal in a table view")
	journalCmd.AddCommand(journalDeleteCmd)
}

func runJournal(cmd *cobra.Command, args []string) {
	store, err := storage.Open(settings.DB)
	if err != nil {
		fail("opening journal: %v", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunJournal(store, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	records, err := store.RecentSessions(flagLimit)
	if err != nil {
		fail("%v", err)
	}

	fmt.Println("Journal")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'slide2048 play' to start the journal!")
		return
	}

	fmt.Printf("  %-8s  %-8s  %-6s  %-6s  %-10s  %s\n", "ID", "Score", "Max", "Moves", "State", "Ended")
	fmt.Printf("  %-8s  %-8s  %-6s  %-6s  %-10s  %s\n", "--", "-----", "---", "-----", "-----", "-----")
	for _, r := range records {
		maxTile := 0
		if r.MaxRank > 0 {
			maxTile = 1 << r.MaxRank
		}
		fmt.Printf("  %-8s  %-8d  %-6d  %-6d  %-10s  %s\n",
			r.ShortID(), r.Score, maxTile, r.MoveCount, r.State, r.EndedAt.Local().Format("2006-01-02 15:04"))
	}
}

func runJournalDelete(cmd *cobra.Command, args []string) {
	store, err := storage.Open(settings.DB)
	if err != nil {
		fail("opening journal: %v", err)
	}
	defer store.Close()

	rec, err := store.Session(args[0])
	if err != nil {
		fail("%v", err)
	}
	if err := store.DeleteSession(rec.ID); err != nil {
		fail("%v", err)
	}
	logger.Info("session deleted", "id", rec.ID)
	fmt.Printf("Deleted %s\n", rec.ID)
}
