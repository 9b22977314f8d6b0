// slide2048 plays 2048 in the terminal and keeps a journal of every game.
//
// Usage:
//
//	slide2048 play               - Title menu, game and journal browser
//	slide2048 run --moves LLUR   - Play moves headless and print the board
//	slide2048 replay <id>        - Re-run a journal entry and verify it
//	slide2048 journal            - List recent sessions
//	slide2048 rules              - Print the effective rules
//
// Global flags:
//
//	--seed <value>   - RNG seed (0 = random based on time)
//	--fps <rate>     - Tick rate (default: 60)
//	--db <path>      - Journal database (default: ~/.slide2048/journal.db)
//	--rules <path>   - Custom rules YAML
//	--config <path>  - Settings file (default: ~/.slide2048/config.yaml)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/logging"
)

var (
	// Resolved in PersistentPreRunE for every command.
	settings  config.Settings
	logger    = logging.Discard()
	logCloser io.Closer

	flagSettingsFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide2048",
	Short: "2048 in your terminal",
	Long: `slide2048 is the sliding-tile puzzle for the terminal. Every game is
recorded in a local journal so it can be listed and replayed later.

Available commands:
  play     - Interactive game with title menu and journal browser
  run      - Play a move list without the UI
  replay   - Verify a journal entry by replaying it
  journal  - List or delete recorded sessions
  rules    - Print the effective rules YAML

Examples:
  slide2048 play
  slide2048 play --seed 42
  slide2048 run --seed 7 --moves "left, up, up, right"
  slide2048 replay 3f2a9c1d
  slide2048 journal --interactive`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int64("seed", 0, "RNG seed (0 = random based on time)")
	pf.Int("fps", 60, "Tick rate (frames per second)")
	pf.String("db", "~/.slide2048/journal.db", "Path to the session journal")
	pf.String("rules", "", "Path to a custom rules YAML")
	pf.String("log-file", "", "Write logs to this file (rotated)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagSettingsFile, "config", "", "Settings file (default ~/.slide2048/config.yaml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(rulesCmd)
}

// setup resolves settings and builds the logger. The play command owns the
// terminal, so its logs go nowhere unless a log file is set.
func setup(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(cmd.Flags(), flagSettingsFile)
	if err != nil {
		return err
	}
	settings = s

	var fallback io.Writer = os.Stderr
	if cmd == playCmd {
		fallback = io.Discard
	}
	l, closer, err := logging.New(logging.Options{
		File:     s.Log.File,
		Level:    s.Log.Level,
		Prefix:   "slide2048",
		Fallback: fallback,
	})
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	logger.Debug("settings loaded", "db", s.DB, "rules", s.Rules, "fps", s.FPS)
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

// sessionSeed returns the configured seed, or a time-based one.
func sessionSeed() int64 {
	if settings.Seed != 0 {
		return settings.Seed
	}
	return time.Now().UnixNano()
}

// loadRules loads the rules named by settings and logs where they came from.
func loadRules() (config.Rules, error) {
	rules, err := config.LoadRules(settings.Rules)
	if err != nil {
		return config.Rules{}, err
	}
	logger.Debug("rules loaded", "source", rules.Source)
	return rules, nil
}

// fail prints an error to stderr and exits, as every command does on a
// fatal error.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	if logCloser != nil {
		logCloser.Close()
	}
	os.Exit(1)
}

