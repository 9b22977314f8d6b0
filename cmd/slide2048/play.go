package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Open the title menu and play.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  P                 - Pause
  R                 - New game
  Esc               - Back to the menu
  ?                 - Full help
  Q/Ctrl+C          - Quit

Every game is saved to the journal when it ends, restarts or is left.

Examples:
  slide2048 play
  slide2048 play --seed 42
  slide2048 play --rules ./easy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// recorder saves the running game to the journal whenever it ends.
type recorder struct {
	store   *storage.Store
	game    *t2048.Game
	rules   string
	started time.Time
}

func (r *recorder) end(reason tui.EndReason) {
	ended := time.Now()
	defer func() { r.started = ended }()

	snap := r.game.Snapshot()
	if snap.Moves == "" {
		return
	}
	if err := r.game.Err(); err != nil {
		logger.Error("engine fault during game", "err", err)
	}
	if r.store == nil {
		return
	}

	id, err := r.store.SaveSession(recordFromSnapshot(snap, r.rules, r.started, ended))
	if err != nil {
		logger.Error("could not save session", "err", err)
		return
	}
	logger.Info("session saved", "id", id, "reason", reason, "score", snap.Score, "moves", len(snap.Moves))
}

func runPlay(cmd *cobra.Command, args []string) {
	rules, err := loadRules()
	if err != nil {
		fail("%v", err)
	}
	rulesYAML, err := rulesText(rules)
	if err != nil {
		fail("%v", err)
	}

	// Open journal storage
	store, err := storage.Open(settings.DB)
	if err != nil {
		logger.Warn("could not open journal", "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.FPS,
		Seed:     settings.Seed,
	}

	game := t2048.New(t2048.WithLogger(logger), t2048.WithPolicy(rules.Policy()))
	rec := &recorder{store: store, game: game, rules: rulesYAML}

	for {
		menu, err := tui.RunMenu(cfg, game.State().Best)
		if err != nil {
			fail("%v", err)
		}
		cfg.ScreenW, cfg.ScreenH = menu.Config.ScreenW, menu.Config.ScreenH

		switch menu.Choice {
		case tui.ChoiceNewGame:
			rec.started = time.Now()
			result, err := tui.RunGame(game, cfg,
				tui.WithSessionEnd(rec.end),
				tui.WithLogger(logger))
			if err != nil {
				fail("%v", err)
			}
			if result.Quit {
				return
			}
			cfg.ScreenW, cfg.ScreenH = result.Config.ScreenW, result.Config.ScreenH
			// Only the first game uses the configured seed.
			cfg.Seed = 0

		case tui.ChoiceJournal:
			var source tui.JournalSource
			if store != nil {
				source = store
			}
			goBack, err := tui.RunJournal(source, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fail("%v", err)
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
