package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mailopolis/mailopolis/internal/config"
	"github.com/mailopolis/mailopolis/internal/state"
	"github.com/mailopolis/mailopolis/internal/tui"
)

var playNoSave bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game",
	Long: `Start a new game in the interactive terminal interface.

Each turn, pick a policy proposal and submit it. The department heads
negotiate and lobby before the mayor decides; the outcome moves the city's
scoreboard. Turns are saved to the game database unless --no-save is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay()
	},
}

func init() {
	playCmd.Flags().BoolVar(&playNoSave, "no-save", false, "Don't persist turns to the game database")
}

func runPlay() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	engine, collab, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	if collab.offline {
		fmt.Fprintln(os.Stderr, "No API key configured; playing with offline department heads.")
	}

	var sink tui.TurnSink
	gameID := ""
	if !playNoSave {
		db, err := openStateDB(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Game database unavailable, playing without saves: %v\n", err)
		} else {
			defer db.Close()
			gameID, err = db.CreateGame()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Could not record game, playing without saves: %v\n", err)
			} else {
				sink = db
			}
		}
	}

	if w := watchBalance(cfg, engine); w != nil {
		defer w.Close()
	}

	engine.StartNewGame()

	maxTurns := cfg.Game.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 50
	}
	app := tui.NewPlayApp(engine, sink, gameID, maxTurns)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}

	collab.printUsage()

	if db, ok := sink.(*state.DB); ok && gameID != "" {
		status := engine.Status()
		if status.Terminal() {
			if err := db.FinishGame(gameID, status, engine.Summary().Turn); err != nil {
				fmt.Fprintf(os.Stderr, "Could not finalize game record: %v\n", err)
			}
		}
	}

	return nil
}

// openStateDB opens the game database at the configured or default path and
// runs migrations.
func openStateDB(cfg *config.Config) (*state.DB, error) {
	var db *state.DB
	var err error
	if cfg.Storage.DBPath != "" {
		db, err = state.Open(cfg.Storage.DBPath)
	} else {
		db, err = state.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
