package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mailopolis/mailopolis/internal/config"
	"github.com/mailopolis/mailopolis/internal/state"
	"github.com/mailopolis/mailopolis/pkg/models"
)

var gamesPurge bool

var gamesCmd = &cobra.Command{
	Use:   "games [game-id]",
	Short: "List saved games or show one game's history",
	Long: `Without arguments, lists all saved games. With a game ID, prints that
game's turn-by-turn history. --purge deletes finished games older than 30 days.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		db, err := openStateDB(cfg)
		if err != nil {
			return fmt.Errorf("open game database: %w", err)
		}
		defer db.Close()

		if gamesPurge {
			purged, err := db.PurgeOldGames(30 * 24 * time.Hour)
			if err != nil {
				return err
			}
			fmt.Printf("Purged %d old games.\n", purged)
			return nil
		}

		if len(args) == 1 {
			return showGameHistory(db, args[0])
		}
		return listGames(db)
	},
}

func init() {
	gamesCmd.Flags().BoolVar(&gamesPurge, "purge", false, "Delete finished games older than 30 days")
}

func listGames(db *state.DB) error {
	games, err := db.ListGames()
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Println("No saved games.")
		return nil
	}

	bold := color.New(color.Bold)
	for _, g := range games {
		bold.Printf("%s", g.ID)
		fmt.Printf("  %s", g.StartedAt.Local().Format("2006-01-02 15:04"))
		fmt.Printf("  %s", statusLabel(g.Status))
		if g.FinalTurn > 0 {
			fmt.Printf("  (turn %d)", g.FinalTurn)
		}
		fmt.Println()
	}
	return nil
}

func showGameHistory(db *state.DB, gameID string) error {
	record, err := db.Game(gameID)
	if err != nil {
		return err
	}
	history, err := db.TurnHistory(gameID)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	bold.Printf("Game %s: %s\n\n", record.ID, statusLabel(record.Status))
	for _, turn := range history {
		fmt.Printf("Turn %d: %s [%s] ", turn.TurnNumber, turn.Proposal.Title, turn.Proposal.TargetDepartment)
		if turn.Decision.MayorDecision.Accept {
			green.Println("APPROVED")
		} else {
			red.Println("REJECTED")
		}
		stats := turn.CityStats
		fmt.Printf("  sustainability %d · approval %d · happiness %d · budget $%d\n",
			stats.SustainabilityScore, stats.PublicApproval,
			stats.PopulationHappiness, stats.Budget)
	}
	return nil
}

func statusLabel(status models.GameStatus) string {
	switch status {
	case models.StatusVictory:
		return color.GreenString("victory")
	case models.StatusDefeat:
		return color.RedString("defeat")
	case models.StatusOngoing:
		return "ongoing"
	default:
		return string(status)
	}
}
