package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mailopolis/mailopolis/internal/config"
	"github.com/mailopolis/mailopolis/pkg/models"
)

var simulateTurns int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an automated game",
	Long: `Run a game without interaction: each turn the most relevant department
submits its situational proposal and the mayor decides. Useful for balance
testing and for watching the political machinery work.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulate(simulateTurns)
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simulateTurns, "turns", 10, "Maximum turns to simulate")
}

func runSimulate(turns int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	engine, collab, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	if collab.offline {
		fmt.Fprintln(os.Stderr, "No API key configured; simulating with offline department heads.")
	}

	if w := watchBalance(cfg, engine); w != nil {
		defer w.Close()
	}
	defer collab.printUsage()

	engine.StartNewGame()

	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	dim := color.New(color.Faint)

	ctx := context.Background()
	for i := 0; i < turns; i++ {
		proposal, ok := engine.ContextualProposal()
		if !ok {
			dim.Println("no proposal available; skipping turn")
			continue
		}

		bold.Printf("\nTurn %d: %s [%s]\n", i+1, proposal.Title, proposal.TargetDepartment)

		result, err := engine.PlayTurn(ctx, proposal)
		if err != nil {
			return fmt.Errorf("turn %d: %w", i+1, err)
		}

		verdict := result.Decision.MayorDecision
		if verdict.Accept {
			green.Print("  APPROVED")
		} else {
			red.Print("  REJECTED")
		}
		fmt.Printf(" (confidence %d) %s\n", verdict.Confidence, verdict.Reasoning)

		if coalitions := result.Decision.Discussion.CoalitionsFormed; len(coalitions) > 0 {
			dim.Printf("  coalitions: %v\n", coalitions)
		}

		stats := result.CityStats
		fmt.Printf("  sustainability %d · approval %d · happiness %d · budget $%d\n",
			stats.SustainabilityScore, stats.PublicApproval,
			stats.PopulationHappiness, stats.Budget)

		if result.GameOver {
			printEnding(result.Status, result.Message)
			return nil
		}
	}

	summary := engine.Summary()
	bold.Printf("\nSimulation stopped after %d turns.\n", summary.Turn)
	fmt.Printf("Final: sustainability %d · approval %d · happiness %d · budget $%d\n",
		summary.CityStats.SustainabilityScore, summary.CityStats.PublicApproval,
		summary.CityStats.PopulationHappiness, summary.CityStats.Budget)
	return nil
}

func printEnding(status models.GameStatus, message string) {
	switch status {
	case models.StatusVictory, models.StatusGoodEnding:
		color.New(color.FgGreen, color.Bold).Printf("\n%s\n", message)
	case models.StatusDefeat:
		color.New(color.FgRed, color.Bold).Printf("\n%s\n", message)
	default:
		color.New(color.Bold).Printf("\n%s\n", message)
	}
}
