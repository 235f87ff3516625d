package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mailopolis",
	Short: "City Hall Political Simulator",
	Long: `Mailopolis is a city-management game driven by political maneuvering.

Each turn you submit one policy proposal. Department heads negotiate in
private, form coalitions, and lobby the mayor before the mayor decides.
The decision moves the city's scoreboard; steer sustainability, approval,
and happiness high enough to win before your term runs out.

With no arguments, launches the interactive game.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
