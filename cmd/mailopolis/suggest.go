package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mailopolis/mailopolis/internal/config"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "List available policy proposals",
	Long: `Print every template-driven proposal the departments can put forward,
with its sustainability, economic, and political impact numbers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuggest()
	},
}

func runSuggest() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	engine, _, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	for _, p := range engine.SuggestedProposals() {
		bold.Printf("%s", p.Title)
		fmt.Printf("  [%s]\n", p.TargetDepartment)
		dim.Printf("  %s\n", p.Description)
		fmt.Printf("  sustainability %+d · economic %+d · political %+d\n\n",
			p.SustainabilityImpact, p.EconomicImpact, p.PoliticalImpact)
	}
	return nil
}
