package game

import (
	"context"
	"testing"

	"github.com/mailopolis/mailopolis/pkg/models"
)

func TestAssessSituation(t *testing.T) {
	tests := []struct {
		name  string
		stats models.CityStats
		want  situation
	}{
		{
			"low sustainability takes priority",
			models.CityStats{SustainabilityScore: 39, PublicApproval: 40, PopulationHappiness: 40, Budget: 100},
			situationLowSustainability,
		},
		{
			"then approval",
			models.CityStats{SustainabilityScore: 45, PublicApproval: 49, PopulationHappiness: 40, Budget: 100},
			situationLowApproval,
		},
		{
			"then happiness",
			models.CityStats{SustainabilityScore: 45, PublicApproval: 60, PopulationHappiness: 49, Budget: 100},
			situationLowHappiness,
		},
		{
			"then budget",
			models.CityStats{SustainabilityScore: 45, PublicApproval: 60, PopulationHappiness: 55, Budget: 499_999},
			situationLowBudget,
		},
		{
			"healthy city is normal",
			models.CityStats{SustainabilityScore: 45, PublicApproval: 60, PopulationHappiness: 55, Budget: 1_000_000},
			situationNormal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assessSituation(tt.stats); got != tt.want {
				t.Errorf("assessSituation = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSuggestedProposalsAllValid(t *testing.T) {
	e := newTestEngine(t, deterministicConfig(1))

	proposals := e.SuggestedProposals()
	if len(proposals) != 17 {
		t.Fatalf("suggestions = %d, want 17 templates", len(proposals))
	}
	for _, p := range proposals {
		if err := p.Validate(); err != nil {
			t.Errorf("suggestion %q invalid: %v", p.Title, err)
		}
		if p.ProposedBy != "ai_department_"+string(p.TargetDepartment) {
			t.Errorf("suggestion %q attributed to %q", p.Title, p.ProposedBy)
		}
	}
}

func TestContextualProposalMatchesSituation(t *testing.T) {
	e := newTestEngine(t, deterministicConfig(1))
	// Defaults have sustainability 45, below the 50 threshold, so the
	// relevant department is energy or transportation and the situation
	// is normal (45 is not below 40).
	proposal, ok := e.ContextualProposal()
	if !ok {
		t.Fatal("expected a contextual proposal")
	}
	if proposal.TargetDepartment != models.DepartmentEnergy &&
		proposal.TargetDepartment != models.DepartmentTransportation {
		t.Errorf("department = %s, want energy or transportation", proposal.TargetDepartment)
	}
	wantTitles := map[string]bool{
		"Smart Grid Modernization":  true,
		"Bike Lane Expansion Project": true,
	}
	if !wantTitles[proposal.Title] {
		t.Errorf("title = %q, want a normal-situation template", proposal.Title)
	}
	if err := proposal.Validate(); err != nil {
		t.Errorf("contextual proposal invalid: %v", err)
	}
}

func TestContextualProposalConcurrentWithTurns(t *testing.T) {
	e := newTestEngine(t, deterministicConfig(7))
	e.StartNewGame()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			if _, err := e.PlayTurn(context.Background(), turnProposal()); err != nil {
				return
			}
		}
	}()

	for i := 0; i < 50; i++ {
		proposal, ok := e.ContextualProposal()
		if !ok {
			t.Fatal("expected a contextual proposal")
		}
		if err := proposal.Validate(); err != nil {
			t.Fatalf("contextual proposal invalid: %v", err)
		}
	}
	<-done
}
