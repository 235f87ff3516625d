package game

import (
	"math/rand"
	"testing"

	"github.com/mailopolis/mailopolis/pkg/models"
)

func proposalWith(sust, econ, political int) models.Proposal {
	return models.NewProposal(
		"Test Policy", "A test policy.", "tester",
		models.DepartmentEnergy, sust, econ, political,
	)
}

func TestRejectionConsequences(t *testing.T) {
	proposal := proposalWith(25, -10, 5)
	c := decisionConsequences(proposal, models.Evaluation{Accept: false},
		models.PoliticalDiscussion{}, rand.New(rand.NewSource(1)))

	if got := c.StatChanges[models.StatApproval]; got != -5 {
		t.Errorf("approval delta = %d, want -5", got)
	}
	if got := c.StatChanges[models.StatCorruption]; got != 2 {
		t.Errorf("corruption delta = %d, want 2", got)
	}
	if got := c.PoliticalEffects.RelationshipShifts[models.DepartmentEnergy]; got != -10 {
		t.Errorf("relationship shift = %d, want -10", got)
	}
	if len(c.StatChanges) != 2 {
		t.Errorf("rejection touched %d stats, want 2", len(c.StatChanges))
	}
}

func TestAcceptanceConsequencesWithinVariance(t *testing.T) {
	proposal := proposalWith(30, -25, 10)
	c := decisionConsequences(proposal, models.Evaluation{Accept: true},
		models.PoliticalDiscussion{}, rand.New(rand.NewSource(1)))

	checkRange := func(stat models.Stat, intent int) {
		t.Helper()
		got := c.StatChanges[stat]
		lo, hi := int(float64(intent)*0.8), int(float64(intent)*1.2)
		if lo > hi {
			lo, hi = hi, lo
		}
		if got < lo || got > hi {
			t.Errorf("%s delta = %d, want within [%d, %d]", stat, got, lo, hi)
		}
	}
	checkRange(models.StatSustainability, 30)
	checkRange(models.StatApproval, 10)
	// Large sustainability gain improves infrastructure.
	checkRange(models.StatInfrastructure, 5)
	// Expensive proposals slow growth.
	checkRange(models.StatEconomicGrowth, -5)

	// The budget is exempt from variance.
	if got := c.StatChanges[models.StatBudget]; got != -250000 {
		t.Errorf("budget delta = %d, want -250000", got)
	}
}

func TestAcceptanceConsensusBonuses(t *testing.T) {
	tests := []struct {
		name              string
		positions         map[string]models.Position
		wantStrong        bool
		wantControversial bool
	}{
		{
			"strong consensus above 70%",
			map[string]models.Position{
				"A": models.PositionSupport, "B": models.PositionSupport,
				"C": models.PositionSupport, "D": models.PositionOppose,
			},
			true, false,
		},
		{
			"controversial below 30%",
			map[string]models.Position{
				"A": models.PositionSupport, "B": models.PositionOppose,
				"C": models.PositionOppose, "D": models.PositionOppose,
			},
			false, true,
		},
		{
			"middling support, no flags",
			map[string]models.Position{
				"A": models.PositionSupport, "B": models.PositionOppose,
			},
			false, false,
		},
		{
			"no positions, no flags",
			nil,
			false, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := decisionConsequences(proposalWith(10, 0, 0),
				models.Evaluation{Accept: true},
				models.PoliticalDiscussion{FinalPositions: tt.positions},
				rand.New(rand.NewSource(1)))
			if c.PoliticalEffects.StrongConsensus != tt.wantStrong {
				t.Errorf("StrongConsensus = %v, want %v",
					c.PoliticalEffects.StrongConsensus, tt.wantStrong)
			}
			if c.PoliticalEffects.ControversialDecision != tt.wantControversial {
				t.Errorf("ControversialDecision = %v, want %v",
					c.PoliticalEffects.ControversialDecision, tt.wantControversial)
			}
		})
	}
}

func TestAcceptanceCoalitionBonus(t *testing.T) {
	coalitions := [][]string{{"A", "B"}}
	c := decisionConsequences(proposalWith(10, 0, 0),
		models.Evaluation{Accept: true},
		models.PoliticalDiscussion{CoalitionsFormed: coalitions},
		rand.New(rand.NewSource(1)))

	if len(c.PoliticalEffects.ActiveCoalitions) != 1 {
		t.Errorf("ActiveCoalitions = %v, want the formed coalition carried over",
			c.PoliticalEffects.ActiveCoalitions)
	}
	// 3 with up to 20% variance rounds to 2..3.
	if got := c.StatChanges[models.StatInfrastructure]; got < 2 || got > 3 {
		t.Errorf("infrastructure delta = %d, want 2 or 3", got)
	}
}

func TestConsequencesDeterministicForSeed(t *testing.T) {
	proposal := proposalWith(30, -25, 10)
	first := decisionConsequences(proposal, models.Evaluation{Accept: true},
		models.PoliticalDiscussion{}, rand.New(rand.NewSource(42)))
	second := decisionConsequences(proposal, models.Evaluation{Accept: true},
		models.PoliticalDiscussion{}, rand.New(rand.NewSource(42)))

	for stat, delta := range first.StatChanges {
		if second.StatChanges[stat] != delta {
			t.Errorf("%s differs across identical seeds: %d vs %d",
				stat, delta, second.StatChanges[stat])
		}
	}
}
