package api

import (
	"testing"

	"github.com/mailopolis/mailopolis/pkg/models"
)

func TestParseEvaluation(t *testing.T) {
	tests := []struct {
		name           string
		response       string
		wantAccept     bool
		wantConfidence int
	}{
		{
			"labeled support",
			"Decision: SUPPORT\nReasoning: Solid plan for the grid.\nConfidence: 8\nConcerns: Funding gap",
			true, 80,
		},
		{
			"labeled opposition",
			"Decision: OPPOSE\nReasoning: Too costly.\nConfidence: 3",
			false, 30,
		},
		{
			"keyword fallback accepts",
			"After reviewing the details I would approve this initiative.",
			true, 70,
		},
		{
			"keyword fallback rejects",
			"We must reject this, the budget cannot carry it.",
			false, 70,
		},
		{
			"confidence out of range keeps default",
			"Decision: SUPPORT\nConfidence: 15",
			true, 70,
		},
		{
			"confidence with denominator",
			"Decision: SUPPORT\nConfidence: 9/10",
			true, 90,
		},
		{
			"inline confidence without label line",
			"I support the measure. Confidence: 6 given current conditions.",
			true, 60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := ParseEvaluation(tt.response)
			if eval.Accept != tt.wantAccept {
				t.Errorf("Accept = %v, want %v", eval.Accept, tt.wantAccept)
			}
			if eval.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %d, want %d", eval.Confidence, tt.wantConfidence)
			}
			if eval.Reasoning == "" {
				t.Error("Reasoning is empty, want label value or default")
			}
		})
	}
}

func TestParseEvaluationFields(t *testing.T) {
	eval := ParseEvaluation("Decision: SUPPORT\nReasoning: Grid upgrades pay off.\nConfidence: 7\nConcerns: Permitting delays")

	if eval.Reasoning != "Grid upgrades pay off." {
		t.Errorf("Reasoning = %q", eval.Reasoning)
	}
	if len(eval.Concerns) != 1 || eval.Concerns[0] != "Permitting delays" {
		t.Errorf("Concerns = %v, want [Permitting delays]", eval.Concerns)
	}
}

func TestParseEvaluationConcernsNoneOmitted(t *testing.T) {
	eval := ParseEvaluation("Decision: SUPPORT\nConcerns: none")
	if len(eval.Concerns) != 0 {
		t.Errorf("Concerns = %v, want empty", eval.Concerns)
	}
}

func TestParseLobby(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		wantStrategy models.LobbyStrategy
		wantMessage  string
	}{
		{
			"labeled oppose",
			"STRATEGY: oppose\nMESSAGE: This will hurt ratepayers.",
			models.LobbyOppose, "This will hurt ratepayers.",
		},
		{
			"labeled modify mixed case",
			"STRATEGY: Modify\nMESSAGE: Phase it in over two years.",
			models.LobbyModify, "Phase it in over two years.",
		},
		{
			"unknown strategy defaults to support",
			"STRATEGY: sabotage\nMESSAGE: Trust me.",
			models.LobbySupport, "Trust me.",
		},
		{
			"no labels uses raw text and support",
			"Mayor, please approve this proposal.",
			models.LobbySupport, "Mayor, please approve this proposal.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lobby := ParseLobby(tt.response)
			if lobby.Strategy != tt.wantStrategy {
				t.Errorf("Strategy = %s, want %s", lobby.Strategy, tt.wantStrategy)
			}
			if lobby.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", lobby.Message, tt.wantMessage)
			}
		})
	}
}

func counterOriginal() models.Proposal {
	return models.NewProposal(
		"Electric Bus Fleet Conversion",
		"Replace all diesel buses with electric vehicles.",
		"ai_department_Transportation",
		models.DepartmentTransportation,
		30, -25, 20,
	)
}

func TestParseCounterProposal(t *testing.T) {
	response := "TITLE: Hybrid Bus Pilot\n" +
		"DESCRIPTION: Convert one depot to hybrid buses first.\n" +
		"SUSTAINABILITY_IMPACT: +12\n" +
		"EXPLANATION: A smaller first step is fundable."

	counter, ok := ParseCounterProposal(response, counterOriginal())
	if !ok {
		t.Fatal("expected a counter-proposal")
	}
	if counter.Title != "Hybrid Bus Pilot" {
		t.Errorf("Title = %q", counter.Title)
	}
	if counter.SustainabilityImpact != 12 {
		t.Errorf("SustainabilityImpact = %d, want 12", counter.SustainabilityImpact)
	}
	if counter.EconomicImpact != -24 {
		t.Errorf("EconomicImpact = %d, want -24", counter.EconomicImpact)
	}
	if counter.PoliticalImpact != 22 {
		t.Errorf("PoliticalImpact = %d, want 22", counter.PoliticalImpact)
	}
	if counter.TargetDepartment != models.DepartmentTransportation {
		t.Errorf("TargetDepartment = %s", counter.TargetDepartment)
	}
	if counter.ProposedBy != string(models.DepartmentTransportation)+"_counter" {
		t.Errorf("ProposedBy = %q", counter.ProposedBy)
	}
	if !containsAny(counter.Description, "A smaller first step is fundable.") {
		t.Errorf("Description missing explanation: %q", counter.Description)
	}
}

func TestParseCounterProposalDefaultsSustainability(t *testing.T) {
	response := "TITLE: Scaled-Back Conversion\nDESCRIPTION: Half the fleet on a longer timeline."

	counter, ok := ParseCounterProposal(response, counterOriginal())
	if !ok {
		t.Fatal("expected a counter-proposal")
	}
	if counter.SustainabilityImpact != 15 {
		t.Errorf("SustainabilityImpact = %d, want half of the original 30", counter.SustainabilityImpact)
	}
}

func TestParseCounterProposalRequiresTitleAndDescription(t *testing.T) {
	responses := []string{
		"",
		"TITLE: Only a title",
		"DESCRIPTION: Only a description",
		"I would rather not revise it.",
	}
	for _, response := range responses {
		if _, ok := ParseCounterProposal(response, counterOriginal()); ok {
			t.Errorf("ParseCounterProposal(%q) returned a proposal, want declined", response)
		}
	}
}

func TestTokenTracker(t *testing.T) {
	tracker := NewTokenTracker()
	tracker.Add(100, 20)
	tracker.Add(50, 5)

	input, output := tracker.Total()
	if input != 150 || output != 25 {
		t.Errorf("Total() = %d/%d, want 150/25", input, output)
	}
	if tracker.Calls() != 2 {
		t.Errorf("Calls() = %d, want 2", tracker.Calls())
	}
}
