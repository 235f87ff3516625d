package api

import (
	"context"
	"fmt"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// Heuristic is a deterministic collaborator used when no API credentials are
// configured. Verdicts come from a simple personality-driven score instead of
// a language model, so games remain playable offline and tests reproducible.
type Heuristic struct{}

// NewHeuristic creates the offline collaborator.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// heuristicReasonings gives each department a canned rationale in its voice.
var heuristicReasonings = map[models.Department]string{
	models.DepartmentMayor:          "I need to balance multiple interests and consider the political implications.",
	models.DepartmentEnergy:         "This aligns with our carbon neutrality goals and technical requirements.",
	models.DepartmentTransportation: "We must consider equity and accessibility for all community members.",
	models.DepartmentHousing:        "Housing as a human right must be our primary consideration.",
	models.DepartmentWaste:          "We need to focus on circular economy principles and operational efficiency.",
	models.DepartmentWater:          "Water security and ecosystem health are our top priorities.",
	models.DepartmentEconomicDev:    "We must balance environmental goals with economic opportunity.",
	models.DepartmentCitizens:       "This proposal must serve the people and protect future generations.",
}

// Evaluate scores the proposal from the agent's sustainability alignment:
// (alignment + focus)/2, +20 for the agent's own department, accept above 60.
func (h *Heuristic) Evaluate(_ context.Context, proposal models.Proposal, profile models.AgentProfile, _ models.GameContext) (models.Evaluation, error) {
	alignment := abs(proposal.SustainabilityImpact) * 2
	if alignment > 100 {
		alignment = 100
	}

	score := (alignment + profile.SustainabilityFocus) / 2
	if profile.Department == proposal.TargetDepartment {
		score += 20
	}

	confidence := score
	if confidence > 90 {
		confidence = 90
	}
	if confidence < 30 {
		confidence = 30
	}

	reasoning, ok := heuristicReasonings[profile.Department]
	if !ok {
		reasoning = "I need to evaluate this based on our department's priorities."
	}

	return models.Evaluation{
		Accept:     score > 60,
		Reasoning:  reasoning,
		Confidence: confidence,
	}, nil
}

// Decide applies the same scoring as Evaluate; the briefing is ignored.
func (h *Heuristic) Decide(ctx context.Context, proposal models.Proposal, profile models.AgentProfile, gameCtx models.GameContext, _ string) (models.Evaluation, error) {
	return h.Evaluate(ctx, proposal, profile, gameCtx)
}

// Converse returns a fixed in-character line keyed to the conversation purpose.
func (h *Heuristic) Converse(_ context.Context, profile, other models.AgentProfile, _ string, purpose models.ConversationPurpose, priorMessage string) (string, error) {
	if priorMessage != "" {
		return fmt.Sprintf("I hear you, %s. Let us keep our departments aligned on this one.", other.Name), nil
	}
	switch purpose {
	case models.PurposeCoalitionBuilding:
		return fmt.Sprintf("%s, we share common ground here. I think we should work together and support a coalition on this proposal.", other.Name), nil
	case models.PurposeInformationSharing:
		return fmt.Sprintf("%s, before the vote, here is what my department is seeing on the ground.", other.Name), nil
	default:
		return fmt.Sprintf("%s, off the record, what is your read on this proposal?", other.Name), nil
	}
}

// Lobby supports proposals with positive sustainability impact and opposes
// the rest, reflecting that the offline roster skews green.
func (h *Heuristic) Lobby(_ context.Context, profile models.AgentProfile, proposal models.Proposal, _ models.GameContext) (models.LobbyMessage, error) {
	strategy := models.LobbySupport
	if proposal.SustainabilityImpact < 0 && profile.SustainabilityFocus > 50 {
		strategy = models.LobbyOppose
	}
	return models.LobbyMessage{
		Strategy: strategy,
		Message:  fmt.Sprintf("Mayor, speaking for %s: this decision will be remembered. I urge you to weigh it carefully.", profile.Department),
	}, nil
}

// CounterPropose halves the sustainability impact and sweetens the economics
// and politics, mirroring a department trimming its ask after rejection.
func (h *Heuristic) CounterPropose(_ context.Context, profile models.AgentProfile, original models.Proposal) (models.Proposal, bool, error) {
	sustainability := original.SustainabilityImpact / 2
	if sustainability < 1 {
		sustainability = 1
	}
	counter := models.NewProposal(
		"Modified "+original.Title,
		"A more politically feasible version of: "+original.Description,
		string(profile.Department)+"_counter",
		original.TargetDepartment,
		sustainability,
		original.EconomicImpact+2,
		original.PoliticalImpact+3,
	)
	return counter, true, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
