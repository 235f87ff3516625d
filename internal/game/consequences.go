package game

import (
	"math/rand"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// varianceOrder fixes the stat visit order for the variance pass.
var varianceOrder = []models.Stat{
	models.StatSustainability,
	models.StatApproval,
	models.StatEconomicGrowth,
	models.StatInfrastructure,
	models.StatHappiness,
	models.StatCorruption,
}

// decisionConsequences computes the scoreboard deltas and political fallout
// of a mayoral verdict. The deltas are intents; clamping happens when the
// scoreboard applies them.
func decisionConsequences(proposal models.Proposal, verdict models.Evaluation, discussion models.PoliticalDiscussion, rng *rand.Rand) models.Consequences {
	if !verdict.Accept {
		return rejectionConsequences(proposal)
	}
	return acceptanceConsequences(proposal, discussion, rng)
}

// rejectionConsequences penalizes inaction. No variance is applied to
// rejections; the cost of saying no is predictable.
func rejectionConsequences(proposal models.Proposal) models.Consequences {
	return models.Consequences{
		StatChanges: map[models.Stat]int{
			models.StatApproval:   -5,
			models.StatCorruption: 2,
		},
		PoliticalEffects: models.PoliticalEffects{
			RelationshipShifts: map[models.Department]int{
				proposal.TargetDepartment: -10,
			},
		},
	}
}

func acceptanceConsequences(proposal models.Proposal, discussion models.PoliticalDiscussion, rng *rand.Rand) models.Consequences {
	changes := map[models.Stat]int{
		models.StatSustainability: proposal.SustainabilityImpact,
		models.StatBudget:         proposal.EconomicImpact * 10000,
		models.StatApproval:       proposal.PoliticalImpact,
	}

	if proposal.SustainabilityImpact > 20 {
		changes[models.StatInfrastructure] = 5
	}
	if proposal.EconomicImpact < -20 {
		changes[models.StatEconomicGrowth] = -5
	}

	effects := models.PoliticalEffects{}

	if total := len(discussion.FinalPositions); total > 0 {
		support := 0
		for _, pos := range discussion.FinalPositions {
			if pos == models.PositionSupport {
				support++
			}
		}
		ratio := float64(support) / float64(total)
		if ratio > 0.7 {
			changes[models.StatApproval] += 10
			effects.StrongConsensus = true
		} else if ratio < 0.3 {
			changes[models.StatApproval] -= 5
			effects.ControversialDecision = true
		}
	}

	if len(discussion.CoalitionsFormed) > 0 {
		effects.ActiveCoalitions = discussion.CoalitionsFormed
		changes[models.StatInfrastructure] += 3
	}

	// Outcomes land within 20% of intent either way. The budget is exempt:
	// money moves exactly as promised. Stats are visited in a fixed order so
	// a seeded source replays identically.
	for _, stat := range varianceOrder {
		delta, ok := changes[stat]
		if !ok {
			continue
		}
		variance := rng.Float64()*0.4 - 0.2
		changes[stat] = int(float64(delta) * (1 + variance))
	}

	return models.Consequences{
		StatChanges:      changes,
		PoliticalEffects: effects,
	}
}
