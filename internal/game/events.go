package game

import (
	"github.com/mailopolis/mailopolis/pkg/models"
)

// crisisThreshold is the stat floor below which a crisis event fires.
const crisisThreshold = 30

// randomEventCatalog holds the events that can appear on any turn. Impacts
// are narrative color shown to the player; the scoreboard only moves through
// decision consequences and end-of-turn processing.
func randomEventCatalog() []models.GameEvent {
	return []models.GameEvent{
		{
			Type:        models.EventCrisis,
			Title:       "Infrastructure Failure",
			Description: "A major water main burst affects 30% of the city. Immediate action required.",
			Impacts: map[models.Stat]int{
				models.StatBudget:         -50000,
				models.StatInfrastructure: -15,
				models.StatApproval:       -10,
			},
			Urgency:  9,
			Duration: 2,
		},
		{
			Type:        models.EventOpportunity,
			Title:       "Federal Green Grant Available",
			Description: "$2M federal grant available for renewable energy projects.",
			Impacts: map[models.Stat]int{
				models.StatBudget:         200000,
				models.StatSustainability: 10,
			},
			Urgency:  3,
			Duration: 3,
		},
		{
			Type:        models.EventExternalPressure,
			Title:       "Climate Activists Rally",
			Description: "Large environmental rally demanding immediate climate action.",
			Impacts: map[models.Stat]int{
				models.StatApproval:       -5,
				models.StatSustainability: 5,
			},
			Urgency:  5,
			Duration: 1,
		},
		{
			Type:        models.EventBudgetChange,
			Title:       "Unexpected Tax Revenue",
			Description: "Higher than expected tax collection this quarter.",
			Impacts: map[models.Stat]int{
				models.StatBudget:         150000,
				models.StatEconomicGrowth: 5,
			},
			Urgency:  1,
			Duration: 1,
		},
	}
}

// initialEvents seeds a fresh game with the honeymoon period.
func initialEvents() []models.GameEvent {
	return []models.GameEvent{
		{
			Type:        models.EventOpportunity,
			Title:       "New Administration Honeymoon",
			Description: "Citizens are optimistic about new leadership and ready for change.",
			Impacts: map[models.Stat]int{
				models.StatApproval:  5,
				models.StatHappiness: 5,
			},
			Urgency:  1,
			Duration: 5,
		},
	}
}

// crisisForStats returns the crisis event triggered by a dangerously low
// stat, checking sustainability before approval. At most one crisis fires
// per turn.
func crisisForStats(stats models.CityStats) (models.GameEvent, bool) {
	if stats.SustainabilityScore < crisisThreshold {
		return models.GameEvent{
			Type:        models.EventCrisis,
			Title:       "Environmental Crisis",
			Description: "Air quality has reached dangerous levels. Federal oversight threatened.",
			Impacts: map[models.Stat]int{
				models.StatApproval:  -20,
				models.StatHappiness: -15,
			},
			Urgency:  10,
			Duration: 4,
		}, true
	}
	if stats.PublicApproval < crisisThreshold {
		return models.GameEvent{
			Type:        models.EventCrisis,
			Title:       "Public Confidence Crisis",
			Description: "Citizens are calling for leadership change. Emergency town halls demanded.",
			Impacts: map[models.Stat]int{
				models.StatCorruption:     10,
				models.StatEconomicGrowth: -10,
			},
			Urgency:  8,
			Duration: 3,
		}, true
	}
	return models.GameEvent{}, false
}

// processEvents ages active events, drops the expired ones, rolls for a new
// random event, and injects a crisis if the scoreboard warrants one.
func (e *Engine) processEvents() {
	remaining := e.activeEvents[:0]
	for _, event := range e.activeEvents {
		event.Duration--
		if event.Duration <= 0 {
			e.logger.Log("event concluded: %s", event.Title)
			continue
		}
		remaining = append(remaining, event)
	}
	e.activeEvents = remaining

	if e.rng.Float64() < e.cfg.EventProbability {
		catalog := randomEventCatalog()
		event := catalog[e.rng.Intn(len(catalog))]
		e.activeEvents = append(e.activeEvents, event)
		e.logger.Log("new event: %s", event.Title)
	}

	if crisis, ok := crisisForStats(e.stats); ok {
		e.activeEvents = append(e.activeEvents, crisis)
		e.logger.Log("CRISIS: %s", crisis.Title)
	}
}
