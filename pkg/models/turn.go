package models

// EventType classifies a city-wide event.
type EventType string

const (
	// EventCrisis is an acute problem demanding attention.
	EventCrisis EventType = "crisis"
	// EventOpportunity is a chance for the city to gain.
	EventOpportunity EventType = "opportunity"
	// EventExternalPressure is outside pressure on city hall.
	EventExternalPressure EventType = "external_pressure"
	// EventBudgetChange is an unplanned budget movement.
	EventBudgetChange EventType = "budget_change"
	// EventPublicReaction is a citizen response to recent decisions.
	EventPublicReaction EventType = "public_reaction"
)

// GameEvent is a city-wide event active for a number of turns.
type GameEvent struct {
	// Type is the event classification.
	Type EventType `json:"event_type"`
	// Title is the event headline.
	Title string `json:"title"`
	// Description is the event detail shown to the player.
	Description string `json:"description"`
	// Impacts describes which stats the event touches. Display data;
	// the engine does not apply these to the scoreboard.
	Impacts map[Stat]int `json:"impacts"`
	// Urgency is how quickly the event must be addressed, 1-10.
	Urgency int `json:"urgency"`
	// Duration is how many remaining turns the event lasts.
	Duration int `json:"duration"`
}

// PoliticalEffects captures the political fallout of one decision.
type PoliticalEffects struct {
	// RelationshipShifts maps a department to a trust delta with the player.
	RelationshipShifts map[Department]int `json:"relationship_shifts,omitempty"`
	// StrongConsensus is set when over 70% of peers supported the proposal.
	StrongConsensus bool `json:"strong_consensus,omitempty"`
	// ControversialDecision is set when under 30% of peers supported it.
	ControversialDecision bool `json:"controversial_decision,omitempty"`
	// ActiveCoalitions carries the coalitions that formed during discussion.
	ActiveCoalitions [][]string `json:"active_coalitions,omitempty"`
}

// Consequences is the full computed outcome of a mayoral decision.
type Consequences struct {
	// StatChanges are the deltas applied to the city scoreboard.
	StatChanges map[Stat]int `json:"stat_changes"`
	// PoliticalEffects is the non-numeric fallout.
	PoliticalEffects PoliticalEffects `json:"political_effects"`
}

// Decision bundles everything that resolved one proposal.
type Decision struct {
	// Proposal is the policy that was decided.
	Proposal Proposal `json:"proposal"`
	// MayorDecision is the decision-maker's verdict.
	MayorDecision Evaluation `json:"mayor_decision"`
	// Discussion is the negotiation record behind the verdict.
	Discussion PoliticalDiscussion `json:"political_discussion"`
	// Consequences are the computed stat and political effects.
	Consequences Consequences `json:"consequences"`
}

// EndOfTurnEffects reports the fixed and stochastic end-of-turn changes.
type EndOfTurnEffects struct {
	// MonthlyCosts itemizes the fixed operating costs.
	MonthlyCosts map[string]int `json:"monthly_costs"`
	// InfrastructureDecay is the natural decay applied this turn, negative.
	InfrastructureDecay int `json:"infrastructure_decay,omitempty"`
	// EconomicBonus is extra tax revenue from a strong economy, if any.
	EconomicBonus int `json:"economic_bonus,omitempty"`
}

// Turn is one resolved proposal plus its consequences.
// Turn records are append-only and never mutated after creation.
type Turn struct {
	// TurnNumber is the 1-based turn counter.
	TurnNumber int `json:"turn_number"`
	// CityStats is a snapshot taken after the turn resolved.
	CityStats CityStats `json:"city_stats"`
	// ActiveEvents are the events in play when the turn resolved.
	ActiveEvents []GameEvent `json:"active_events"`
	// Proposal is the policy resolved this turn.
	Proposal Proposal `json:"proposal"`
	// Decision is the full resolution record.
	Decision Decision `json:"decision"`
	// PoliticalConsequences is the political fallout of the decision.
	PoliticalConsequences PoliticalEffects `json:"political_consequences"`
}

// GameStatus is the engine's lifecycle state.
type GameStatus string

const (
	// StatusOngoing means the game continues.
	StatusOngoing GameStatus = "ongoing"
	// StatusVictory means the win conditions were met.
	StatusVictory GameStatus = "victory"
	// StatusDefeat means multiple critical failures ended the game.
	StatusDefeat GameStatus = "defeat"
	// StatusGoodEnding means the turn limit was reached in good shape.
	StatusGoodEnding GameStatus = "good_ending"
	// StatusMixedEnding means the turn limit was reached with mixed results.
	StatusMixedEnding GameStatus = "mixed_ending"
)

// Terminal reports whether the status ends the game.
func (s GameStatus) Terminal() bool {
	switch s {
	case StatusVictory, StatusDefeat, StatusGoodEnding, StatusMixedEnding:
		return true
	default:
		return false
	}
}
