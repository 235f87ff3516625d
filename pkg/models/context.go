package models

// GameContext is the snapshot of city conditions handed to collaborators so
// agents can evaluate a proposal against the current situation.
type GameContext struct {
	// SustainabilityScore is the current sustainability stat.
	SustainabilityScore int `json:"current_sustainability_score"`
	// BudgetRemaining is the current treasury balance.
	BudgetRemaining int `json:"budget_remaining"`
	// PublicApproval is the current approval stat.
	PublicApproval int `json:"public_approval"`
	// PopulationHappiness is the current happiness stat.
	PopulationHappiness int `json:"population_happiness"`
	// InfrastructureHealth is the current infrastructure stat.
	InfrastructureHealth int `json:"infrastructure_health"`
	// TurnNumber is the current turn.
	TurnNumber int `json:"turn_number"`
	// ActiveEvents are the titles of events currently in play.
	ActiveEvents []string `json:"active_events"`
	// CrisisLevel is "high" when any active event has urgency above 7,
	// otherwise "moderate".
	CrisisLevel string `json:"crisis_level"`
}
