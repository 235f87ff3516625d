package models

// AgentProfile is a department's fixed negotiating disposition.
// One profile exists per department for the lifetime of a game and is
// read-only during play.
type AgentProfile struct {
	// Name is the agent's full display name.
	Name string `json:"name" yaml:"name"`
	// Role describes the agent's position in the city government.
	Role string `json:"role" yaml:"role"`
	// Department is the department this agent represents.
	Department Department `json:"department" yaml:"department"`
	// CoreValues are the agent's guiding principles.
	CoreValues []string `json:"core_values" yaml:"core_values"`
	// CommunicationStyle describes how the agent talks.
	CommunicationStyle string `json:"communication_style" yaml:"communication_style"`
	// DecisionFactors are the agent's priorities, most important first.
	DecisionFactors []string `json:"decision_factors" yaml:"decision_factors"`
	// CorruptionResistance is how likely the agent resists influence, 0-100.
	CorruptionResistance int `json:"corruption_resistance" yaml:"corruption_resistance"`
	// SustainabilityFocus is how much the agent prioritizes the environment, 0-100.
	SustainabilityFocus int `json:"sustainability_focus" yaml:"sustainability_focus"`
	// PoliticalAwareness is how much the agent weighs political implications, 0-100.
	PoliticalAwareness int `json:"political_awareness" yaml:"political_awareness"`
	// RiskTolerance is the agent's willingness to try new approaches, 0-100.
	RiskTolerance int `json:"risk_tolerance" yaml:"risk_tolerance"`
}

// SharedValues counts core values the two agents have in common.
func (p AgentProfile) SharedValues(other AgentProfile) int {
	seen := make(map[string]bool, len(p.CoreValues))
	for _, v := range p.CoreValues {
		seen[v] = true
	}
	count := 0
	for _, v := range other.CoreValues {
		if seen[v] {
			count++
		}
	}
	return count
}

// IsDecisionMaker reports whether this profile belongs to the mayor's office.
func (p AgentProfile) IsDecisionMaker() bool {
	return p.Department == DepartmentMayor
}
