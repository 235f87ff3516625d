package models

// Stat names a single city statistic.
type Stat string

const (
	// StatSustainability is the city's overall sustainability score.
	StatSustainability Stat = "sustainability_score"
	// StatBudget is the city treasury in dollars. Unbounded.
	StatBudget Stat = "budget"
	// StatApproval is the mayor's public approval rating.
	StatApproval Stat = "public_approval"
	// StatEconomicGrowth is the strength of the local economy.
	StatEconomicGrowth Stat = "economic_growth"
	// StatInfrastructure is the condition of city infrastructure.
	StatInfrastructure Stat = "infrastructure_health"
	// StatHappiness is overall population happiness.
	StatHappiness Stat = "population_happiness"
	// StatCorruption is perceived corruption. Lower is better.
	StatCorruption Stat = "corruption_level"
)

// CityStats is the bounded numeric scoreboard mutated by turn outcomes.
// Every field except Budget is clamped to [0, 100].
type CityStats struct {
	SustainabilityScore  int `json:"sustainability_score"`
	Budget               int `json:"budget"`
	PublicApproval       int `json:"public_approval"`
	EconomicGrowth       int `json:"economic_growth"`
	InfrastructureHealth int `json:"infrastructure_health"`
	PopulationHappiness  int `json:"population_happiness"`
	CorruptionLevel      int `json:"corruption_level"`
}

// DefaultCityStats returns the starting scoreboard for a new game.
func DefaultCityStats() CityStats {
	return CityStats{
		SustainabilityScore:  45,
		Budget:               1_000_000,
		PublicApproval:       65,
		EconomicGrowth:       50,
		InfrastructureHealth: 70,
		PopulationHappiness:  60,
		CorruptionLevel:      20,
	}
}

// Get returns the value of the named stat, or 0 for an unknown name.
func (s CityStats) Get(stat Stat) int {
	switch stat {
	case StatSustainability:
		return s.SustainabilityScore
	case StatBudget:
		return s.Budget
	case StatApproval:
		return s.PublicApproval
	case StatEconomicGrowth:
		return s.EconomicGrowth
	case StatInfrastructure:
		return s.InfrastructureHealth
	case StatHappiness:
		return s.PopulationHappiness
	case StatCorruption:
		return s.CorruptionLevel
	default:
		return 0
	}
}

// Apply adds each delta to its stat, clamping everything except the budget
// to [0, 100]. Unknown stat names are ignored.
func (s *CityStats) Apply(changes map[Stat]int) {
	for stat, delta := range changes {
		switch stat {
		case StatSustainability:
			s.SustainabilityScore = clampStat(s.SustainabilityScore + delta)
		case StatBudget:
			s.Budget += delta
		case StatApproval:
			s.PublicApproval = clampStat(s.PublicApproval + delta)
		case StatEconomicGrowth:
			s.EconomicGrowth = clampStat(s.EconomicGrowth + delta)
		case StatInfrastructure:
			s.InfrastructureHealth = clampStat(s.InfrastructureHealth + delta)
		case StatHappiness:
			s.PopulationHappiness = clampStat(s.PopulationHappiness + delta)
		case StatCorruption:
			s.CorruptionLevel = clampStat(s.CorruptionLevel + delta)
		}
	}
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
