package game

import (
	"github.com/mailopolis/mailopolis/pkg/models"
)

// situation summarizes the city's most pressing problem and selects which
// proposal template a department reaches for.
type situation string

const (
	situationLowSustainability situation = "low_sustainability"
	situationLowApproval       situation = "low_approval"
	situationLowHappiness      situation = "low_happiness"
	situationLowBudget         situation = "low_budget"
	situationNormal            situation = "normal"
)

// assessSituation reads the scoreboard top down: the first threshold that
// trips names the situation.
func assessSituation(stats models.CityStats) situation {
	switch {
	case stats.SustainabilityScore < 40:
		return situationLowSustainability
	case stats.PublicApproval < 50:
		return situationLowApproval
	case stats.PopulationHappiness < 50:
		return situationLowHappiness
	case stats.Budget < 500000:
		return situationLowBudget
	default:
		return situationNormal
	}
}

type proposalTemplate struct {
	title                string
	description          string
	sustainabilityImpact int
	economicImpact       int
	politicalImpact      int
}

// proposalTemplates holds each department's policy playbook, keyed by the
// situation it answers. Not every department covers every situation; lookup
// falls back to normal, then to any template.
var proposalTemplates = map[models.Department]map[situation]proposalTemplate{
	models.DepartmentEnergy: {
		situationLowSustainability: {
			"Emergency Renewable Energy Initiative",
			"Fast-track solar panel installation on all public buildings within 6 months.",
			25, -20, 15,
		},
		situationLowBudget: {
			"Energy Efficiency Retrofits",
			"Low-cost energy efficiency improvements to reduce city utility costs.",
			15, 10, 5,
		},
		situationNormal: {
			"Smart Grid Modernization",
			"Upgrade city electrical grid with smart monitoring and renewable integration.",
			20, -15, 10,
		},
	},
	models.DepartmentTransportation: {
		situationLowSustainability: {
			"Electric Bus Fleet Conversion",
			"Replace all diesel buses with electric vehicles over 18 months.",
			30, -25, 20,
		},
		situationLowApproval: {
			"Free Public Transit Month",
			"Provide free public transportation for one month to boost ridership.",
			10, -15, 25,
		},
		situationNormal: {
			"Bike Lane Expansion Project",
			"Add 20 miles of protected bike lanes throughout the city.",
			15, -10, 5,
		},
	},
	models.DepartmentHousing: {
		situationLowApproval: {
			"Affordable Housing Guarantee",
			"Mandate that 30% of all new developments include affordable units.",
			5, -10, 30,
		},
		situationLowHappiness: {
			"First-Time Homebuyer Program",
			"Provide down payment assistance for first-time homebuyers.",
			0, -20, 25,
		},
		situationNormal: {
			"Green Building Standards",
			"Require all new construction to meet LEED certification standards.",
			25, -15, 10,
		},
	},
	models.DepartmentWaste: {
		situationNormal: {
			"Citywide Composting Program",
			"Establish curbside compost pickup and community compost hubs.",
			10, -5, 8,
		},
		situationLowBudget: {
			"Waste Reduction Grants",
			"Provide small grants to businesses that reduce single-use plastics.",
			8, 5, 4,
		},
	},
	models.DepartmentWater: {
		situationNormal: {
			"Stormwater Green Infrastructure",
			"Install bioswales and rain gardens to reduce runoff and improve water quality.",
			12, -8, 6,
		},
		situationLowBudget: {
			"Water Use Efficiency Rebates",
			"Offer rebates for low-flow fixtures and drought-resistant landscaping.",
			8, 3, 5,
		},
	},
	models.DepartmentEconomicDev: {
		situationNormal: {
			"Green Jobs Training Initiative",
			"Fund workforce development programs for green technology jobs.",
			7, 10, 6,
		},
		situationLowApproval: {
			"Small Business Support Fund",
			"Provide microgrants and counseling to local small businesses.",
			2, 12, 20,
		},
	},
	models.DepartmentCitizens: {
		situationNormal: {
			"Community Climate Education Campaign",
			"Run workshops and outreach to increase awareness of sustainability actions.",
			5, 0, 10,
		},
		situationLowHappiness: {
			"Neighborhood Improvement Grants",
			"Small grants for resident-led neighborhood beautification projects.",
			3, 2, 15,
		},
	},
}

// templateProposal builds a Proposal from a template, attributed to the
// department's AI desk.
func templateProposal(dept models.Department, tpl proposalTemplate) models.Proposal {
	return models.NewProposal(
		tpl.title,
		tpl.description,
		"ai_department_"+string(dept),
		dept,
		tpl.sustainabilityImpact,
		tpl.economicImpact,
		tpl.politicalImpact,
	)
}

// SuggestedProposals returns every template-driven proposal, so the caller
// can pick which to submit. Order follows AllDepartments for determinism.
func (e *Engine) SuggestedProposals() []models.Proposal {
	var proposals []models.Proposal
	for _, dept := range models.AllDepartments() {
		templates, ok := proposalTemplates[dept]
		if !ok {
			continue
		}
		for _, s := range []situation{
			situationLowSustainability, situationLowApproval,
			situationLowHappiness, situationLowBudget, situationNormal,
		} {
			if tpl, ok := templates[s]; ok {
				proposals = append(proposals, templateProposal(dept, tpl))
			}
		}
	}
	return proposals
}

// relevantDepartmentLocked picks the department most relevant to the city's
// weakest stat, with a random draw when several would fit. Callers hold e.mu.
func (e *Engine) relevantDepartmentLocked() models.Department {
	switch {
	case e.stats.SustainabilityScore < 50:
		picks := []models.Department{models.DepartmentEnergy, models.DepartmentTransportation}
		return picks[e.rng.Intn(len(picks))]
	case e.stats.PublicApproval < 50:
		picks := []models.Department{models.DepartmentHousing, models.DepartmentCitizens}
		return picks[e.rng.Intn(len(picks))]
	case e.stats.InfrastructureHealth < 50:
		picks := []models.Department{models.DepartmentWater, models.DepartmentWaste}
		return picks[e.rng.Intn(len(picks))]
	case e.stats.EconomicGrowth < 50:
		return models.DepartmentEconomicDev
	default:
		peers := make([]models.Department, 0, len(models.AllDepartments()))
		for _, dept := range models.AllDepartments() {
			if dept != models.DepartmentMayor {
				peers = append(peers, dept)
			}
		}
		return peers[e.rng.Intn(len(peers))]
	}
}

// ContextualProposal generates the proposal the most relevant department
// would bring given the current situation. The second return is false when
// the chosen department has no templates.
func (e *Engine) ContextualProposal() (models.Proposal, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	dept := e.relevantDepartmentLocked()
	templates, ok := proposalTemplates[dept]
	if !ok || len(templates) == 0 {
		return models.Proposal{}, false
	}

	tpl, ok := templates[assessSituation(e.stats)]
	if !ok {
		tpl, ok = templates[situationNormal]
	}
	if !ok {
		for _, s := range []situation{
			situationLowSustainability, situationLowApproval,
			situationLowHappiness, situationLowBudget,
		} {
			if t, found := templates[s]; found {
				tpl = t
				break
			}
		}
	}
	return templateProposal(dept, tpl), true
}
