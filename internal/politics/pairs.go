package politics

import (
	"math/rand"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// conversationPair is a selected speaker pair, initiator first.
type conversationPair struct {
	initiator models.AgentProfile
	responder models.AgentProfile
	purpose   models.ConversationPurpose
}

// relatedDepartments holds domain collaboration pairs whose members talk shop
// even without shared values. Keys are ordered; relation is symmetric.
var relatedDepartments = map[[2]models.Department]bool{
	{models.DepartmentEnergy, models.DepartmentTransportation}: true,
	{models.DepartmentEnergy, models.DepartmentEconomicDev}:    true,
	{models.DepartmentHousing, models.DepartmentTransportation}: true,
	{models.DepartmentHousing, models.DepartmentCitizens}:       true,
	{models.DepartmentWaste, models.DepartmentWater}:            true,
	{models.DepartmentWater, models.DepartmentCitizens}:         true,
}

// departmentsRelated reports whether the two departments are collaboration
// partners, in either order.
func departmentsRelated(a, b models.Department) bool {
	return relatedDepartments[[2]models.Department{a, b}] ||
		relatedDepartments[[2]models.Department{b, a}]
}

// selectPairs generates candidate speaker pairs from the peer roster. For
// every unordered pair the rules run in order: two or more shared core
// values make a coalition-building pair, related departments make an
// information-sharing pair, and anything else talks with probability
// generalProb. The result is truncated to cap pairs, keeping the
// earliest-generated ones.
func selectPairs(peers []models.AgentProfile, generalProb float64, cap int, rng *rand.Rand) []conversationPair {
	var pairs []conversationPair
	for i := 0; i < len(peers); i++ {
		for j := i + 1; j < len(peers); j++ {
			a, b := peers[i], peers[j]
			switch {
			case a.SharedValues(b) >= 2:
				pairs = append(pairs, conversationPair{a, b, models.PurposeCoalitionBuilding})
			case departmentsRelated(a.Department, b.Department):
				pairs = append(pairs, conversationPair{a, b, models.PurposeInformationSharing})
			case rng.Float64() < generalProb:
				pairs = append(pairs, conversationPair{a, b, models.PurposeGeneralDiscussion})
			}
		}
	}
	if len(pairs) > cap {
		pairs = pairs[:cap]
	}
	return pairs
}
