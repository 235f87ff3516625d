// Package roster holds the fixed set of agent profiles for a game and the
// single rule that separates the decision-maker from peer agents.
package roster

import (
	"fmt"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// Roster is the fixed set of agent profiles for one game instance.
// It is read-only during play.
type Roster struct {
	byDept map[models.Department]models.AgentProfile
	byName map[string]models.AgentProfile
	order  []models.Department
}

// New builds a roster from the given profiles.
// Exactly one profile must belong to the mayor's office.
func New(profiles []models.AgentProfile) (*Roster, error) {
	r := &Roster{
		byDept: make(map[models.Department]models.AgentProfile, len(profiles)),
		byName: make(map[string]models.AgentProfile, len(profiles)),
	}
	mayors := 0
	for _, p := range profiles {
		if !p.Department.Valid() {
			return nil, fmt.Errorf("profile %q: unknown department %q", p.Name, p.Department)
		}
		if _, dup := r.byDept[p.Department]; dup {
			return nil, fmt.Errorf("duplicate profile for department %s", p.Department)
		}
		if p.IsDecisionMaker() {
			mayors++
		}
		r.byDept[p.Department] = p
		r.byName[p.Name] = p
		r.order = append(r.order, p.Department)
	}
	if mayors != 1 {
		return nil, fmt.Errorf("roster needs exactly one decision-maker profile, got %d", mayors)
	}
	return r, nil
}

// Default returns a roster built from the built-in profiles.
func Default() *Roster {
	r, err := New(DefaultProfiles())
	if err != nil {
		// Built-in profiles are validated by tests; this cannot happen.
		panic(err)
	}
	return r
}

// DecisionMaker returns the mayor's profile.
func (r *Roster) DecisionMaker() models.AgentProfile {
	for _, p := range r.byDept {
		if p.IsDecisionMaker() {
			return p
		}
	}
	return models.AgentProfile{}
}

// Peers returns every profile except the decision-maker, in roster order.
// All negotiation phases must draw their participants from this list.
func (r *Roster) Peers() []models.AgentProfile {
	peers := make([]models.AgentProfile, 0, len(r.order))
	for _, dept := range r.order {
		p := r.byDept[dept]
		if !p.IsDecisionMaker() {
			peers = append(peers, p)
		}
	}
	return peers
}

// ByDepartment looks up the profile for a department.
func (r *Roster) ByDepartment(dept models.Department) (models.AgentProfile, bool) {
	p, ok := r.byDept[dept]
	return p, ok
}

// ByName looks up a profile by agent name.
func (r *Roster) ByName(name string) (models.AgentProfile, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Len returns the number of profiles in the roster.
func (r *Roster) Len() int {
	return len(r.order)
}
