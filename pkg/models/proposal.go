package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Impact bounds for proposal scores.
const (
	MinImpact = -50
	MaxImpact = 50
)

// Proposal is a scored policy change submitted for evaluation.
// It is immutable once submitted; a counter-proposal is a new Proposal.
type Proposal struct {
	// ID is the unique identifier for this proposal.
	ID string `json:"id"`
	// Title is the short name of the policy.
	Title string `json:"title"`
	// Description explains what the policy would do.
	Description string `json:"description"`
	// ProposedBy identifies who submitted the proposal.
	ProposedBy string `json:"proposed_by"`
	// TargetDepartment is the department the policy lands on.
	TargetDepartment Department `json:"target_department"`
	// SustainabilityImpact scores environmental effect, -50..50.
	SustainabilityImpact int `json:"sustainability_impact"`
	// EconomicImpact scores budget effect, -50..50.
	EconomicImpact int `json:"economic_impact"`
	// PoliticalImpact scores public appeal, -50..50.
	PoliticalImpact int `json:"political_impact"`
	// BribeAmount is a non-zero sum attached by a bad actor, if any.
	BribeAmount int `json:"bribe_amount"`
	// CreatedAt is when the proposal was submitted.
	CreatedAt time.Time `json:"created_at"`
}

// NewProposal creates a proposal with a fresh ID and timestamp.
func NewProposal(title, description, proposedBy string, target Department, sustainability, economic, political int) Proposal {
	return Proposal{
		ID:                   uuid.New().String(),
		Title:                title,
		Description:          description,
		ProposedBy:           proposedBy,
		TargetDepartment:     target,
		SustainabilityImpact: sustainability,
		EconomicImpact:       economic,
		PoliticalImpact:      political,
		CreatedAt:            time.Now(),
	}
}

// Validate checks the proposal's fields before it enters a turn.
func (p Proposal) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("proposal title is required")
	}
	if !p.TargetDepartment.Valid() {
		return fmt.Errorf("unknown target department %q", p.TargetDepartment)
	}
	for _, impact := range []struct {
		name  string
		value int
	}{
		{"sustainability_impact", p.SustainabilityImpact},
		{"economic_impact", p.EconomicImpact},
		{"political_impact", p.PoliticalImpact},
	} {
		if impact.value < MinImpact || impact.value > MaxImpact {
			return fmt.Errorf("%s %d out of range [%d, %d]", impact.name, impact.value, MinImpact, MaxImpact)
		}
	}
	if p.BribeAmount < 0 {
		return fmt.Errorf("bribe_amount must not be negative")
	}
	return nil
}
