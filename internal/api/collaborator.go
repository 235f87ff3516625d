package api

import (
	"context"
	"fmt"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// Collaborator implements the evaluation and conversation capabilities on
// top of the Anthropic Messages API. Every method issues exactly one call
// scoped to the acting agent's persona.
type Collaborator struct {
	client *Client
}

// NewCollaborator creates a Collaborator backed by the given client.
func NewCollaborator(client *Client) *Collaborator {
	return &Collaborator{client: client}
}

// Evaluate asks the agent for a structured verdict on the proposal.
func (c *Collaborator) Evaluate(ctx context.Context, proposal models.Proposal, profile models.AgentProfile, gameCtx models.GameContext) (models.Evaluation, error) {
	text, err := c.client.complete(ctx, systemPrompt(profile), evaluationPrompt(proposal, gameCtx))
	if err != nil {
		return models.Evaluation{}, fmt.Errorf("evaluate %s: %w", profile.Name, err)
	}
	return ParseEvaluation(text), nil
}

// Decide asks the decision-maker for a final verdict given the political briefing.
func (c *Collaborator) Decide(ctx context.Context, proposal models.Proposal, profile models.AgentProfile, gameCtx models.GameContext, briefing string) (models.Evaluation, error) {
	text, err := c.client.complete(ctx, systemPrompt(profile), mayorBriefingPrompt(proposal, gameCtx, briefing))
	if err != nil {
		return models.Evaluation{}, fmt.Errorf("mayor decision: %w", err)
	}
	return ParseEvaluation(text), nil
}

// Converse returns one message from profile to other about the topic.
// priorMessage, when non-empty, is the other agent's opening message.
func (c *Collaborator) Converse(ctx context.Context, profile, other models.AgentProfile, topic string, purpose models.ConversationPurpose, priorMessage string) (string, error) {
	text, err := c.client.complete(ctx, systemPrompt(profile), conversePrompt(other, topic, purpose, priorMessage))
	if err != nil {
		return "", fmt.Errorf("converse %s->%s: %w", profile.Name, other.Name, err)
	}
	return text, nil
}

// Lobby asks the agent for a one-shot lobbying strategy and message.
func (c *Collaborator) Lobby(ctx context.Context, profile models.AgentProfile, proposal models.Proposal, gameCtx models.GameContext) (models.LobbyMessage, error) {
	text, err := c.client.complete(ctx, systemPrompt(profile), lobbyPrompt(proposal, gameCtx))
	if err != nil {
		return models.LobbyMessage{}, fmt.Errorf("lobby %s: %w", profile.Name, err)
	}
	return ParseLobby(text), nil
}

// CounterPropose asks the target department to rework a rejected proposal.
// Returns false when the agent did not produce a usable counter-proposal.
func (c *Collaborator) CounterPropose(ctx context.Context, profile models.AgentProfile, original models.Proposal) (models.Proposal, bool, error) {
	text, err := c.client.complete(ctx, systemPrompt(profile), counterProposalPrompt(original))
	if err != nil {
		return models.Proposal{}, false, fmt.Errorf("counter-proposal %s: %w", profile.Name, err)
	}
	counter, ok := ParseCounterProposal(text, original)
	return counter, ok, nil
}
