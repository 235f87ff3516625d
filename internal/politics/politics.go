// Package politics runs the four-phase negotiation protocol for one proposal:
// private conversations, coalition analysis, mayor lobbying, and final
// positions, followed by the decision-maker's resolution.
package politics

import (
	"context"
	"math/rand"
	"time"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// Evaluator is the evaluation collaborator: given a proposal and context it
// returns a structured verdict. It must tolerate being called with the
// decision-maker's profile as well as peer profiles.
type Evaluator interface {
	Evaluate(ctx context.Context, proposal models.Proposal, profile models.AgentProfile, gameCtx models.GameContext) (models.Evaluation, error)
	Decide(ctx context.Context, proposal models.Proposal, profile models.AgentProfile, gameCtx models.GameContext, briefing string) (models.Evaluation, error)
}

// Converser is the conversation collaborator: given two agent profiles and a
// topic it returns exchanged text, plus a lobbying-specific variant.
type Converser interface {
	Converse(ctx context.Context, profile, other models.AgentProfile, topic string, purpose models.ConversationPurpose, priorMessage string) (string, error)
	Lobby(ctx context.Context, profile models.AgentProfile, proposal models.Proposal, gameCtx models.GameContext) (models.LobbyMessage, error)
}

// Config holds the negotiation tuning knobs.
type Config struct {
	// MaxConversations bounds total conversation slots; the pair cap is
	// MaxConversations/2.
	MaxConversations int
	// GeneralChatProbability is the chance an otherwise unrelated pair
	// still talks.
	GeneralChatProbability float64
	// CallTimeout bounds each collaborator call. Zero means no timeout.
	CallTimeout time.Duration
	// Rand is the random source for pair selection and lobbying gates.
	Rand *rand.Rand
}

// DefaultConfig returns the standard negotiation parameters.
func DefaultConfig() Config {
	return Config{
		MaxConversations:       8,
		GeneralChatProbability: 0.3,
		CallTimeout:            30 * time.Second,
		Rand:                   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// pairCap returns the maximum number of conversation pairs.
func (c Config) pairCap() int {
	cap := c.MaxConversations / 2
	if cap < 1 {
		cap = 1
	}
	return cap
}

// callCtx derives a per-call context bounded by the configured timeout.
func (c Config) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.CallTimeout)
}
