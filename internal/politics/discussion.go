package politics

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/mailopolis/mailopolis/internal/roster"
	"github.com/mailopolis/mailopolis/pkg/models"
)

// fallbackMessage stands in for a collaborator response that failed or timed
// out. Phase 1 failures must never abort a turn.
const fallbackMessage = "I need to review this proposal more carefully from my department's perspective."

// Orchestrator produces a PoliticalDiscussion for one proposal. The
// decision-maker is excluded from every peer phase.
type Orchestrator struct {
	roster    *roster.Roster
	converser Converser
	cfg       Config
}

// NewOrchestrator creates an Orchestrator over the given roster and
// conversation collaborator.
func NewOrchestrator(r *roster.Roster, converser Converser, cfg Config) *Orchestrator {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Orchestrator{roster: r, converser: converser, cfg: cfg}
}

// DiscussProposal runs the four negotiation phases and returns the structured
// discussion record. It never fails: collaborator errors degrade to fallback
// text, and anything unexpected yields an empty discussion that the turn
// engine can tolerate.
func (o *Orchestrator) DiscussProposal(ctx context.Context, proposal models.Proposal, gameCtx models.GameContext) (discussion models.PoliticalDiscussion) {
	discussion = models.PoliticalDiscussion{
		ProposalID:     proposal.ID,
		FinalPositions: map[string]models.Position{},
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[politics] discussion for %s panicked: %v", proposal.ID, r)
			discussion = models.PoliticalDiscussion{
				ProposalID:     proposal.ID,
				FinalPositions: map[string]models.Position{},
			}
		}
	}()

	peers := o.roster.Peers()

	// Phase 1: private conversations. Pair selection draws from the shared
	// random source sequentially; the conversations themselves fan out.
	pairs := selectPairs(peers, o.cfg.GeneralChatProbability, o.cfg.pairCap(), o.cfg.Rand)
	discussion.PrivateConversations = o.runConversations(ctx, pairs, proposal)

	// Phase 2: coalition analysis over Phase 1 output.
	discussion.CoalitionsFormed = detectCoalitions(discussion.PrivateConversations)

	// Phase 3: mayor lobbying. The probabilistic gate is drawn sequentially
	// per peer, then the lobbying calls fan out.
	discussion.MayorLobbying = o.runLobbying(ctx, peers, proposal, gameCtx, discussion.PrivateConversations)

	// Phase 4: final positions, a pure function of Phase 1.
	discussion.FinalPositions = finalPositions(discussion.PrivateConversations)

	return discussion
}

// runConversations issues both sides of each pair's exchange. Pairs run
// concurrently; within a pair the responder sees the initiator's text.
func (o *Orchestrator) runConversations(ctx context.Context, pairs []conversationPair, proposal models.Proposal) []models.PrivateConversation {
	conversations := make([]models.PrivateConversation, len(pairs))

	var wg sync.WaitGroup
	for i, pair := range pairs {
		wg.Add(1)
		go func(i int, pair conversationPair) {
			defer wg.Done()
			conversations[i] = o.runConversation(ctx, pair, proposal)
		}(i, pair)
	}
	wg.Wait()

	return conversations
}

func (o *Orchestrator) runConversation(ctx context.Context, pair conversationPair, proposal models.Proposal) models.PrivateConversation {
	opening := o.converseOrFallback(ctx, pair.initiator, pair.responder, proposal.Title, pair.purpose, "")
	reply := o.converseOrFallback(ctx, pair.responder, pair.initiator, proposal.Title, pair.purpose, opening)

	return models.PrivateConversation{
		Participants: [2]string{pair.initiator.Name, pair.responder.Name},
		Messages: []models.ConversationMessage{
			{Speaker: pair.initiator.Name, Content: opening},
			{Speaker: pair.responder.Name, Content: reply},
		},
		Purpose: pair.purpose,
	}
}

func (o *Orchestrator) converseOrFallback(ctx context.Context, speaker, other models.AgentProfile, topic string, purpose models.ConversationPurpose, prior string) string {
	callCtx, cancel := o.cfg.callCtx(ctx)
	defer cancel()

	text, err := o.converser.Converse(callCtx, speaker, other, topic, purpose, prior)
	if err != nil || text == "" {
		if err != nil {
			log.Printf("[politics] conversation %s->%s failed: %v", speaker.Name, other.Name, err)
		}
		return fallbackMessage
	}
	return text
}

// runLobbying applies the lobbying gate to every peer and collects the
// resulting influence attempts. A failed lobbying call is skipped, never
// retried.
func (o *Orchestrator) runLobbying(ctx context.Context, peers []models.AgentProfile, proposal models.Proposal, gameCtx models.GameContext, conversations []models.PrivateConversation) []models.MayorLobby {
	var lobbyists []models.AgentProfile
	for _, peer := range peers {
		if o.cfg.Rand.Float64() < lobbyProbability(peer, proposal, conversations) {
			lobbyists = append(lobbyists, peer)
		}
	}

	results := make([]*models.MayorLobby, len(lobbyists))
	sem := make(chan struct{}, o.cfg.pairCap())
	var wg sync.WaitGroup
	for i, peer := range lobbyists {
		wg.Add(1)
		go func(i int, peer models.AgentProfile) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			callCtx, cancel := o.cfg.callCtx(ctx)
			defer cancel()

			msg, err := o.converser.Lobby(callCtx, peer, proposal, gameCtx)
			if err != nil {
				log.Printf("[politics] lobbying by %s failed: %v", peer.Name, err)
				return
			}
			results[i] = &models.MayorLobby{
				AgentName:        peer.Name,
				Department:       peer.Department,
				Message:          msg.Message,
				InfluenceAttempt: msg.Strategy,
			}
		}(i, peer)
	}
	wg.Wait()

	var lobbying []models.MayorLobby
	for _, r := range results {
		if r != nil {
			lobbying = append(lobbying, *r)
		}
	}
	return lobbying
}

// lobbyProbability computes the chance a peer lobbies the mayor:
// political awareness as a base, +0.3 for sustainability champions on a
// strongly green proposal, +0.2 for agents embedded in two or more private
// conversations, clamped to 0.8.
func lobbyProbability(peer models.AgentProfile, proposal models.Proposal, conversations []models.PrivateConversation) float64 {
	p := float64(peer.PoliticalAwareness) / 100

	if peer.SustainabilityFocus > 70 && proposal.SustainabilityImpact > 30 {
		p += 0.3
	}

	involved := 0
	for _, conv := range conversations {
		if conv.Involves(peer.Name) {
			involved++
		}
	}
	if involved >= 2 {
		p += 0.2
	}

	if p > 0.8 {
		p = 0.8
	}
	return p
}
