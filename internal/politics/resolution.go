package politics

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// Resolver turns a finished discussion into the decision-maker's verdict.
type Resolver struct {
	evaluator Evaluator
	cfg       Config
}

// NewResolver creates a Resolver over the given evaluation collaborator.
func NewResolver(evaluator Evaluator, cfg Config) *Resolver {
	return &Resolver{evaluator: evaluator, cfg: cfg}
}

// Resolve asks the decision-maker for a verdict, briefed on the discussion.
// A collaborator failure falls back to a deterministic tally of the recorded
// positions so resolution itself never fails.
func (r *Resolver) Resolve(ctx context.Context, mayor models.AgentProfile, proposal models.Proposal, gameCtx models.GameContext, discussion models.PoliticalDiscussion) models.Evaluation {
	briefing := buildBriefing(discussion)

	callCtx, cancel := r.cfg.callCtx(ctx)
	defer cancel()

	eval, err := r.evaluator.Decide(callCtx, proposal, mayor, gameCtx, briefing)
	if err != nil {
		log.Printf("[politics] mayor decision failed, falling back to position tally: %v", err)
		return tallyPositions(discussion)
	}
	return eval
}

// buildBriefing renders the discussion as the text the decision-maker reads:
// lobbying attempts, coalitions, and the position tally.
func buildBriefing(discussion models.PoliticalDiscussion) string {
	var b strings.Builder

	if len(discussion.MayorLobbying) > 0 {
		b.WriteString("Lobbying received:\n")
		for _, lobby := range discussion.MayorLobbying {
			fmt.Fprintf(&b, "- %s (%s), urging %s: %s\n",
				lobby.AgentName, lobby.Department, lobby.InfluenceAttempt, lobby.Message)
		}
	} else {
		b.WriteString("No one lobbied you directly on this proposal.\n")
	}

	if len(discussion.CoalitionsFormed) > 0 {
		b.WriteString("Coalitions formed:\n")
		for _, coalition := range discussion.CoalitionsFormed {
			fmt.Fprintf(&b, "- %s\n", strings.Join(coalition, " and "))
		}
	}

	if len(discussion.FinalPositions) > 0 {
		b.WriteString("Department positions:\n")
		names := make([]string, 0, len(discussion.FinalPositions))
		for name := range discussion.FinalPositions {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "- %s: %s\n", name, discussion.FinalPositions[name])
		}
	}

	return b.String()
}

// tallyPositions is the deterministic fallback verdict. Support positions
// count fully and supportive lobbying counts half, measured against the
// number of recorded positions. A ratio above one half accepts.
func tallyPositions(discussion models.PoliticalDiscussion) models.Evaluation {
	total := len(discussion.FinalPositions)
	if total == 0 {
		return models.Evaluation{
			Accept:     false,
			Reasoning:  "No departments took a position, so I am holding off on this proposal.",
			Confidence: 40,
		}
	}

	support := 0.0
	for _, pos := range discussion.FinalPositions {
		if pos == models.PositionSupport {
			support++
		}
	}
	for _, lobby := range discussion.MayorLobbying {
		if lobby.InfluenceAttempt == models.LobbySupport {
			support += 0.5
		}
	}

	ratio := support / float64(total)
	confidence := int(ratio * 100)
	if confidence < 40 {
		confidence = 40
	}
	if confidence > 80 {
		confidence = 80
	}

	accept := ratio > 0.5
	verb := "rejecting"
	if accept {
		verb = "approving"
	}
	return models.Evaluation{
		Accept:     accept,
		Reasoning:  fmt.Sprintf("Going by the room: %.0f%% weighted support across %d positions, so I am %s this proposal.", ratio*100, total, verb),
		Confidence: confidence,
	}
}
