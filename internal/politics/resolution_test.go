package politics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mailopolis/mailopolis/pkg/models"
)

type fakeEvaluator struct {
	eval         models.Evaluation
	err          error
	lastBriefing string
}

func (f *fakeEvaluator) Evaluate(_ context.Context, _ models.Proposal, _ models.AgentProfile, _ models.GameContext) (models.Evaluation, error) {
	return f.eval, f.err
}

func (f *fakeEvaluator) Decide(_ context.Context, _ models.Proposal, _ models.AgentProfile, _ models.GameContext, briefing string) (models.Evaluation, error) {
	f.lastBriefing = briefing
	return f.eval, f.err
}

func mayorProfile() models.AgentProfile {
	return models.AgentProfile{
		Name:       "Mayor Patricia Williams",
		Role:       "Mayor",
		Department: models.DepartmentMayor,
	}
}

func TestResolvePassesBriefingToEvaluator(t *testing.T) {
	fake := &fakeEvaluator{eval: models.Evaluation{Accept: true, Reasoning: "fine", Confidence: 70}}
	r := NewResolver(fake, testConfig(1))

	discussion := models.PoliticalDiscussion{
		MayorLobbying: []models.MayorLobby{
			{AgentName: "Dr. Marcus Chen", Department: models.DepartmentEnergy,
				Message: "This matters.", InfluenceAttempt: models.LobbySupport},
		},
		CoalitionsFormed: [][]string{{"Dr. Marcus Chen", "Elena Vasquez"}},
		FinalPositions: map[string]models.Position{
			"Dr. Marcus Chen": models.PositionSupport,
			"Elena Vasquez":   models.PositionSupport,
		},
	}

	eval := r.Resolve(context.Background(), mayorProfile(), testProposal(), models.GameContext{}, discussion)
	if !eval.Accept {
		t.Error("expected evaluator verdict to pass through")
	}
	for _, want := range []string{"Dr. Marcus Chen", "Elena Vasquez", "support"} {
		if !strings.Contains(fake.lastBriefing, want) {
			t.Errorf("briefing missing %q:\n%s", want, fake.lastBriefing)
		}
	}
}

func TestResolveFallsBackOnEvaluatorError(t *testing.T) {
	tests := []struct {
		name       string
		positions  map[string]models.Position
		lobbying   []models.MayorLobby
		wantAccept bool
	}{
		{
			"majority support accepts",
			map[string]models.Position{
				"A": models.PositionSupport,
				"B": models.PositionSupport,
				"C": models.PositionOppose,
			},
			nil,
			true,
		},
		{
			"even split rejects",
			map[string]models.Position{
				"A": models.PositionSupport,
				"B": models.PositionOppose,
			},
			nil,
			false,
		},
		{
			"supportive lobbying tips the scale",
			map[string]models.Position{
				"A": models.PositionSupport,
				"B": models.PositionOppose,
			},
			[]models.MayorLobby{
				{AgentName: "C", InfluenceAttempt: models.LobbySupport},
				{AgentName: "D", InfluenceAttempt: models.LobbySupport},
			},
			true,
		},
		{
			"opposing lobbying adds nothing",
			map[string]models.Position{
				"A": models.PositionOppose,
				"B": models.PositionOppose,
			},
			[]models.MayorLobby{
				{AgentName: "C", InfluenceAttempt: models.LobbyOppose},
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEvaluator{err: errors.New("timeout")}
			r := NewResolver(fake, testConfig(1))
			discussion := models.PoliticalDiscussion{
				FinalPositions: tt.positions,
				MayorLobbying:  tt.lobbying,
			}

			eval := r.Resolve(context.Background(), mayorProfile(), testProposal(), models.GameContext{}, discussion)
			if eval.Accept != tt.wantAccept {
				t.Errorf("accept = %v, want %v", eval.Accept, tt.wantAccept)
			}
			if eval.Confidence < 40 || eval.Confidence > 80 {
				t.Errorf("fallback confidence %d out of [40, 80]", eval.Confidence)
			}
			if eval.Reasoning == "" {
				t.Error("fallback reasoning is empty")
			}
		})
	}
}

func TestResolveFallbackWithNoPositions(t *testing.T) {
	fake := &fakeEvaluator{err: errors.New("timeout")}
	r := NewResolver(fake, testConfig(1))

	eval := r.Resolve(context.Background(), mayorProfile(), testProposal(), models.GameContext{},
		models.PoliticalDiscussion{FinalPositions: map[string]models.Position{}})
	if eval.Accept {
		t.Error("expected rejection when no positions were recorded")
	}
	if eval.Confidence != 40 {
		t.Errorf("confidence = %d, want 40", eval.Confidence)
	}
}
