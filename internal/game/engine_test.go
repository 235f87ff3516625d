package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/mailopolis/mailopolis/internal/roster"
	"github.com/mailopolis/mailopolis/pkg/models"
)

type stubDiscusser struct {
	discussion models.PoliticalDiscussion
}

func (s *stubDiscusser) DiscussProposal(_ context.Context, proposal models.Proposal, _ models.GameContext) models.PoliticalDiscussion {
	d := s.discussion
	d.ProposalID = proposal.ID
	return d
}

type stubDecider struct {
	accept bool
}

func (s *stubDecider) Resolve(_ context.Context, _ models.AgentProfile, _ models.Proposal, _ models.GameContext, _ models.PoliticalDiscussion) models.Evaluation {
	return models.Evaluation{Accept: s.accept, Reasoning: "stub", Confidence: 70}
}

type stubCounter struct {
	err error
}

func (s *stubCounter) CounterPropose(_ context.Context, profile models.AgentProfile, original models.Proposal) (models.Proposal, bool, error) {
	if s.err != nil {
		return models.Proposal{}, false, s.err
	}
	counter := original
	counter.Title = "Modified " + original.Title
	counter.ProposedBy = string(profile.Department) + "_counter"
	return counter, true, nil
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	return New(roster.Default(), &stubDiscusser{}, &stubDecider{accept: true}, &stubCounter{}, cfg)
}

func deterministicConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.EventProbability = 0
	cfg.Rand = rand.New(rand.NewSource(seed))
	cfg.Logger = NopLogger()
	return cfg
}

func turnProposal() models.Proposal {
	return models.NewProposal(
		"Smart Grid Modernization",
		"Upgrade city electrical grid.",
		"ai_department_Energy",
		models.DepartmentEnergy,
		20, 0, 0,
	)
}

func TestStartNewGameResetsState(t *testing.T) {
	e := newTestEngine(t, deterministicConfig(1))
	if _, err := e.PlayTurn(context.Background(), turnProposal()); err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}

	summary := e.StartNewGame()

	if summary.Turn != 0 {
		t.Errorf("turn = %d, want 0", summary.Turn)
	}
	if summary.CityStats != models.DefaultCityStats() {
		t.Errorf("stats = %+v, want defaults", summary.CityStats)
	}
	if len(summary.ActiveEvents) != 1 || summary.ActiveEvents[0].Title != "New Administration Honeymoon" {
		t.Errorf("active events = %v, want honeymoon only", summary.ActiveEvents)
	}
	if summary.GameOver {
		t.Error("fresh game reports game over")
	}
	if len(e.History()) != 0 {
		t.Errorf("history length = %d, want 0", len(e.History()))
	}
}

func TestPlayTurnAcceptedProposalMovesStats(t *testing.T) {
	e := newTestEngine(t, deterministicConfig(2))
	e.StartNewGame()

	result, err := e.PlayTurn(context.Background(), turnProposal())
	if err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}

	if result.Turn != 1 {
		t.Errorf("turn = %d, want 1", result.Turn)
	}
	// Sustainability gains 20 with up to 20% variance.
	sust := result.CityStats.SustainabilityScore
	if sust < 45+16 || sust > 45+24 {
		t.Errorf("sustainability = %d, want within [61, 69]", sust)
	}
	// Monthly costs are fixed and the proposal has no economic impact, so
	// the treasury moves exactly by the operating costs.
	if result.CityStats.Budget != 1_000_000-85_000 {
		t.Errorf("budget = %d, want 915000", result.CityStats.Budget)
	}
	// Infrastructure only decays naturally this turn.
	infra := result.CityStats.InfrastructureHealth
	if infra < 67 || infra > 69 {
		t.Errorf("infrastructure = %d, want within [67, 69]", infra)
	}
	if result.Status != models.StatusOngoing || result.GameOver {
		t.Errorf("status = %s gameOver=%v, want ongoing", result.Status, result.GameOver)
	}
	if len(e.History()) != 1 {
		t.Errorf("history length = %d, want 1", len(e.History()))
	}
}

func TestPlayTurnRejectedProposalPenalizesInaction(t *testing.T) {
	e := New(roster.Default(), &stubDiscusser{}, &stubDecider{accept: false}, nil, deterministicConfig(3))
	e.StartNewGame()

	result, err := e.PlayTurn(context.Background(), turnProposal())
	if err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}

	if result.CityStats.PublicApproval != 60 {
		t.Errorf("approval = %d, want 60", result.CityStats.PublicApproval)
	}
	if result.CityStats.CorruptionLevel != 22 {
		t.Errorf("corruption = %d, want 22", result.CityStats.CorruptionLevel)
	}
	// Rejection leaves sustainability untouched.
	if result.CityStats.SustainabilityScore != 45 {
		t.Errorf("sustainability = %d, want 45", result.CityStats.SustainabilityScore)
	}
	shift := result.Decision.Consequences.PoliticalEffects.RelationshipShifts[models.DepartmentEnergy]
	if shift != -10 {
		t.Errorf("relationship shift = %d, want -10", shift)
	}
}

func TestPlayTurnInvalidProposal(t *testing.T) {
	e := newTestEngine(t, deterministicConfig(4))
	e.StartNewGame()

	bad := turnProposal()
	bad.Title = ""
	_, err := e.PlayTurn(context.Background(), bad)
	if !errors.Is(err, ErrInvalidProposal) {
		t.Fatalf("err = %v, want ErrInvalidProposal", err)
	}
	if e.Stats() != models.DefaultCityStats() {
		t.Error("invalid proposal mutated the scoreboard")
	}
	if e.Summary().Turn != 0 {
		t.Error("invalid proposal advanced the turn counter")
	}
}

func TestPlayTurnAfterTerminalState(t *testing.T) {
	cfg := deterministicConfig(5)
	cfg.MaxTurns = 1
	e := newTestEngine(t, cfg)
	e.StartNewGame()

	result, err := e.PlayTurn(context.Background(), turnProposal())
	if err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}
	if !result.GameOver || !result.Status.Terminal() {
		t.Fatalf("expected terminal status at turn limit, got %s", result.Status)
	}

	if _, err := e.PlayTurn(context.Background(), turnProposal()); !errors.Is(err, ErrGameOver) {
		t.Errorf("err = %v, want ErrGameOver", err)
	}
}

func TestVictoryRequiresTwoThresholds(t *testing.T) {
	cfg := deterministicConfig(6)
	// Defaults start at approval 65 and happiness 60.
	cfg.WinApproval = 50
	cfg.WinHappiness = 50
	cfg.WinSustainability = 99
	e := newTestEngine(t, cfg)
	e.StartNewGame()

	result, err := e.PlayTurn(context.Background(), models.NewProposal(
		"Quiet Quarter", "Maintain current course.", "tester",
		models.DepartmentEnergy, 0, 0, 0,
	))
	if err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}
	if result.Status != models.StatusVictory {
		t.Errorf("status = %s, want victory", result.Status)
	}
	if !result.GameOver {
		t.Error("victory did not end the game")
	}
}

func TestTuneAdjustsBalanceMidGame(t *testing.T) {
	e := newTestEngine(t, deterministicConfig(11))
	e.StartNewGame()

	if _, err := e.PlayTurn(context.Background(), models.NewProposal(
		"Quiet Quarter", "Maintain current course.", "tester",
		models.DepartmentEnergy, 0, 0, 0,
	)); err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}

	// Cutting the term short takes effect on the very next turn.
	e.Tune(Config{MaxTurns: 2})

	result, err := e.PlayTurn(context.Background(), models.NewProposal(
		"Quiet Quarter II", "Maintain current course.", "tester",
		models.DepartmentEnergy, 0, 0, 0,
	))
	if err != nil {
		t.Fatalf("PlayTurn: %v", err)
	}
	if !result.GameOver {
		t.Fatal("shortened term did not end the game")
	}
	if result.Status != models.StatusGoodEnding && result.Status != models.StatusMixedEnding {
		t.Errorf("status = %s, want a term-limit ending", result.Status)
	}
	if e.Summary().TurnsRemaining != 0 {
		t.Errorf("turns remaining = %d, want 0", e.Summary().TurnsRemaining)
	}
}

func TestTuneIgnoresZeroFields(t *testing.T) {
	e := newTestEngine(t, deterministicConfig(12))

	e.Tune(Config{WinApproval: 90})

	if e.cfg.WinApproval != 90 {
		t.Errorf("WinApproval = %d, want 90", e.cfg.WinApproval)
	}
	if e.cfg.MaxTurns != 50 {
		t.Errorf("MaxTurns = %d, want 50 preserved", e.cfg.MaxTurns)
	}
	if e.cfg.EventProbability != 0 {
		t.Errorf("EventProbability = %g, want 0 preserved", e.cfg.EventProbability)
	}
}

func TestDefeatFromSustainedRejection(t *testing.T) {
	e := New(roster.Default(), &stubDiscusser{}, &stubDecider{accept: false}, nil, deterministicConfig(7))
	e.StartNewGame()

	var last TurnResult
	for i := 0; i < 30; i++ {
		result, err := e.PlayTurn(context.Background(), turnProposal())
		if err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
		last = result
		if result.GameOver {
			break
		}
	}

	if last.Status != models.StatusDefeat {
		t.Fatalf("status = %s, want defeat", last.Status)
	}
	// Approval collapse plus bankruptcy are the two critical failures.
	if last.CityStats.PublicApproval >= 20 {
		t.Errorf("approval = %d, expected collapse below 20", last.CityStats.PublicApproval)
	}
	if last.CityStats.Budget >= -500_000 {
		t.Errorf("budget = %d, expected bankruptcy", last.CityStats.Budget)
	}
}

func TestCounterProposal(t *testing.T) {
	e := newTestEngine(t, deterministicConfig(8))
	rejected := turnProposal()

	counter, ok, err := e.CounterProposal(context.Background(), rejected)
	if err != nil || !ok {
		t.Fatalf("CounterProposal: ok=%v err=%v", ok, err)
	}
	if counter.Title != "Modified Smart Grid Modernization" {
		t.Errorf("title = %q, want modified original", counter.Title)
	}

	none := New(roster.Default(), &stubDiscusser{}, &stubDecider{}, nil, deterministicConfig(8))
	if _, ok, err := none.CounterProposal(context.Background(), rejected); ok || err != nil {
		t.Errorf("without a counter-proposer, ok=%v err=%v, want declined", ok, err)
	}
}
