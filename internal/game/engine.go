// Package game runs the turn loop for a city simulation: event processing,
// political discussion, decision consequences, end-of-turn bookkeeping, and
// win/loss checks. One Engine holds the state of one game; independent games
// use independent engines.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/mailopolis/mailopolis/internal/roster"
	"github.com/mailopolis/mailopolis/pkg/models"
)

var (
	// ErrGameOver is returned when a turn is submitted after a terminal state.
	ErrGameOver = errors.New("game is over")
	// ErrInvalidProposal is returned when a submitted proposal fails validation.
	ErrInvalidProposal = errors.New("invalid proposal")
)

// Discusser runs the political negotiation for one proposal.
type Discusser interface {
	DiscussProposal(ctx context.Context, proposal models.Proposal, gameCtx models.GameContext) models.PoliticalDiscussion
}

// Decider produces the decision-maker's verdict on a discussed proposal.
type Decider interface {
	Resolve(ctx context.Context, mayor models.AgentProfile, proposal models.Proposal, gameCtx models.GameContext, discussion models.PoliticalDiscussion) models.Evaluation
}

// CounterProposer generates a department's revised pitch after a rejection.
type CounterProposer interface {
	CounterPropose(ctx context.Context, profile models.AgentProfile, original models.Proposal) (models.Proposal, bool, error)
}

// Config holds the game balance parameters.
type Config struct {
	// MaxTurns is the term length; reaching it ends the game.
	MaxTurns int
	// EventProbability is the per-turn chance of a new random event.
	EventProbability float64
	// WinSustainability, WinApproval, and WinHappiness are the victory
	// thresholds; meeting any two wins the game.
	WinSustainability int
	WinApproval       int
	WinHappiness      int
	// Rand drives events, variance, and end-of-turn rolls.
	Rand *rand.Rand
	// Logger receives the turn-by-turn trace. Nil disables logging.
	Logger *DebugLogger
}

// DefaultConfig returns the standard game balance.
func DefaultConfig() Config {
	return Config{
		MaxTurns:          50,
		EventProbability:  0.3,
		WinSustainability: 85,
		WinApproval:       80,
		WinHappiness:      80,
		Rand:              rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:            NopLogger(),
	}
}

// TurnResult is everything one resolved turn reports back to the caller.
type TurnResult struct {
	Status       models.GameStatus       `json:"status"`
	Turn         int                     `json:"turn"`
	CityStats    models.CityStats        `json:"city_stats"`
	Decision     models.Decision         `json:"decision"`
	ActiveEvents []models.GameEvent      `json:"active_events"`
	EndOfTurn    models.EndOfTurnEffects `json:"end_of_turn_effects"`
	Message      string                  `json:"game_message"`
	GameOver     bool                    `json:"is_game_over"`
}

// Summary is a point-in-time view of a game.
type Summary struct {
	Turn           int                `json:"turn"`
	CityStats      models.CityStats   `json:"city_stats"`
	ActiveEvents   []models.GameEvent `json:"active_events"`
	GameOver       bool               `json:"is_game_over"`
	TurnsRemaining int                `json:"turns_remaining"`
	TurnsPlayed    int                `json:"turns_played"`
}

// Engine holds the full state of one game and resolves turns against it.
// Methods are safe for concurrent use; turns resolve one at a time.
type Engine struct {
	mu        sync.Mutex
	roster    *roster.Roster
	discusser Discusser
	decider   Decider
	counter   CounterProposer
	cfg       Config
	rng       *rand.Rand
	logger    *DebugLogger

	stats        models.CityStats
	turn         int
	activeEvents []models.GameEvent
	history      []models.Turn
	over         bool
	status       models.GameStatus
}

// New creates an engine over the given roster and collaborators. The
// counter-proposer may be nil, disabling counter-proposals.
func New(r *roster.Roster, discusser Discusser, decider Decider, counter CounterProposer, cfg Config) *Engine {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		cfg.Logger = NopLogger()
	}
	e := &Engine{
		roster:    r,
		discusser: discusser,
		decider:   decider,
		counter:   counter,
		cfg:       cfg,
		rng:       cfg.Rand,
		logger:    cfg.Logger,
	}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.stats = models.DefaultCityStats()
	e.turn = 0
	e.activeEvents = nil
	e.history = nil
	e.over = false
	e.status = models.StatusOngoing
}

// StartNewGame resets all state and seeds the opening events.
func (e *Engine) StartNewGame() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.logger.Log("starting new game")
	e.reset()
	e.activeEvents = append(e.activeEvents, initialEvents()...)
	return e.summaryLocked()
}

// PlayTurn resolves exactly one turn around the submitted proposal. It
// returns ErrGameOver after a terminal state and ErrInvalidProposal for a
// proposal that fails validation; in both cases the scoreboard is untouched.
func (e *Engine) PlayTurn(ctx context.Context, proposal models.Proposal) (TurnResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.over {
		return TurnResult{}, ErrGameOver
	}
	if err := proposal.Validate(); err != nil {
		return TurnResult{}, fmt.Errorf("%w: %v", ErrInvalidProposal, err)
	}

	e.turn++
	e.logger.Log("TURN %d: %s", e.turn, proposal.Title)

	e.processEvents()

	gameCtx := e.gameContextLocked()
	discussion := e.discusser.DiscussProposal(ctx, proposal, gameCtx)
	verdict := e.decider.Resolve(ctx, e.roster.DecisionMaker(), proposal, gameCtx, discussion)
	e.logger.Log("mayor decision: accept=%v confidence=%d", verdict.Accept, verdict.Confidence)

	consequences := decisionConsequences(proposal, verdict, discussion, e.rng)
	e.stats.Apply(consequences.StatChanges)

	endOfTurn := e.processEndOfTurn()

	status, message := e.checkStatusLocked()
	if status.Terminal() {
		e.over = true
		e.logger.Log("game over: %s", status)
	}
	e.status = status

	decision := models.Decision{
		Proposal:      proposal,
		MayorDecision: verdict,
		Discussion:    discussion,
		Consequences:  consequences,
	}
	events := make([]models.GameEvent, len(e.activeEvents))
	copy(events, e.activeEvents)
	e.history = append(e.history, models.Turn{
		TurnNumber:            e.turn,
		CityStats:             e.stats,
		ActiveEvents:          events,
		Proposal:              proposal,
		Decision:              decision,
		PoliticalConsequences: consequences.PoliticalEffects,
	})

	return TurnResult{
		Status:       status,
		Turn:         e.turn,
		CityStats:    e.stats,
		Decision:     decision,
		ActiveEvents: events,
		EndOfTurn:    endOfTurn,
		Message:      message,
		GameOver:     e.over,
	}, nil
}

// CounterProposal asks the rejected proposal's target department for a
// revised pitch. The second return is false when the department declined or
// no counter-proposer is configured.
func (e *Engine) CounterProposal(ctx context.Context, rejected models.Proposal) (models.Proposal, bool, error) {
	if e.counter == nil {
		return models.Proposal{}, false, nil
	}
	profile, ok := e.roster.ByDepartment(rejected.TargetDepartment)
	if !ok {
		return models.Proposal{}, false, fmt.Errorf("no profile for department %s", rejected.TargetDepartment)
	}
	counter, ok, err := e.counter.CounterPropose(ctx, profile, rejected)
	if err != nil {
		return models.Proposal{}, false, fmt.Errorf("counter-proposal from %s: %w", rejected.TargetDepartment, err)
	}
	return counter, ok, nil
}

// Tune applies updated balance parameters to a running game. Only positive
// fields are applied; Rand and Logger are never replaced mid-game.
func (e *Engine) Tune(cfg Config) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cfg.MaxTurns > 0 {
		e.cfg.MaxTurns = cfg.MaxTurns
	}
	if cfg.EventProbability > 0 {
		e.cfg.EventProbability = cfg.EventProbability
	}
	if cfg.WinSustainability > 0 {
		e.cfg.WinSustainability = cfg.WinSustainability
	}
	if cfg.WinApproval > 0 {
		e.cfg.WinApproval = cfg.WinApproval
	}
	if cfg.WinHappiness > 0 {
		e.cfg.WinHappiness = cfg.WinHappiness
	}
	e.logger.Log("balance tuned: max_turns=%d event_probability=%g", e.cfg.MaxTurns, e.cfg.EventProbability)
}

// Summary returns a snapshot of the current game.
func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.summaryLocked()
}

func (e *Engine) summaryLocked() Summary {
	events := make([]models.GameEvent, len(e.activeEvents))
	copy(events, e.activeEvents)
	return Summary{
		Turn:           e.turn,
		CityStats:      e.stats,
		ActiveEvents:   events,
		GameOver:       e.over,
		TurnsRemaining: e.cfg.MaxTurns - e.turn,
		TurnsPlayed:    len(e.history),
	}
}

// History returns a copy of the turn records so far.
func (e *Engine) History() []models.Turn {
	e.mu.Lock()
	defer e.mu.Unlock()
	history := make([]models.Turn, len(e.history))
	copy(history, e.history)
	return history
}

// Stats returns the current scoreboard.
func (e *Engine) Stats() models.CityStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}

// Status returns the game's lifecycle state.
func (e *Engine) Status() models.GameStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// gameContextLocked builds the context agents reason over.
func (e *Engine) gameContextLocked() models.GameContext {
	titles := make([]string, 0, len(e.activeEvents))
	crisis := "moderate"
	for _, event := range e.activeEvents {
		titles = append(titles, event.Title)
		if event.Urgency > 7 {
			crisis = "high"
		}
	}
	return models.GameContext{
		SustainabilityScore:  e.stats.SustainabilityScore,
		BudgetRemaining:      e.stats.Budget,
		PublicApproval:       e.stats.PublicApproval,
		PopulationHappiness:  e.stats.PopulationHappiness,
		InfrastructureHealth: e.stats.InfrastructureHealth,
		TurnNumber:           e.turn,
		ActiveEvents:         titles,
		CrisisLevel:          crisis,
	}
}

// processEndOfTurn applies fixed operating costs, natural infrastructure
// decay, and the tax bonus a strong economy earns.
func (e *Engine) processEndOfTurn() models.EndOfTurnEffects {
	effects := models.EndOfTurnEffects{
		MonthlyCosts: map[string]int{
			"infrastructure_maintenance": -20000,
			"staff_salaries":             -50000,
			"utilities":                  -15000,
		},
	}
	for _, cost := range effects.MonthlyCosts {
		e.stats.Budget += cost
	}

	if e.stats.InfrastructureHealth > 0 {
		decay := e.rng.Intn(3) + 1
		e.stats.Apply(map[models.Stat]int{models.StatInfrastructure: -decay})
		effects.InfrastructureDecay = -decay
	}

	if e.stats.EconomicGrowth > 60 {
		bonus := e.rng.Intn(20001) + 10000
		e.stats.Budget += bonus
		effects.EconomicBonus = bonus
	}

	return effects
}

// checkStatusLocked evaluates win, loss, and term-limit conditions in that
// order.
func (e *Engine) checkStatusLocked() (models.GameStatus, string) {
	wins := 0
	if e.stats.SustainabilityScore >= e.cfg.WinSustainability {
		wins++
	}
	if e.stats.PublicApproval >= e.cfg.WinApproval {
		wins++
	}
	if e.stats.PopulationHappiness >= e.cfg.WinHappiness {
		wins++
	}
	if wins >= 2 {
		return models.StatusVictory, "Congratulations! You have successfully transformed Mailopolis into a model sustainable city!"
	}

	failures := 0
	if e.stats.SustainabilityScore < 20 {
		failures++
	}
	if e.stats.PublicApproval < 20 {
		failures++
	}
	if e.stats.PopulationHappiness < 20 {
		failures++
	}
	if e.stats.Budget < -500000 {
		failures++
	}
	if failures >= 2 {
		return models.StatusDefeat, "Game over! Multiple critical failures have made your position as mayor untenable."
	}

	if e.turn >= e.cfg.MaxTurns {
		avg := (e.stats.SustainabilityScore + e.stats.PublicApproval + e.stats.PopulationHappiness) / 3
		if avg >= 70 {
			return models.StatusGoodEnding, "Your term ended with the city in good condition. A solid legacy!"
		}
		return models.StatusMixedEnding, "Your term ended with mixed results. Some progress made, but challenges remain."
	}

	return models.StatusOngoing, fmt.Sprintf("Turn %d of %d completed. The city continues to evolve...", e.turn, e.cfg.MaxTurns)
}
