package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/mailopolis/mailopolis/internal/api"
	"github.com/mailopolis/mailopolis/internal/config"
	"github.com/mailopolis/mailopolis/internal/game"
	"github.com/mailopolis/mailopolis/internal/politics"
	"github.com/mailopolis/mailopolis/internal/roster"
)

// collaborators bundles the agent backends an engine needs.
type collaborators struct {
	evaluator politics.Evaluator
	converser politics.Converser
	counter   game.CounterProposer
	client    *api.Client
	offline   bool
}

// printUsage reports API token consumption for the session. Offline games
// have nothing to report.
func (c *collaborators) printUsage() {
	if c.client == nil {
		return
	}
	input, output := c.client.Tracker().Total()
	calls := c.client.Tracker().Calls()
	if calls == 0 {
		return
	}
	fmt.Printf("API usage (%s): %d calls, %d input tokens, %d output tokens\n",
		c.client.Model(), calls, input, output)
}

// buildCollaborators selects the agent backend: the Anthropic API when
// credentials are available, the offline heuristic otherwise.
func buildCollaborators(cfg *config.Config) (*collaborators, error) {
	_, keyErr := config.GetAPIKey(cfg)
	if keyErr != nil && !cfg.Anthropic.UseAWSBedrock {
		h := api.NewHeuristic()
		return &collaborators{evaluator: h, converser: h, counter: h, offline: true}, nil
	}

	client, err := api.NewClient(api.ClientConfig{
		Model:         anthropic.Model(cfg.Anthropic.Model),
		APIKey:        cfg.Anthropic.APIKey,
		UseAWSBedrock: cfg.Anthropic.UseAWSBedrock,
		AWSRegion:     cfg.Anthropic.AWSRegion,
		AWSProfile:    cfg.Anthropic.AWSProfile,
	})
	if err != nil {
		return nil, fmt.Errorf("create API client: %w", err)
	}

	c := api.NewCollaborator(client)
	return &collaborators{evaluator: c, converser: c, counter: c, client: client}, nil
}

// buildRoster loads the agent roster, applying the configured override file
// when set.
func buildRoster(cfg *config.Config) (*roster.Roster, error) {
	if cfg.Roster.File == "" {
		return roster.Default(), nil
	}
	r, err := roster.LoadFile(cfg.Roster.File)
	if err != nil {
		return nil, fmt.Errorf("load roster from %s: %w", cfg.Roster.File, err)
	}
	return r, nil
}

// buildEngine wires a complete engine from configuration: roster,
// collaborators, negotiation orchestrator, resolver, and game balance.
func buildEngine(cfg *config.Config) (*game.Engine, *collaborators, error) {
	r, err := buildRoster(cfg)
	if err != nil {
		return nil, nil, err
	}

	collab, err := buildCollaborators(cfg)
	if err != nil {
		return nil, nil, err
	}

	politicsCfg := politics.DefaultConfig()
	if cfg.Politics.MaxConversations > 0 {
		politicsCfg.MaxConversations = cfg.Politics.MaxConversations
	}
	if cfg.Politics.GeneralChatProbability > 0 {
		politicsCfg.GeneralChatProbability = cfg.Politics.GeneralChatProbability
	}
	if cfg.Politics.CallTimeout > 0 {
		politicsCfg.CallTimeout = cfg.Politics.CallTimeout
	}

	orchestrator := politics.NewOrchestrator(r, collab.converser, politicsCfg)
	resolver := politics.NewResolver(collab.evaluator, politicsCfg)

	logger := game.NopLogger()
	if cfg.Log.Path != "" {
		fileLogger, err := game.NewDebugLogger(cfg.Log.Path)
		if err == nil {
			logger = fileLogger
		}
	}

	gameCfg := gameBalance(cfg)
	gameCfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	gameCfg.Logger = logger

	return game.New(r, orchestrator, resolver, collab.counter, gameCfg), collab, nil
}

// gameBalance maps configured balance knobs onto the engine defaults.
func gameBalance(cfg *config.Config) game.Config {
	gameCfg := game.DefaultConfig()
	if cfg.Game.MaxTurns > 0 {
		gameCfg.MaxTurns = cfg.Game.MaxTurns
	}
	if cfg.Game.EventProbability > 0 {
		gameCfg.EventProbability = cfg.Game.EventProbability
	}
	if cfg.Game.WinSustainability > 0 {
		gameCfg.WinSustainability = cfg.Game.WinSustainability
	}
	if cfg.Game.WinApproval > 0 {
		gameCfg.WinApproval = cfg.Game.WinApproval
	}
	if cfg.Game.WinHappiness > 0 {
		gameCfg.WinHappiness = cfg.Game.WinHappiness
	}
	return gameCfg
}

// watchBalance hot-reloads game balance knobs from the config file the
// session was loaded from, when there is one. Returns nil when nothing is
// watchable; callers Close the watcher when it is non-nil.
func watchBalance(cfg *config.Config, engine *game.Engine) *config.Watcher {
	source := cfg.SourceFile()
	if source == "" {
		return nil
	}
	w, err := config.WatchFile(source, func() {
		fresh, err := config.Load()
		if err != nil {
			log.Printf("[config] reload failed: %v", err)
			return
		}
		engine.Tune(gameBalance(fresh))
	})
	if err != nil {
		log.Printf("[config] watch unavailable: %v", err)
		return nil
	}
	return w
}
