package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mailopolis/mailopolis/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify Mailopolis configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/mailopolis/config.yaml
Project-specific overrides can be placed in .mailopolis.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		switch len(args) {
		case 0:
			displayAllConfig(cfg)
		case 1:
			displayConfigKey(cfg, args[0])
		default:
			setConfigKey(cfg, args[0], args[1])
		}
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	fmt.Printf("anthropic.api_key: %s\n", config.MaskAPIKey(cfg.Anthropic.APIKey))
	fmt.Printf("anthropic.model: %s\n", orUnset(cfg.Anthropic.Model))
	fmt.Printf("anthropic.use_aws_bedrock: %t\n", cfg.Anthropic.UseAWSBedrock)
	fmt.Printf("game.max_turns: %d\n", cfg.Game.MaxTurns)
	fmt.Printf("game.event_probability: %g\n", cfg.Game.EventProbability)
	fmt.Printf("game.win_sustainability: %d\n", cfg.Game.WinSustainability)
	fmt.Printf("game.win_approval: %d\n", cfg.Game.WinApproval)
	fmt.Printf("game.win_happiness: %d\n", cfg.Game.WinHappiness)
	fmt.Printf("politics.max_conversations: %d\n", cfg.Politics.MaxConversations)
	fmt.Printf("politics.general_chat_probability: %g\n", cfg.Politics.GeneralChatProbability)
	fmt.Printf("politics.call_timeout: %s\n", cfg.Politics.CallTimeout)
	fmt.Printf("roster.file: %s\n", orUnset(cfg.Roster.File))
	fmt.Printf("storage.db_path: %s\n", orUnset(cfg.Storage.DBPath))
	fmt.Printf("log.path: %s\n", orUnset(cfg.Log.Path))
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	value, err := getConfigValue(cfg, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cfg *config.Config, key, value string) {
	if err := setConfigValue(cfg, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Set %s = %s\n", key, value)
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "anthropic.api_key":
		return config.MaskAPIKey(cfg.Anthropic.APIKey), nil
	case "anthropic.model":
		return orUnset(cfg.Anthropic.Model), nil
	case "anthropic.use_aws_bedrock":
		return strconv.FormatBool(cfg.Anthropic.UseAWSBedrock), nil
	case "game.max_turns":
		return strconv.Itoa(cfg.Game.MaxTurns), nil
	case "game.event_probability":
		return strconv.FormatFloat(cfg.Game.EventProbability, 'g', -1, 64), nil
	case "game.win_sustainability":
		return strconv.Itoa(cfg.Game.WinSustainability), nil
	case "game.win_approval":
		return strconv.Itoa(cfg.Game.WinApproval), nil
	case "game.win_happiness":
		return strconv.Itoa(cfg.Game.WinHappiness), nil
	case "politics.max_conversations":
		return strconv.Itoa(cfg.Politics.MaxConversations), nil
	case "politics.general_chat_probability":
		return strconv.FormatFloat(cfg.Politics.GeneralChatProbability, 'g', -1, 64), nil
	case "politics.call_timeout":
		return cfg.Politics.CallTimeout.String(), nil
	case "roster.file":
		return orUnset(cfg.Roster.File), nil
	case "storage.db_path":
		return orUnset(cfg.Storage.DBPath), nil
	case "log.path":
		return orUnset(cfg.Log.Path), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "anthropic.api_key":
		cfg.Anthropic.APIKey = value
	case "anthropic.model":
		cfg.Anthropic.Model = value
	case "anthropic.use_aws_bedrock":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for use_aws_bedrock: %w", err)
		}
		cfg.Anthropic.UseAWSBedrock = b
	case "game.max_turns":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for max_turns: %w", err)
		}
		cfg.Game.MaxTurns = n
	case "game.event_probability":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value for event_probability: %w", err)
		}
		cfg.Game.EventProbability = f
	case "game.win_sustainability":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for win_sustainability: %w", err)
		}
		cfg.Game.WinSustainability = n
	case "game.win_approval":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for win_approval: %w", err)
		}
		cfg.Game.WinApproval = n
	case "game.win_happiness":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for win_happiness: %w", err)
		}
		cfg.Game.WinHappiness = n
	case "politics.max_conversations":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for max_conversations: %w", err)
		}
		cfg.Politics.MaxConversations = n
	case "politics.general_chat_probability":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value for general_chat_probability: %w", err)
		}
		cfg.Politics.GeneralChatProbability = f
	case "politics.call_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for call_timeout: %w", err)
		}
		cfg.Politics.CallTimeout = d
	case "roster.file":
		cfg.Roster.File = value
	case "storage.db_path":
		cfg.Storage.DBPath = value
	case "log.path":
		cfg.Log.Path = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
