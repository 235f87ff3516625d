// Package config handles configuration loading and management for Mailopolis.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for Mailopolis.
type Config struct {
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Game      GameConfig      `mapstructure:"game"`
	Politics  PoliticsConfig  `mapstructure:"politics"`
	Roster    RosterConfig    `mapstructure:"roster"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Log       LogConfig       `mapstructure:"log"`

	// source is the highest-precedence config file the values came from,
	// empty when only defaults and environment applied.
	source string
}

// SourceFile returns the config file this configuration was loaded from, or
// empty when no file was found. Watch it to pick up edits during a session.
func (c *Config) SourceFile() string {
	return c.source
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model"`
	UseAWSBedrock bool   `mapstructure:"use_aws_bedrock"`
	AWSRegion     string `mapstructure:"aws_region"`
	AWSProfile    string `mapstructure:"aws_profile"`
}

// GameConfig holds game balance settings.
type GameConfig struct {
	MaxTurns          int     `mapstructure:"max_turns"`
	EventProbability  float64 `mapstructure:"event_probability"`
	WinSustainability int     `mapstructure:"win_sustainability"`
	WinApproval       int     `mapstructure:"win_approval"`
	WinHappiness      int     `mapstructure:"win_happiness"`
}

// PoliticsConfig holds negotiation settings.
type PoliticsConfig struct {
	MaxConversations       int           `mapstructure:"max_conversations"`
	GeneralChatProbability float64       `mapstructure:"general_chat_probability"`
	CallTimeout            time.Duration `mapstructure:"call_timeout"`
}

// RosterConfig holds agent roster settings.
type RosterConfig struct {
	// File is an optional YAML file overriding built-in agent profiles.
	File string `mapstructure:"file"`
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	// DBPath overrides the default database location. Empty uses the
	// XDG data directory.
	DBPath string `mapstructure:"db_path"`
}

// LogConfig holds game log settings.
type LogConfig struct {
	// Path is the game log file. Empty disables file logging.
	Path string `mapstructure:"path"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (ANTHROPIC_API_KEY, MAILOPOLIS_*)
// 2. Project config (.mailopolis.yaml in current directory or parent)
// 3. User config (~/.config/mailopolis/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.SetEnvPrefix("MAILOPOLIS")
	v.AutomaticEnv()

	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")
	v.BindEnv("anthropic.use_aws_bedrock", "MAILOPOLIS_USE_BEDROCK")
	v.BindEnv("anthropic.aws_region", "AWS_REGION")
	v.BindEnv("anthropic.aws_profile", "AWS_PROFILE")
	v.BindEnv("game.max_turns", "MAILOPOLIS_MAX_TURNS")
	v.BindEnv("roster.file", "MAILOPOLIS_ROSTER_FILE")
	v.BindEnv("storage.db_path", "MAILOPOLIS_DB_PATH")
	v.BindEnv("log.path", "MAILOPOLIS_LOG_PATH")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)

	if projectConfig != "" {
		cfg.source = projectConfig
	} else {
		cfg.source = v.ConfigFileUsed()
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)
	cfg.source = path

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(userConfigDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configPath)

	v.Set("anthropic.api_key", cfg.Anthropic.APIKey)
	v.Set("anthropic.model", cfg.Anthropic.Model)
	v.Set("anthropic.use_aws_bedrock", cfg.Anthropic.UseAWSBedrock)
	v.Set("anthropic.aws_region", cfg.Anthropic.AWSRegion)
	v.Set("anthropic.aws_profile", cfg.Anthropic.AWSProfile)
	v.Set("game.max_turns", cfg.Game.MaxTurns)
	v.Set("game.event_probability", cfg.Game.EventProbability)
	v.Set("game.win_sustainability", cfg.Game.WinSustainability)
	v.Set("game.win_approval", cfg.Game.WinApproval)
	v.Set("game.win_happiness", cfg.Game.WinHappiness)
	v.Set("politics.max_conversations", cfg.Politics.MaxConversations)
	v.Set("politics.general_chat_probability", cfg.Politics.GeneralChatProbability)
	v.Set("politics.call_timeout", cfg.Politics.CallTimeout.String())
	v.Set("roster.file", cfg.Roster.File)
	v.Set("storage.db_path", cfg.Storage.DBPath)
	v.Set("log.path", cfg.Log.Path)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "")
	v.SetDefault("anthropic.use_aws_bedrock", false)
	v.SetDefault("anthropic.aws_region", "")
	v.SetDefault("anthropic.aws_profile", "")

	v.SetDefault("game.max_turns", 50)
	v.SetDefault("game.event_probability", 0.3)
	v.SetDefault("game.win_sustainability", 85)
	v.SetDefault("game.win_approval", 80)
	v.SetDefault("game.win_happiness", 80)

	v.SetDefault("politics.max_conversations", 8)
	v.SetDefault("politics.general_chat_probability", 0.3)
	v.SetDefault("politics.call_timeout", "30s")

	v.SetDefault("roster.file", "")
	v.SetDefault("storage.db_path", "")
	v.SetDefault("log.path", "")
}

// getUserConfigDir returns the XDG config directory for Mailopolis.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mailopolis")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "mailopolis")
	}
	return filepath.Join(home, ".config", "mailopolis")
}

// findProjectConfig searches for .mailopolis.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".mailopolis.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandEnv expands ${VAR} references in a string.
func expandEnv(s string) string {
	return os.ExpandEnv(s)
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			MaxTurns:          50,
			EventProbability:  0.3,
			WinSustainability: 85,
			WinApproval:       80,
			WinHappiness:      80,
		},
		Politics: PoliticsConfig{
			MaxConversations:       8,
			GeneralChatProbability: 0.3,
			CallTimeout:            30 * time.Second,
		},
	}
}
