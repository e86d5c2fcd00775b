// Package config loads grimoire's application settings from an optional
// YAML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/grimoire/internal/effects"
	"github.com/abhisek/grimoire/internal/grimoire"
	"github.com/abhisek/grimoire/internal/llm"
	"github.com/abhisek/grimoire/internal/tutorial"
)

// Config holds application settings. Zero values fall back to defaults.
type Config struct {
	Provider       string        `yaml:"provider"`
	Model          string        `yaml:"model"`
	Topics         Topics        `yaml:"topics"`
	RitualDelay    time.Duration `yaml:"ritual_delay"`
	RewardLifetime time.Duration `yaml:"reward_lifetime"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	DBPath         string        `yaml:"db"`
	Log            Log           `yaml:"log"`
}

// Topics overrides the tutorial topics.
type Topics struct {
	Initial  string `yaml:"initial"`
	FollowUp string `yaml:"follow_up"`
}

// Log configures the file logger.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Topics: Topics{
			Initial:  tutorial.InitialTopic,
			FollowUp: tutorial.FollowUpTopic,
		},
		RitualDelay:    grimoire.RitualDelay,
		RewardLifetime: effects.DefaultLifetime,
		RequestTimeout: llm.DefaultConfig().Timeout,
		Log:            Log{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/grimoire/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "grimoire", "config.yaml"), nil
}

// Load reads settings from path and applies environment overrides. An
// empty path means DefaultPath, which is allowed to be missing.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	cfg.fillDefaults()
	return cfg, nil
}

// ApplyEnv overlays GRIMOIRE_* environment variables.
func (c *Config) ApplyEnv() error {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Provider, "GRIMOIRE_LLM_PROVIDER")
	set(&c.Model, "GRIMOIRE_MODEL")
	set(&c.DBPath, "GRIMOIRE_DB")
	set(&c.Log.Level, "GRIMOIRE_LOG_LEVEL")
	set(&c.Log.File, "GRIMOIRE_LOG_FILE")
	set(&c.Topics.Initial, "GRIMOIRE_TOPIC_INITIAL")
	set(&c.Topics.FollowUp, "GRIMOIRE_TOPIC_FOLLOW_UP")

	durations := []struct {
		dst *time.Duration
		key string
	}{
		{&c.RitualDelay, "GRIMOIRE_RITUAL_DELAY"},
		{&c.RewardLifetime, "GRIMOIRE_REWARD_LIFETIME"},
		{&c.RequestTimeout, "GRIMOIRE_REQUEST_TIMEOUT"},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}
	return nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Topics.Initial == "" {
		c.Topics.Initial = def.Topics.Initial
	}
	if c.Topics.FollowUp == "" {
		c.Topics.FollowUp = def.Topics.FollowUp
	}
	if c.RitualDelay <= 0 {
		c.RitualDelay = def.RitualDelay
	}
	if c.RewardLifetime <= 0 {
		c.RewardLifetime = def.RewardLifetime
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = def.RequestTimeout
	}
}

// MachineTopics converts the topic settings for the state machine.
func (c Config) MachineTopics() grimoire.Topics {
	return grimoire.Topics{Initial: c.Topics.Initial, FollowUp: c.Topics.FollowUp}
}

// LLM builds the provider configuration. Provider-specific environment
// variables supply keys and models; the provider itself comes from c. When nothing selects a usable provider,
// the standard vendor API key variables are probed.
func (c Config) LLM() llm.Config {
	cfg := llm.DefaultConfig()
	llm.ApplyEnv(&cfg)
	// c.Provider already reflects file, env and flag precedence.
	if c.Provider != "" {
		cfg.Provider = c.Provider
	}
	cfg.SetModel(c.Model)
	cfg.Timeout = c.RequestTimeout

	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok && c.Provider == "" {
			discovered.Timeout = cfg.Timeout
			discovered.SetModel(c.Model)
			return discovered
		}
	}
	return cfg
}
