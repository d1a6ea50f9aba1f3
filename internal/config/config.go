package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/amishk599/isntthatodd/internal/model"
)

// Environment variables consulted when the matching flag is not given.
const (
	EnvConfig  = "ISNT_THAT_ODD_CONFIG"
	EnvAPIKey  = "ISNT_THAT_ODD_API_KEY"
	EnvBaseURL = "ISNT_THAT_ODD_BASE_URL"
)

// Config holds the optional defaults read from the YAML config file.
type Config struct {
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`  // expanded from env vars by Load
	BaseURL string `yaml:"base_url"` // OpenAI-compatible URL or Gemini endpoint
}

// Overrides are the command-line values. A nil field was not set on the
// command line.
type Overrides struct {
	Model   *string
	APIKey  *string
	BaseURL *string
}

// Load reads and parses the YAML config file at path and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve finds and loads the config file.
// Priority: explicit path arg > ISNT_THAT_ODD_CONFIG env var > user config dir.
// Only a missing explicit path is an error; otherwise a missing file yields an
// empty Config.
func Resolve(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}

	path := os.Getenv(EnvConfig)
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return &Config{}, nil
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// DefaultPath returns $XDG_CONFIG_HOME/isnt-that-odd/config.yaml (or the
// platform equivalent), or "" when no user config dir is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "isnt-that-odd", "config.yaml")
}

// Oracle builds the oracle configuration. Each field is taken from the first
// source that sets it: command line, environment, config file, default.
func (c *Config) Oracle(o Overrides) model.OracleConfig {
	return model.OracleConfig{
		Model:   pick(o.Model, "", c.Model, model.DefaultModel),
		APIKey:  pick(o.APIKey, os.Getenv(EnvAPIKey), c.APIKey, ""),
		BaseURL: pick(o.BaseURL, os.Getenv(EnvBaseURL), c.BaseURL, ""),
	}
}

func pick(flag *string, env, file, def string) string {
	switch {
	case flag != nil:
		return *flag
	case env != "":
		return env
	case file != "":
		return file
	default:
		return def
	}
}

func validate(cfg *Config) error {
	if cfg.Model != "" && strings.TrimSpace(cfg.Model) != cfg.Model {
		return fmt.Errorf("model must not have surrounding whitespace, got %q", cfg.Model)
	}
	if strings.ContainsAny(cfg.BaseURL, " \t\r\n") {
		return fmt.Errorf("base_url must not contain whitespace, got %q", cfg.BaseURL)
	}
	return nil
}
