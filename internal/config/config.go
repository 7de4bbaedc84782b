package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level YAML configuration.
type Config struct {
	Auth       Auth     `yaml:"auth"`
	APIVersion string   `yaml:"api_version"`
	CacheDir   string   `yaml:"cache_dir"`
	Objects    []string `yaml:"objects"`
}

// Auth holds the OAuth client-credentials parameters for the token
// handshake.
type Auth struct {
	TokenURL       string `yaml:"token_url"`
	ConsumerKey    string `yaml:"consumer_key"`
	ConsumerSecret string `yaml:"consumer_secret"`
}

// Load reads and parses a YAML config file. An empty path starts from a
// zero config, so a file is optional when the auth environment variables
// are set.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyEnv fills in empty auth fields from environment variables.
// YAML values take precedence; env vars are used only as fallback.
func (c *Config) applyEnv() {
	auth := &c.Auth
	if auth.TokenURL == "" {
		auth.TokenURL = envOr("SALESFORCE_TOKEN_URL", "")
	}
	if auth.ConsumerKey == "" {
		auth.ConsumerKey = envOr("CONSUMER_KEY", "SALESFORCE_CONSUMER_KEY")
	}
	if auth.ConsumerSecret == "" {
		auth.ConsumerSecret = envOr("CONSUMER_SECRET", "SALESFORCE_CONSUMER_SECRET")
	}
}

// envOr returns the first non-empty value from the given env var names.
func envOr(names ...string) string {
	for _, n := range names {
		if n == "" {
			continue
		}
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// validate checks auth fields and applies defaults.
func (c *Config) validate() error {
	if c.Auth.TokenURL == "" {
		return fmt.Errorf("auth.token_url is required (or SALESFORCE_TOKEN_URL)")
	}
	if c.Auth.ConsumerKey == "" {
		return fmt.Errorf("auth.consumer_key is required (or CONSUMER_KEY)")
	}
	if c.Auth.ConsumerSecret == "" {
		return fmt.Errorf("auth.consumer_secret is required (or CONSUMER_SECRET)")
	}
	if c.APIVersion == "" {
		c.APIVersion = "59.0"
	}
	if c.CacheDir == "" {
		c.CacheDir = "./cache"
	}
	return nil
}
