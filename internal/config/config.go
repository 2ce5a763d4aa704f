// Package config loads application configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultPath is where the setup command writes the config file and where
// other commands look for it.
const DefaultPath = "config/config.json"

const tokenPlaceholder = "YOUR_GITHUB_PERSONAL_ACCESS_TOKEN"

// Config is the persisted application configuration.
type Config struct {
	GitHub GitHubConfig `mapstructure:"github" json:"github"`
}

// GitHubConfig carries API access settings.
type GitHubConfig struct {
	APIToken  string `mapstructure:"api_token" json:"api_token"`
	APIURL    string `mapstructure:"api_url" json:"api_url"`
	UserAgent string `mapstructure:"user_agent" json:"user_agent"`
}

// Load reads the config file at path (DefaultPath when empty) using viper.
// A missing file is not an error; defaults apply. A .env file, if present,
// is loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = DefaultPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("github.api_url", "https://api.github.com")
	v.SetDefault("github.user_agent", "GitHub-Activities-Tracker")

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ResolveToken returns the API token, preferring the flag value, then the
// GITHUB_TOKEN environment variable, then the config file.
func (c *Config) ResolveToken(flagToken string) (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}
	if env := os.Getenv("GITHUB_TOKEN"); env != "" {
		return env, nil
	}
	if c.GitHub.APIToken != "" && c.GitHub.APIToken != tokenPlaceholder {
		return c.GitHub.APIToken, nil
	}
	return "", errors.New("GitHub API token not provided: set it via --token, GITHUB_TOKEN, or the config file")
}

// Save writes the config as indented JSON, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
