package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

type (
	Config struct {
		Language     string       `json:"language"`
		DataDir      string       `json:"data_dir"`
		DefaultState string       `json:"default_state"`
		TrainLabels  []string     `json:"train_labels"`
		TestLabels   []string     `json:"test_labels"`
		GitHub       GitHubConfig `json:"github"`
		PathFile     string       `json:"path_file"`
	}

	GitHubConfig struct {
		Username string `json:"username,omitempty"`
		Password string `json:"password,omitempty"`
		Token    string `json:"token,omitempty"`
		BaseURL  string `json:"base_url,omitempty"`
	}
)

const (
	defaultLang    = LangEN
	defaultDataDir = "data"
	defaultState   = "open"

	configDirName  = ".issue-categorizer"
	configFileName = "config.json"
)

// Environment variables that take precedence over the stored credentials.
const (
	EnvGitHubUsername = "ISSUE_CATEGORIZER_GITHUB_USERNAME"
	EnvGitHubPassword = "ISSUE_CATEGORIZER_GITHUB_PASSWORD"
	EnvGitHubToken    = "ISSUE_CATEGORIZER_GITHUB_TOKEN"
)

var issueStates = []string{"open", "closed", "all"}

func defaultTrainLabels() []string { return []string{"enhancement", "bug"} }
func defaultTestLabels() []string  { return []string{"unlabeled"} }

// LoadConfig reads the config file at path when it ends in .json, otherwise
// the one under path/.issue-categorizer. A missing file is created with defaults.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, configDirName)
		configPath = filepath.Join(configDir, configFileName)

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0o755); err != nil {
				return nil, fmt.Errorf("error creating config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return CreateDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error decoding config JSON: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded config is invalid: %w", err)
	}

	return &config, nil
}

func CreateDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:     defaultLang,
		DataDir:      defaultDataDir,
		DefaultState: defaultState,
		TrainLabels:  defaultTrainLabels(),
		TestLabels:   defaultTestLabels(),
		PathFile:     path,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("config to save is invalid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	// Credentials may be stored here.
	if err := os.WriteFile(config.PathFile, data, 0o600); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

// ResolvedGitHub returns the GitHub settings with environment overrides applied.
// The overrides are never written back by SaveConfig.
func (c *Config) ResolvedGitHub() GitHubConfig {
	gh := c.GitHub
	if v := os.Getenv(EnvGitHubUsername); v != "" {
		gh.Username = v
	}
	if v := os.Getenv(EnvGitHubPassword); v != "" {
		gh.Password = v
	}
	if v := os.Getenv(EnvGitHubToken); v != "" {
		gh.Token = v
	}
	return gh
}

// IsValidState reports whether state is accepted by the issues endpoint.
func IsValidState(state string) bool {
	return slices.Contains(issueStates, state)
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}
	if !IsSupportedLanguage(config.Language) {
		return fmt.Errorf("unsupported language: %s", config.Language)
	}
	if config.DataDir == "" {
		return errors.New("data_dir cannot be empty")
	}
	if !IsValidState(config.DefaultState) {
		return fmt.Errorf("invalid default_state %q, must be one of %v", config.DefaultState, issueStates)
	}
	if len(config.TrainLabels) == 0 {
		return errors.New("train_labels cannot be empty")
	}
	if len(config.TestLabels) == 0 {
		return errors.New("test_labels cannot be empty")
	}
	return nil
}
