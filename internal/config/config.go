// Package config loads the optional user config file. It carries
// defaults for the generate form and the provider selection; everything
// in it can be overridden per session in the TUI or via environment
// variables.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the YAML config file shape.
type Config struct {
	Defaults struct {
		// EducationalLevel pre-fills the generate form, e.g. "3rd Grade".
		EducationalLevel string `yaml:"educational_level"`
		// Theme is "classic" or "creative".
		Theme string `yaml:"theme"`
		// Difficulty is "easy", "standard", or "challenging".
		Difficulty string `yaml:"difficulty"`
		// Language pre-fills the worksheet language.
		Language string `yaml:"language"`
	} `yaml:"defaults"`
	LLM struct {
		// Provider is "anthropic", "openai", "gemini", or "openrouter".
		// Empty means auto-discover from API key env vars.
		Provider string `yaml:"provider"`
		// Model overrides the provider's default model.
		Model string `yaml:"model"`
	} `yaml:"llm"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault loads the config from its standard location, returning a
// zero Config when the file does not exist. The path is
// $SHEETWISE_CONFIG, then $XDG_CONFIG_HOME/sheetwise/config.yaml, then
// ~/.config/sheetwise/config.yaml.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

// DefaultPath resolves the config file location.
func DefaultPath() (string, error) {
	if p := os.Getenv("SHEETWISE_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sheetwise", "config.yaml"), nil
}
