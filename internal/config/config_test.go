package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
defaults:
  educational_level: "3rd Grade"
  theme: creative
  difficulty: easy
llm:
  provider: anthropic
  model: claude-sonnet
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Defaults.EducationalLevel != "3rd Grade" {
		t.Errorf("EducationalLevel = %q", cfg.Defaults.EducationalLevel)
	}
	if cfg.Defaults.Theme != "creative" {
		t.Errorf("Theme = %q", cfg.Defaults.Theme)
	}
	if cfg.LLM.Provider != "anthropic" {
		t.Errorf("Provider = %q", cfg.LLM.Provider)
	}
}

func TestLoadDefault_MissingFile(t *testing.T) {
	t.Setenv("SHEETWISE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v, want nil for a missing file", err)
	}
	if cfg.LLM.Provider != "" {
		t.Errorf("expected zero config, got provider %q", cfg.LLM.Provider)
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("SHEETWISE_CONFIG", "/tmp/custom.yaml")

	p, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/tmp/custom.yaml" {
		t.Errorf("DefaultPath() = %q", p)
	}
}
