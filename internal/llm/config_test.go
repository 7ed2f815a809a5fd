package llm

import "testing"

// clearProviderEnv neutralizes the variables ConfigFromEnv reads so the
// tests see only what they set themselves.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"SHEETWISE_LLM_PROVIDER",
		"SHEETWISE_ANTHROPIC_API_KEY", "SHEETWISE_ANTHROPIC_MODEL", "SHEETWISE_ANTHROPIC_BASE_URL",
		"SHEETWISE_OPENAI_API_KEY", "SHEETWISE_OPENAI_MODEL", "SHEETWISE_OPENAI_BASE_URL",
		"SHEETWISE_GEMINI_API_KEY", "SHEETWISE_GEMINI_MODEL", "SHEETWISE_GEMINI_BASE_URL",
		"SHEETWISE_OPENROUTER_API_KEY", "SHEETWISE_OPENROUTER_MODEL", "SHEETWISE_OPENROUTER_BASE_URL",
	} {
		t.Setenv(v, "")
	}
}

func TestConfigHintsFillDefaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv(Hints{Provider: "openai", Model: "gpt-4o"})

	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want config-file hint to apply", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI.Model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	// Other vendors keep their defaults.
	if cfg.Anthropic.Model != DefaultConfig().Anthropic.Model {
		t.Errorf("Anthropic.Model = %q, hint leaked to another vendor", cfg.Anthropic.Model)
	}
}

func TestConfigEnvWinsOverHints(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("SHEETWISE_LLM_PROVIDER", "gemini")
	t.Setenv("SHEETWISE_OPENAI_MODEL", "gpt-4o-mini")

	cfg := ConfigFromEnv(Hints{Provider: "openai", Model: "gpt-4o"})

	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want environment to win over the hint", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("OpenAI.Model = %q, want environment to win over the hint", cfg.OpenAI.Model)
	}
}

func TestConfigNoHintsKeepsDefaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv(Hints{})

	want := DefaultConfig()
	if cfg.Provider != want.Provider {
		t.Errorf("Provider = %q, want default %q", cfg.Provider, want.Provider)
	}
	if cfg.Anthropic.Model != want.Anthropic.Model {
		t.Errorf("Anthropic.Model = %q, want default %q", cfg.Anthropic.Model, want.Anthropic.Model)
	}
}

func TestConfigHintForUnknownProviderFailsValidation(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv(Hints{Provider: "acme"})
	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted an unknown hinted provider")
	}
}
