package config

import "testing"

// TestDefaults tests the fallbacks applied over an empty config.
func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if cfg.HasGenAIConfig() {
		t.Error("expected AI DJ disabled without an api key")
	}
	if !cfg.ShouldSeedLibrary() {
		t.Error("expected seeding on by default")
	}

	genai := cfg.GetGenAIConfig()
	if genai.Model == "" || genai.BaseURL == "" {
		t.Errorf("expected model and base url defaults, got %+v", genai)
	}
	if cfg.GetPreviewURL() == "" {
		t.Error("expected preview stream default")
	}
}

// TestOverrides tests that explicit values win over defaults.
func TestOverrides(t *testing.T) {
	off := false
	cfg := &Config{
		SeedLibrary: &off,
		PreviewURL:  "https://example.com/preview.mp3",
		GenAI: GenAIConfig{
			APIKey:  "key",
			Model:   "custom-model",
			BaseURL: "https://example.com/v1",
		},
	}

	if cfg.ShouldSeedLibrary() {
		t.Error("expected seeding disabled")
	}
	if !cfg.HasGenAIConfig() {
		t.Error("expected AI DJ enabled")
	}
	if got := cfg.GetGenAIConfig().Model; got != "custom-model" {
		t.Errorf("expected custom model, got %q", got)
	}
	if got := cfg.GetPreviewURL(); got != "https://example.com/preview.mp3" {
		t.Errorf("expected custom preview url, got %q", got)
	}
}
