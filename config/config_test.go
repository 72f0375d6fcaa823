package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadFromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("N8N_TIMEOUT_SECONDS", "12.5")
	t.Setenv("ENABLE_WEB_SCRAPING", "false")
	t.Setenv("PORT", "9090")
	t.Setenv("N8N_BASE_URL", "http://n8n.local/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OpenAI.APIKey != "sk-env" {
		t.Errorf("expected api key from env, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.N8N.Timeout != 12500*time.Millisecond {
		t.Errorf("expected 12.5s timeout, got %v", cfg.N8N.Timeout)
	}
	if cfg.Features.EnableWebScraping {
		t.Errorf("expected web scraping disabled")
	}
	if !cfg.Features.EnableAI {
		t.Errorf("expected AI enabled by default")
	}
	if cfg.HTTPServer.Port != 9090 || cfg.HTTPServer.Addr() != "0.0.0.0:9090" {
		t.Errorf("unexpected addr %q", cfg.HTTPServer.Addr())
	}
	if cfg.N8N.BaseURL != "http://n8n.local" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.N8N.BaseURL)
	}
	if cfg.OpenAI.Timeout != 30*time.Second {
		t.Errorf("expected default 30s generation timeout, got %v", cfg.OpenAI.Timeout)
	}
}

func TestValidate(t *testing.T) {
	base := Config{HTTPServer: HTTPServerConfig{Port: 8000}}

	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	bad := base
	bad.OpenAI.MaxTokens = -1
	if err := bad.Validate(); err == nil {
		t.Errorf("expected error for negative max tokens")
	}

	bad = base
	bad.HTTPServer.Port = 0
	if err := bad.Validate(); err == nil {
		t.Errorf("expected error for port 0")
	}

	bad = base
	bad.N8N.Timeout = -time.Second
	if err := bad.Validate(); err == nil {
		t.Errorf("expected error for negative timeout")
	}
}

func TestExpandEnvVar(t *testing.T) {
	viper.Reset()
	t.Setenv("MY_SECRET", "s3cret")

	if got := expandEnvVar("${MY_SECRET}"); got != "s3cret" {
		t.Errorf("expected s3cret, got %q", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("expected plain, got %q", got)
	}
}
