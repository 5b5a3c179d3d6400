package config

import (
	"errors"
	"testing"

	sharedErrors "github.com/IT-Union-DAO/tg-admin/internal/shared/errors"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid token and domain",
			cfg:  Config{TelegramBotToken: "test_token", TelegramDomain: "test.domain.com"},
		},
		{
			name:    "domain with spaces",
			cfg:     Config{TelegramBotToken: "test_token", TelegramDomain: "not a domain"},
			wantErr: true,
		},
		{
			name:    "domain without TLD",
			cfg:     Config{TelegramBotToken: "test_token", TelegramDomain: "localhost"},
			wantErr: true,
		},
		{
			name:    "blank token",
			cfg:     Config{TelegramBotToken: "   ", TelegramDomain: "test.domain.com"},
			wantErr: true,
		},
		{
			name:    "blank domain",
			cfg:     Config{TelegramBotToken: "test_token", TelegramDomain: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestConfigValidateSentinels(t *testing.T) {
	cfg := Config{TelegramDomain: "test.domain.com"}
	if err := cfg.Validate(); !errors.Is(err, sharedErrors.ErrMissingBotToken) {
		t.Fatalf("expected ErrMissingBotToken, got %v", err)
	}

	cfg = Config{TelegramBotToken: "test_token"}
	if err := cfg.Validate(); !errors.Is(err, sharedErrors.ErrMissingDomain) {
		t.Fatalf("expected ErrMissingDomain, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test_token")
	t.Setenv("TELEGRAM_DOMAIN", "test.domain.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.TelegramBotToken != "test_token" {
		t.Errorf("expected token test_token, got %q", cfg.TelegramBotToken)
	}
	if cfg.TelegramDomain != "test.domain.com" {
		t.Errorf("expected domain test.domain.com, got %q", cfg.TelegramDomain)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.TelegramAPIURL != "https://api.telegram.org" {
		t.Errorf("expected default API URL, got %q", cfg.TelegramAPIURL)
	}

	want := "https://test.domain.com/webhook"
	if got := cfg.WebhookURL(); got != want {
		t.Errorf("expected webhook URL %q, got %q", want, got)
	}
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_DOMAIN", "test.domain.com")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing bot token, got nil")
	}
}
