package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.App.Env != EnvDevelopment {
		t.Errorf("expected default env=development, got %q", cfg.App.Env)
	}
	if cfg.App.Port != 8080 {
		t.Errorf("expected default port=8080, got %d", cfg.App.Port)
	}
	if cfg.RateLimit.ContactPerMinute != 10 {
		t.Errorf("expected contact limit 10/min, got %d", cfg.RateLimit.ContactPerMinute)
	}
	if cfg.RateLimit.APIPerMinute != 30 {
		t.Errorf("expected api limit 30/min, got %d", cfg.RateLimit.APIPerMinute)
	}
}

func TestLoad_RejectsUnknownEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown APP_ENV")
	}
}

func TestLoad_ProductionRequiresToken(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("MAIL_SERVER", "smtp.example.com")
	t.Setenv("ADMIN_API_TOKEN", "")
	if _, err := Load(); err == nil {
		t.Error("expected error when production runs without ADMIN_API_TOKEN")
	}
}

func TestLoad_ProductionRequiresMailServer(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("ADMIN_API_TOKEN", "secret")
	t.Setenv("MAIL_SERVER", "")
	if _, err := Load(); err == nil {
		t.Error("expected error when production runs without MAIL_SERVER")
	}
}

func TestLoad_SenderDefaultsToUsername(t *testing.T) {
	t.Setenv("MAIL_SERVER", "smtp.example.com")
	t.Setenv("MAIL_USERNAME", "portfolio@example.com")
	t.Setenv("MAIL_DEFAULT_SENDER", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SMTP.From != "portfolio@example.com" {
		t.Errorf("expected From to default to username, got %q", cfg.SMTP.From)
	}
}
