package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "LOG_LEVEL", "DYNAMODB_ENDPOINT", "INSTALLMENTS_TABLE", "REMINDERS_CRON", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		// t.Setenv restores the original value; envconfig only applies
		// defaults to variables that are unset, not empty.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if cfg.DynamoDB.InstallmentsTable != "investment_installments" {
		t.Fatalf("unexpected installments table %q", cfg.DynamoDB.InstallmentsTable)
	}
	if cfg.Reminders.Cron != "0 9 * * *" {
		t.Fatalf("unexpected cron spec %q", cfg.Reminders.Cron)
	}
	if cfg.Payments.MockEnabled() {
		t.Fatalf("mock must be disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("CONTRACTS_TABLE", "studio_contracts")
	t.Setenv("MERCADOPAGO_MOCK", "on")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.IsProd() || cfg.App.Port != "9090" {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if cfg.DynamoDB.ContractsTable != "studio_contracts" {
		t.Fatalf("unexpected contracts table %q", cfg.DynamoDB.ContractsTable)
	}
	if !cfg.Payments.MockEnabled() || !cfg.Payments.Sandbox() {
		t.Fatalf("expected mock + sandbox, got %+v", cfg.Payments)
	}
}
