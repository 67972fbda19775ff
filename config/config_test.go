package config

import (
	"testing"
	"time"
)

var envKeys = []string{
	"PORT", "STORAGE_BACKEND", "DATA_DIR", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"CONTAINER_NAME", "LOANS_BLOB", "CARDS_BLOB", "PAYMENTS_BLOB", "CREDIT_BLOB",
	"CASHFLOW_BLOB", "OFFERS_BLOB", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_WINDOW",
	"LOAD_TIMEOUT", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.StorageBackend != BackendDir || cfg.DataDir != "data" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.RateLimitCapacity != 60 || cfg.RateLimitWindow != time.Minute || cfg.LoadTimeout != 30*time.Second {
		t.Errorf("unexpected limits %+v", cfg)
	}
	if cfg.Blobs.Offers != "bank_offers.json" || cfg.Blobs.Loans != "loans.csv" {
		t.Errorf("unexpected blob names %+v", cfg.Blobs)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "REDIS")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CARDS_BLOB", "cards.xlsx")
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("LOAD_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.StorageBackend != BackendRedis || cfg.RedisDB != 3 {
		t.Errorf("unexpected redis settings %+v", cfg)
	}
	if cfg.Blobs.Cards != "cards.xlsx" {
		t.Errorf("expected cards.xlsx, got %s", cfg.Blobs.Cards)
	}
	if cfg.RateLimitCapacity != 0 || cfg.LoadTimeout != 5*time.Second {
		t.Errorf("unexpected limits %+v", cfg)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"STORAGE_BACKEND":     "s3",
		"REDIS_DB":            "one",
		"RATE_LIMIT_CAPACITY": "-1",
		"RATE_LIMIT_WINDOW":   "soon",
		"LOAD_TIMEOUT":        "0s",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", key, value)
			}
		})
	}
}
