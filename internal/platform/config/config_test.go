package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Fatalf("default addr = %q", cfg.Addr)
	}
	if cfg.Environment != "development" {
		t.Fatalf("default environment = %q", cfg.Environment)
	}
	if cfg.ERPTimeout != 30*time.Second {
		t.Fatalf("default timeout = %v", cfg.ERPTimeout)
	}
	if cfg.DefaultPageSize != 25 {
		t.Fatalf("default page size = %d", cfg.DefaultPageSize)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("default cors origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ADDR", ":9999")
	t.Setenv("ERP_BASE_URL", "https://erp.example.com")
	t.Setenv("ERP_API_KEY", "key")
	t.Setenv("ERP_API_SECRET", "secret")
	t.Setenv("ERP_TIMEOUT", "5s")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("DEFAULT_PAGE_SIZE", "50")

	cfg := Load()

	if cfg.Addr != ":9999" {
		t.Fatalf("addr = %q", cfg.Addr)
	}
	if cfg.ERPTimeout != 5*time.Second {
		t.Fatalf("timeout = %v", cfg.ERPTimeout)
	}
	if cfg.DefaultPageSize != 50 {
		t.Fatalf("page size = %d", cfg.DefaultPageSize)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("complete config should validate: %v", err)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("ERP_TIMEOUT", "soon")
	t.Setenv("DEFAULT_PAGE_SIZE", "lots")

	cfg := Load()
	if cfg.ERPTimeout != 30*time.Second || cfg.DefaultPageSize != 25 {
		t.Fatalf("malformed values should fall back: timeout=%v pageSize=%d", cfg.ERPTimeout, cfg.DefaultPageSize)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		ERPBaseURL:      "https://erp.example.com",
		ERPAPIKey:       "key",
		ERPAPISecret:    "secret",
		ERPTimeout:      time.Second,
		DefaultPageSize: 25,
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing base url", func(c *Config) { c.ERPBaseURL = " " }},
		{"missing api key", func(c *Config) { c.ERPAPIKey = "" }},
		{"missing api secret", func(c *Config) { c.ERPAPISecret = "" }},
		{"negative timeout", func(c *Config) { c.ERPTimeout = -time.Second }},
		{"zero page size", func(c *Config) { c.DefaultPageSize = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
