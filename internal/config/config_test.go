package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:           "8080",
		DBPath:         "./data/test.db",
		JWTSecret:      "a-long-enough-test-secret",
		TokenTTL:       time.Hour,
		LogLevel:       "info",
		MetricsEnabled: true,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			modify:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range high",
			modify:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "empty database path",
			modify:      func(c *Config) { c.DBPath = "" },
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
		{
			name:        "short JWT secret",
			modify:      func(c *Config) { c.JWTSecret = "short" },
			wantErr:     true,
			errorString: "JWT secret must be at least 16 characters",
		},
		{
			name:        "token TTL too short",
			modify:      func(c *Config) { c.TokenTTL = time.Second },
			wantErr:     true,
			errorString: "invalid token TTL 1s: must be at least 1 minute",
		},
		{
			name:        "unknown log level",
			modify:      func(c *Config) { c.LogLevel = "verbose" },
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
					return
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("expected error to contain %q, got %q", tt.errorString, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "abc"
	cfg.JWTSecret = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !strings.Contains(err.Error(), "invalid port") || !strings.Contains(err.Error(), "JWT secret") {
		t.Errorf("expected both problems in error, got %q", err.Error())
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/kirat-test.db")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DBPath != "/tmp/kirat-test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("TokenTTL = %v, want 2h", cfg.TokenTTL)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", cfg.SlogLevel())
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled should be false")
	}
	if !cfg.UsesDefaultSecret() {
		t.Error("expected default JWT secret when JWT_SECRET is unset")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "forever")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := Load()

	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled should fall back to true")
	}
}
