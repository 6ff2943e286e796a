package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"googleBooks": map[string]any{
			"apiKey":       "",
			"langRestrict": "",
			"breaker": map[string]any{
				"openTimeout": "30s",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GOOGLEBOOKS_APIKEY", want: "googleBooks.apiKey"},
		{envKey: "GOOGLEBOOKS_BREAKER_OPENTIMEOUT", want: "googleBooks.breaker.openTimeout"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.NotNil(t, cfg.Database)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, 8, cfg.PasswordStrength.MinLength)
	assert.Equal(t, defaultGoogleBooksBaseURL, cfg.GoogleBooks.BaseURL)
	assert.Equal(t, defaultCatalogTimeout, cfg.GoogleBooks.Timeout)
	assert.Equal(t, uint32(defaultBreakerFailures), cfg.GoogleBooks.Breaker.ConsecutiveFailures)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{BcryptCost: 4, TokenTTL: time.Hour},
		GoogleBooks: &GoogleBooksConfig{
			BaseURL: "http://127.0.0.1:9999",
			Timeout: 2 * time.Second,
		},
	}
	applyDefaults(cfg)

	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "http://127.0.0.1:9999/", cfg.GoogleBooks.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.GoogleBooks.Timeout)
}
