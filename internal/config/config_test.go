package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 20
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: pennit
  sslmode: require
auth:
  jwt_secret: "super-secret"
  api_keys:
    - key-one
    - key-two
settlement:
  enabled: true
  weights:
    poem: 2
    short_story: 4
    novel: 10
  platform_cost_percent: "15"
  payout_workers: 8
payment:
  base_url: "https://pay.example.com"
  secret_key: "sk-test"
  timeout: "10s"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
				assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
				assert.True(t, cfg.Settlement.Enabled)
				assert.Equal(t, 8, cfg.Settlement.PayoutWorkers)
				assert.Equal(t, "https://pay.example.com", cfg.Payment.BaseURL)
				assert.Equal(t, 10*time.Second, cfg.Payment.Timeout)

				weights := cfg.Settlement.Weights.PointWeights()
				assert.Equal(t, int64(2), weights.Weight(domain.CategoryPoem))
				assert.Equal(t, int64(4), weights.Weight(domain.CategoryShortStory))
				assert.Equal(t, int64(10), weights.Weight(domain.CategoryNovel))

				percent, err := cfg.Settlement.CostPercent()
				require.NoError(t, err)
				assert.Equal(t, "15", percent.String())
				fixed, err := cfg.Settlement.CostFixed()
				require.NoError(t, err)
				assert.Nil(t, fixed)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: pennit
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.MaxOpenConns)
				assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
				assert.False(t, cfg.Settlement.Enabled)
				assert.Equal(t, 4, cfg.Settlement.PayoutWorkers)
				assert.Equal(t, "PENNIT earnings", cfg.Settlement.PayoutNarration)
				assert.Equal(t, 30*time.Second, cfg.Payment.Timeout)

				weights := cfg.Settlement.Weights.PointWeights()
				assert.Equal(t, int64(1), weights.Weight(domain.CategoryPoem))
				assert.Equal(t, int64(3), weights.Weight(domain.CategoryShortStory))
				assert.Equal(t, int64(5), weights.Weight(domain.CategoryNovel))
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  user: testuser
  dbname: pennit
`,
			expectError: true,
		},
		{
			name: "invalid platform cost",
			configFile: `
database:
  host: localhost
  dbname: pennit
settlement:
  platform_cost_fixed_ghc: "abc"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				_, err := cfg.Settlement.CostFixed()
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadBatchConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(`
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: pennit
settlement:
  enabled: true
  platform_cost_fixed_ghc: "250.00"
payment:
  base_url: "https://pay.example.com"
  secret_key: "sk-test"
`), 0600)
	require.NoError(t, err)

	cfg, err := LoadBatchConfig(configFile, tmpDir)
	require.NoError(t, err)
	assert.True(t, cfg.Settlement.Enabled)

	fixed, err := cfg.Settlement.CostFixed()
	require.NoError(t, err)
	require.NotNil(t, fixed)
	assert.Equal(t, "250", fixed.String())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "pennit",
		Password: "secret",
		DBName:   "pennit",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=pennit password=secret dbname=pennit sslmode=disable",
		cfg.DSN())
}
