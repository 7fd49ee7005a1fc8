package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/Asamoah4284/PENNIT-sub001/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// JWTSecret verifies viewer session tokens; an invalid or absent token
	// degrades the request to anonymous rather than rejecting it
	JWTSecret string `mapstructure:"jwt_secret"`
	// APIKeys authorize the settlement trigger endpoints
	APIKeys []string `mapstructure:"api_keys"`
}

// WeightsConfig holds the category point weight table
type WeightsConfig struct {
	Poem       int64 `mapstructure:"poem"`
	ShortStory int64 `mapstructure:"short_story"`
	Novel      int64 `mapstructure:"novel"`
}

// PointWeights converts the config table into the domain representation
func (w WeightsConfig) PointWeights() domain.PointWeights {
	weights := domain.DefaultPointWeights()
	if w.Poem > 0 {
		weights[domain.CategoryPoem] = w.Poem
	}
	if w.ShortStory > 0 {
		weights[domain.CategoryShortStory] = w.ShortStory
	}
	if w.Novel > 0 {
		weights[domain.CategoryNovel] = w.Novel
	}
	return weights
}

// SettlementConfig holds monetization and batch configuration
type SettlementConfig struct {
	// Enabled gates the revenue-distribution feature as a whole
	Enabled bool          `mapstructure:"enabled"`
	Weights WeightsConfig `mapstructure:"weights"`
	// PlatformCostFixedGhc, when non-empty, is a fixed GHC deduction taking
	// precedence over the percentage
	PlatformCostFixedGhc string `mapstructure:"platform_cost_fixed_ghc"`
	PlatformCostPercent  string `mapstructure:"platform_cost_percent"`
	PayoutWorkers        int    `mapstructure:"payout_workers"`
	PayoutNarration      string `mapstructure:"payout_narration"`
}

// CostFixed parses the fixed platform cost, nil when unset
func (c SettlementConfig) CostFixed() (*decimal.Decimal, error) {
	if c.PlatformCostFixedGhc == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(c.PlatformCostFixedGhc)
	if err != nil {
		return nil, fmt.Errorf("invalid settlement.platform_cost_fixed_ghc: %w", err)
	}
	return &d, nil
}

// CostPercent parses the percentage platform cost, zero when unset
func (c SettlementConfig) CostPercent() (decimal.Decimal, error) {
	if c.PlatformCostPercent == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(c.PlatformCostPercent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid settlement.platform_cost_percent: %w", err)
	}
	return d, nil
}

// PaymentConfig holds the external payment collaborator's client settings
type PaymentConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	SecretKey string        `mapstructure:"secret_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// APIConfig holds configuration for the attribution API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Payment    PaymentConfig    `mapstructure:"payment"`
}

// BatchConfig holds configuration for the settlement CLI
type BatchConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Payment    PaymentConfig    `mapstructure:"payment"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setSettlementDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadBatchConfig loads configuration for the settlement CLI
func LoadBatchConfig(configFile string, envPath string) (*BatchConfig, error) {
	v := configureViper("settlement", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setSettlementDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg BatchConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setSettlementDefaults(v *viper.Viper) {
	v.SetDefault("settlement.enabled", false)
	v.SetDefault("settlement.weights.poem", 1)
	v.SetDefault("settlement.weights.short_story", 3)
	v.SetDefault("settlement.weights.novel", 5)
	v.SetDefault("settlement.payout_workers", 4)
	v.SetDefault("settlement.payout_narration", "PENNIT earnings")
	v.SetDefault("payment.timeout", "30s")
}

func validateDatabase(cfg DatabaseConfig) error {
	if cfg.Host == "" {
		return errors.New("database.host is required")
	}
	if cfg.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("PENNIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Required for viper to map env vars to config struct fields when no config
// file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_secret",
		"auth.api_keys",
		// Settlement
		"settlement.enabled",
		"settlement.weights.poem",
		"settlement.weights.short_story",
		"settlement.weights.novel",
		"settlement.platform_cost_fixed_ghc",
		"settlement.platform_cost_percent",
		"settlement.payout_workers",
		"settlement.payout_narration",
		// Payment
		"payment.base_url",
		"payment.secret_key",
		"payment.timeout",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // later files override earlier ones
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
