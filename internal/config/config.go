package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultProvisioningKey = "change-me-provisioning-key"
)

// Cache drivers
const (
	CacheDriverDatabase = "database"
	CacheDriverRedis    = "redis"
	CacheDriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes int    `mapstructure:"JWT_TTL_MINUTES"`

	// Org provisioning
	ProvisioningKey string `mapstructure:"PROVISIONING_KEY"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Cache configuration
	CacheDriver        string `mapstructure:"CACHE_DRIVER"`
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisDB            int    `mapstructure:"REDIS_DB"`
	CacheSweepSchedule string `mapstructure:"CACHE_SWEEP_SCHEDULE"`

	// Script sandbox
	SandboxTimeoutMS      int `mapstructure:"SANDBOX_TIMEOUT_MS"`
	SandboxMaxScriptBytes int `mapstructure:"SANDBOX_MAX_SCRIPT_BYTES"`

	// Write conflicts
	SequenceMaxRetries     int `mapstructure:"SEQUENCE_MAX_RETRIES"`
	SequenceRetryInitialMS int `mapstructure:"SEQUENCE_RETRY_INITIAL_MS"`
	SequenceRetryMaxMS     int `mapstructure:"SEQUENCE_RETRY_MAX_MS"`

	// Rate limiting
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.AllowedOrigins = splitOrigins(config.AllowedOrigins)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "cortex")
	v.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_TTL_MINUTES", 60)

	v.SetDefault("PROVISIONING_KEY", defaultProvisioningKey)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Cache defaults
	v.SetDefault("CACHE_DRIVER", CacheDriverDatabase)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_SWEEP_SCHEDULE", "@every 1m")

	// Sandbox defaults
	v.SetDefault("SANDBOX_TIMEOUT_MS", 1000)
	v.SetDefault("SANDBOX_MAX_SCRIPT_BYTES", 64*1024)

	v.SetDefault("SEQUENCE_MAX_RETRIES", 5)
	v.SetDefault("SEQUENCE_RETRY_INITIAL_MS", 10)
	v.SetDefault("SEQUENCE_RETRY_MAX_MS", 250)

	// Rate limit defaults
	v.SetDefault("RATE_LIMIT_RPS", 50.0)
	v.SetDefault("RATE_LIMIT_BURST", 100)

	v.SetDefault("METRICS_ENABLED", true)
}

// splitOrigins accepts both list values and a single comma separated env value
func splitOrigins(in []string) []string {
	var out []string
	for _, item := range in {
		for _, origin := range strings.Split(item, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.ProvisioningKey == defaultProvisioningKey {
			return fmt.Errorf("PROVISIONING_KEY must be set in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.CacheDriver {
	case CacheDriverDatabase, CacheDriverRedis, CacheDriverMemory:
	default:
		return fmt.Errorf("unknown CACHE_DRIVER %q", config.CacheDriver)
	}

	if config.JWTTTLMinutes <= 0 {
		return fmt.Errorf("JWT_TTL_MINUTES must be positive")
	}
	if config.SequenceMaxRetries < 0 {
		return fmt.Errorf("SEQUENCE_MAX_RETRIES must not be negative")
	}
	if config.SequenceRetryInitialMS <= 0 || config.SequenceRetryMaxMS < config.SequenceRetryInitialMS {
		return fmt.Errorf("SEQUENCE_RETRY_INITIAL_MS must be positive and not above SEQUENCE_RETRY_MAX_MS")
	}
	if config.RateLimitRPS < 0 || config.RateLimitBurst < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// JWTTTL returns the lifetime of issued tokens
func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// SandboxTimeout returns the per-script execution limit
func (c *Config) SandboxTimeout() time.Duration {
	return time.Duration(c.SandboxTimeoutMS) * time.Millisecond
}

// SequenceRetryInitial returns the first backoff interval of a conflicting write
func (c *Config) SequenceRetryInitial() time.Duration {
	return time.Duration(c.SequenceRetryInitialMS) * time.Millisecond
}

// SequenceRetryMax returns the largest backoff interval of a conflicting write
func (c *Config) SequenceRetryMax() time.Duration {
	return time.Duration(c.SequenceRetryMaxMS) * time.Millisecond
}
