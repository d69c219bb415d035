package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	CORSOrigin      string        `mapstructure:"cors_origin"`
	CacheControl    string        `mapstructure:"cache_control"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
	Output   string `mapstructure:"output"`
}

// CacheConfig holds settings for the HTTP response cache.
type CacheConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// ProvidersConfig holds settings shared by the upstream metadata providers.
type ProvidersConfig struct {
	RequestTimeout time.Duration  `mapstructure:"request_timeout"`
	DexScreener    ProviderConfig `mapstructure:"dexscreener"`
	GeckoTerminal  ProviderConfig `mapstructure:"geckoterminal"`
}

// ProviderConfig describes a single upstream provider.
type ProviderConfig struct {
	URL          string `mapstructure:"url"`
	APIKey       string `mapstructure:"api_key"`
	APIKeyHeader string `mapstructure:"api_key_header"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Load reads configuration from file, .env and environment variables.
func Load(configPath string) (*Config, error) {
	// .env is optional; real environment variables take precedence over it.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("app.name", "tokenmeta-proxy")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.cors_origin", "*")
	v.SetDefault("server.cache_control", "public, max-age=86400, s-maxage=31536000")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.default_expiration", "1h")
	v.SetDefault("cache.cleanup_interval", "2h")
	v.SetDefault("providers.request_timeout", "10s")
	v.SetDefault("providers.dexscreener.url", "https://api.dexscreener.com")
	v.SetDefault("providers.dexscreener.api_key", "")
	v.SetDefault("providers.dexscreener.api_key_header", "X-API-KEY")
	v.SetDefault("providers.geckoterminal.url", "https://api.geckoterminal.com")
	v.SetDefault("providers.geckoterminal.api_key", "")
	v.SetDefault("providers.geckoterminal.api_key_header", "x-cg-pro-api-key")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "tokenmeta")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: Config file not found in %s or '.', using defaults/env vars\n", configPath)
	}

	v.SetEnvPrefix("TOKENMETA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c ProvidersConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

func (c CacheConfig) GetDefaultExpiration() time.Duration {
	return c.DefaultExpiration
}

func (c CacheConfig) GetCleanupInterval() time.Duration {
	return c.CleanupInterval
}
