package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig
	Sources SourcesConfig
	Cache   CacheConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SourcesConfig holds nutrition source configuration.
type SourcesConfig struct {
	USDAAPIKey  string        `mapstructure:"usda_api_key"`
	USDABaseURL string        `mapstructure:"usda_base_url"`
	OFFBaseURL  string        `mapstructure:"off_base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds record cache configuration.
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/nutriscore/")

	v.SetEnvPrefix("NUTRISCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Registered empty so AutomaticEnv can see the key; validate rejects
	// a missing value.
	v.SetDefault("sources.usda_api_key", "")

	v.SetDefault("sources.usda_base_url", "https://api.nal.usda.gov/fdc")
	v.SetDefault("sources.off_base_url", "https://world.openfoodfacts.org")
	v.SetDefault("sources.timeout", "10s")

	v.SetDefault("cache.ttl", "168h") // 7 days
}

// validate validates the configuration.
func validate(config *Config) error {
	if config.Sources.USDAAPIKey == "" {
		return fmt.Errorf("USDA API key is required (set NUTRISCORE_SOURCES_USDA_API_KEY)")
	}
	if config.Sources.Timeout <= 0 {
		return fmt.Errorf("source timeout must be positive, got: %s", config.Sources.Timeout)
	}
	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}
	return nil
}
