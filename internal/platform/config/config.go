package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port           string `validate:"required"`
	IsProduction   bool
	DatabaseURL    string // empty: serve the compiled-in dataset
	MigrationsPath string
	RateLimit      string   `validate:"required"`
	AllowedOrigins []string `validate:"min=1"`

	// Factory cache
	CacheDisabled       bool
	CacheCapacity       int           `validate:"gt=0"`
	CacheExpiration     int64         `validate:"gt=0"`
	CacheExpirationUnit time.Duration `validate:"gt=0"`
}

var validate = validator.New()

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("CACHE_DISABLED", false)
	viper.SetDefault("CACHE_CAPACITY", 50)
	viper.SetDefault("CACHE_EXPIRATION", 30)
	viper.SetDefault("CACHE_EXPIRATION_UNIT", "1m")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		MigrationsPath:  viper.GetString("MIGRATIONS_PATH"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
		CacheDisabled:   viper.GetBool("CACHE_DISABLED"),
		CacheCapacity:   viper.GetInt("CACHE_CAPACITY"),
		CacheExpiration: viper.GetInt64("CACHE_EXPIRATION"),
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	// Load the expiration unit (e.g., "1m", "1h")
	unitStr := viper.GetString("CACHE_EXPIRATION_UNIT")
	unit, err := time.ParseDuration(unitStr)
	if err != nil {
		return nil, fmt.Errorf("invalid value for CACHE_EXPIRATION_UNIT (%q): %w", unitStr, err)
	}
	cfg.CacheExpirationUnit = unit

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Serving the built-in currency dataset.")
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
