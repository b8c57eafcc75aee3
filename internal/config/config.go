// Package config loads process settings and the per-currency calculator
// configuration.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// MaxPrecision bounds configured rounding precision
const MaxPrecision = 8

// Config holds process configuration
type Config struct {
	Address          string
	Debug            bool
	CalculatorsFile  string
	DefaultPrecision int32
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
}

// Load reads configuration from the environment (PRICE_ prefix) and a .env
// file if present.
func Load(logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PRICE")
	v.AutomaticEnv()

	v.SetDefault("ADDRESS", ":8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("CALCULATORS_FILE", "")
	v.SetDefault("DEFAULT_PRECISION", 2)
	v.SetDefault("READ_TIMEOUT", "30s")
	v.SetDefault("WRITE_TIMEOUT", "30s")

	cfg := &Config{
		Address:         v.GetString("ADDRESS"),
		Debug:           v.GetBool("DEBUG"),
		CalculatorsFile: v.GetString("CALCULATORS_FILE"),
	}

	precision := v.GetInt("DEFAULT_PRECISION")
	if precision < 0 || precision > MaxPrecision {
		return nil, fmt.Errorf("PRICE_DEFAULT_PRECISION must be between 0 and %d, got %d", MaxPrecision, precision)
	}
	cfg.DefaultPrecision = int32(precision)

	cfg.ReadTimeout = durationOrDefault(logger, v, "READ_TIMEOUT", 30*time.Second)
	cfg.WriteTimeout = durationOrDefault(logger, v, "WRITE_TIMEOUT", 30*time.Second)

	if cfg.Address == "" {
		cfg.Address = ":8080"
		logger.Warn("PRICE_ADDRESS not set, using default", slog.String("address", cfg.Address))
	}

	return cfg, nil
}

func durationOrDefault(logger *slog.Logger, v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		logger.Warn("invalid duration, using default",
			slog.String("key", "PRICE_"+key),
			slog.String("value", raw),
			slog.Duration("default", fallback),
		)
		return fallback
	}
	return d
}
