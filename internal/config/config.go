// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	devJWTSecret = "potluck-dev-secret-change-me"
)

type Config struct {
	// Environment is "development" or "production".
	Environment string

	// HTTP server
	Port int

	// Database
	DBPath string

	// Sessions
	JWTSecret string
	TokenTTL  time.Duration

	// Observability
	LogLevel       string
	MetricsEnabled bool

	// unparseable environment values, reported by Validate
	loadErrors []string
}

// Load reads the configuration from the environment. Variables in a .env file
// in the working directory are loaded first but never override the real
// environment.
func Load() *Config {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", EnvDevelopment)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" && env == EnvDevelopment {
		secret = devJWTSecret
	}

	var loadErrors []string
	record := func(err error) {
		if err != nil {
			loadErrors = append(loadErrors, err.Error())
		}
	}

	port, err := getEnvInt("PORT", 8080)
	record(err)
	ttl, err := getEnvDuration("TOKEN_TTL", 30*24*time.Hour)
	record(err)
	metrics, err := getEnvBool("METRICS_ENABLED", true)
	record(err)

	return &Config{
		Environment:    env,
		Port:           port,
		DBPath:         getEnv("DB_PATH", "./data/potluck.db"),
		JWTSecret:      secret,
		TokenTTL:       ttl,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MetricsEnabled: metrics,
		loadErrors:     loadErrors,
	}
}

// Validate validates the configuration and returns every problem found.
func (c *Config) Validate() error {
	problems := append([]string(nil), c.loadErrors...)

	if c.Environment != EnvDevelopment && c.Environment != EnvProduction {
		problems = append(problems, fmt.Sprintf("invalid environment '%s': must be %s or %s",
			c.Environment, EnvDevelopment, EnvProduction))
	}

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	if c.DBPath == "" {
		problems = append(problems, "database path cannot be empty")
	}

	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required")
	} else if c.Environment == EnvProduction && len(c.JWTSecret) < 32 {
		problems = append(problems, "JWT_SECRET must be at least 32 characters in production")
	}

	if c.TokenTTL <= 0 {
		problems = append(problems, fmt.Sprintf("invalid token TTL %s: must be positive", c.TokenTTL))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s '%s': must be an integer", key, value)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s '%s': must be true or false", key, value)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s '%s': must be a duration such as 24h", key, value)
	}
	return d, nil
}
