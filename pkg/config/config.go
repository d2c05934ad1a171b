package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// Database
	DatabaseDriver string
	DatabaseURL    string
	SQLitePath     string

	// Custody parties
	PartyAID   string
	PartyBID   string
	PartyAName string
	PartyBName string

	// Rotation
	RotationDays       int
	MaxConsecutiveDays int
}

// Load loads configuration from environment variables. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SQLitePath:     getEnv("PAWPLAN_SQLITE_PATH", ""),

		PartyAID:   getEnv("PAWPLAN_PARTY_A", ""),
		PartyBID:   getEnv("PAWPLAN_PARTY_B", ""),
		PartyAName: getEnv("PAWPLAN_PARTY_A_NAME", "Party A"),
		PartyBName: getEnv("PAWPLAN_PARTY_B_NAME", "Party B"),

		RotationDays:       getIntEnv("PAWPLAN_ROTATION_DAYS", 3),
		MaxConsecutiveDays: getIntEnv("PAWPLAN_MAX_CONSECUTIVE_DAYS", 4),
	}

	return cfg, nil
}

// PartyIDs returns the configured party identifiers. IDs left unset are
// generated fresh, which is only useful for one-off runs against an
// in-memory database.
func (c *Config) PartyIDs() (uuid.UUID, uuid.UUID, error) {
	a, err := parsePartyID(c.PartyAID, "PAWPLAN_PARTY_A")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	b, err := parsePartyID(c.PartyBID, "PAWPLAN_PARTY_B")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return a, b, nil
}

func parsePartyID(value, key string) (uuid.UUID, error) {
	if value == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return id, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
