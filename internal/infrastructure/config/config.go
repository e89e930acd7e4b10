// internal/infrastructure/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Claim ID schemes
const (
	ClaimIDSchemeSequence       = "claim_sequence"
	ClaimIDSchemePolicyPosition = "policy_position"
)

// Supported fake-data locales
const (
	LocaleGB = "en_GB"
	LocaleUS = "en_US"
)

// Config holds all configuration for the seeder
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// PostgreSQL
	PostgresDSN string

	// Generation
	NumCustomers     int
	Seed             uint64
	Locale           string
	ClaimProbability float64
	ClaimIDScheme    string

	// Loading
	BatchSize int

	// MongoDB (run reports, optional)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Metrics (optional)
	PushgatewayURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Collects values that are set but cannot be parsed
	var parseErrs []error

	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost port=5432 user=admin password=admin@1234 dbname=InsureMe sslmode=disable"),

		NumCustomers:     getEnvAsInt("NUM_CUSTOMERS", 100, &parseErrs),
		Seed:             getEnvAsUint64("SEED", 0, &parseErrs),
		Locale:           getEnv("LOCALE", LocaleGB),
		ClaimProbability: getEnvAsFloat("CLAIM_PROBABILITY", 0.5, &parseErrs),
		ClaimIDScheme:    getEnv("CLAIM_ID_SCHEME", ClaimIDSchemeSequence),

		BatchSize: getEnvAsInt("BATCH_SIZE", 1000, &parseErrs),

		MongoURI:      getEnv("MONGODB_DSN", ""),
		MongoDB:       getEnv("MONGO_DB", "insureme"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PushgatewayURL: getEnv("PUSHGATEWAY_URL", ""),
	}

	if err := errors.Join(append(parseErrs, config.Validate())...); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values that would otherwise produce an invalid dataset
func (c *Config) Validate() error {
	var errs []error

	if c.PostgresDSN == "" {
		errs = append(errs, errors.New("POSTGRES_DSN must not be empty"))
	}
	if c.NumCustomers < 1 {
		errs = append(errs, fmt.Errorf("NUM_CUSTOMERS must be at least 1, got %d", c.NumCustomers))
	}
	if c.Locale != LocaleGB && c.Locale != LocaleUS {
		errs = append(errs, fmt.Errorf("unsupported LOCALE %q", c.Locale))
	}
	if c.ClaimProbability < 0 || c.ClaimProbability > 1 {
		errs = append(errs, fmt.Errorf("CLAIM_PROBABILITY must be within [0,1], got %v", c.ClaimProbability))
	}
	if c.ClaimIDScheme != ClaimIDSchemeSequence && c.ClaimIDScheme != ClaimIDSchemePolicyPosition {
		errs = append(errs, fmt.Errorf("unsupported CLAIM_ID_SCHEME %q", c.ClaimIDScheme))
	}
	if c.BatchSize < 1 {
		errs = append(errs, fmt.Errorf("BATCH_SIZE must be at least 1, got %d", c.BatchSize))
	}

	return errors.Join(errs...)
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int, errs *[]error) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid integer %q", key, valueStr))
		return defaultValue
	}
	return value
}

func getEnvAsUint64(key string, defaultValue uint64, errs *[]error) uint64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid unsigned integer %q", key, valueStr))
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64, errs *[]error) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid number %q", key, valueStr))
		return defaultValue
	}
	return value
}
