package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends for the space repository
const (
	StorageDynamoDB = "dynamodb"
	StorageSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Spaces      SpacesConfig
	Database    DatabaseConfig
	AWS         AWSConfig
	Monitor     MonitorConfig
	JWT         JWTConfig
	RateLimit   RateLimitConfig
}

// SpacesConfig holds configuration for the spaces table
type SpacesConfig struct {
	TableName   string
	StorageType string // "dynamodb" or "sqlite"
}

// DatabaseConfig holds the local sqlite store configuration
type DatabaseConfig struct {
	ConnectionString string
	MaxOpenConns     int
	MaxIdleConns     int
}

// AWSConfig holds AWS client configuration
type AWSConfig struct {
	Region           string
	DynamoDBEndpoint string
}

// MonitorConfig holds alarm forwarding configuration
type MonitorConfig struct {
	SlackWebhookURL string
	// MaxAttempts bounds deliveries per record; 1 posts once without retrying
	MaxAttempts int
}

// JWTConfig holds JWT configuration for the local server
type JWTConfig struct {
	Secret string
	Issuer string
}

// RateLimitConfig holds local server rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SPACES_TABLE_NAME", "")
	v.SetDefault("STORAGE_TYPE", StorageSQLite)
	v.SetDefault("DB_CONNECTION_STRING", "./data/spaces.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 1)
	v.SetDefault("DB_MAX_IDLE_CONNS", 1)
	v.SetDefault("AWS_REGION", "")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("SLACK_WEBHOOK_URL", "")
	v.SetDefault("SLACK_MAX_ATTEMPTS", 1)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "space-finder-api")
	v.SetDefault("RATE_LIMIT_RPS", 20.0)
	v.SetDefault("RATE_LIMIT_BURST", 40)
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Spaces: SpacesConfig{
			TableName:   v.GetString("SPACES_TABLE_NAME"),
			StorageType: v.GetString("STORAGE_TYPE"),
		},
		Database: DatabaseConfig{
			ConnectionString: v.GetString("DB_CONNECTION_STRING"),
			MaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:     v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Monitor: MonitorConfig{
			SlackWebhookURL: v.GetString("SLACK_WEBHOOK_URL"),
			MaxAttempts:     v.GetInt("SLACK_MAX_ATTEMPTS"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Issuer: v.GetString("JWT_ISSUER"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the loaded values are usable
func (c *Config) Validate() error {
	switch c.Spaces.StorageType {
	case StorageDynamoDB, StorageSQLite:
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE %q: expected %q or %q", c.Spaces.StorageType, StorageDynamoDB, StorageSQLite)
	}

	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}

	return nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
