package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion    string
	EventBusName string

	// Entity tables, one per kind
	ProductsTable        string
	ServiceProfilesTable string
	ServiceRequestsTable string
	ChatTable            string
	UsersTable           string

	// Lambda configuration
	IsLambda bool

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Logging and features
	LogLevel           string
	EnableMetrics      bool
	EnableEvents       bool
	EnableCORS         bool
	RateLimitPerMinute int
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		EventBusName:  getEnv("EVENT_BUS_NAME", "fitit-events"),

		ProductsTable:        getEnv("PRODUCTS_TABLE", "fitit-products"),
		ServiceProfilesTable: getEnv("SERVICE_PROFILES_TABLE", "fitit-service-profiles"),
		ServiceRequestsTable: getEnv("SERVICE_REQUESTS_TABLE", "fitit-service-requests"),
		ChatTable:            getEnv("CHAT_TABLE", "fitit-chat-messages"),
		UsersTable:           getEnv("USERS_TABLE", "fitit-users"),

		IsLambda: os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "",

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "fitit-backend"),

		LogLevel:           getEnv("LOG_LEVEL", "info"),
		EnableMetrics:      getEnvBool("ENABLE_METRICS", false),
		EnableEvents:       getEnvBool("ENABLE_EVENTS", true),
		EnableCORS:         getEnvBool("ENABLE_CORS", true),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
	}

	for name, table := range map[string]string{
		"PRODUCTS_TABLE":         c.ProductsTable,
		"SERVICE_PROFILES_TABLE": c.ServiceProfilesTable,
		"SERVICE_REQUESTS_TABLE": c.ServiceRequestsTable,
		"CHAT_TABLE":             c.ChatTable,
		"USERS_TABLE":            c.UsersTable,
	} {
		if table == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}

	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	return nil
}

// IsDevelopment checks if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
