package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "fitit-products", cfg.ProductsTable)
	assert.Equal(t, "fitit-users", cfg.UsersTable)
	assert.Equal(t, "fitit-events", cfg.EventBusName)
	assert.Equal(t, 100, cfg.RateLimitPerMinute)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("PRODUCTS_TABLE", "custom-products")
	t.Setenv("ENABLE_METRICS", "true")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "25")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "custom-products", cfg.ProductsTable)
	assert.True(t, cfg.EnableMetrics)
	assert.Equal(t, 25, cfg.RateLimitPerMinute)
}

func TestLoadConfig_LambdaDetection(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "fitit-api")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsLambda)
}

func TestValidate_ProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "supersecret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestValidate_RejectsEmptyTable(t *testing.T) {
	cfg := &Config{
		Environment:          "development",
		ProductsTable:        "fitit-products",
		ServiceProfilesTable: "fitit-service-profiles",
		ServiceRequestsTable: "",
		ChatTable:            "fitit-chat-messages",
		UsersTable:           "fitit-users",
		RateLimitPerMinute:   100,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVICE_REQUESTS_TABLE")
}
