package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Match.LooseDestination)
	assert.Equal(t, 30, cfg.Match.SweepIntervalSec)
	assert.Equal(t, 45, cfg.Match.AcceptDeadlineSec)
	assert.Equal(t, 500, cfg.Fare.RatePerDegree)
	assert.Equal(t, 20, cfg.Fare.MinimumFare)
	assert.Equal(t, 50, cfg.Fare.DefaultFare)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "http://localhost:9981", cfg.Services.DriverServiceURL)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("MATCH_LOOSE_DESTINATION", "false")
	t.Setenv("MATCH_ACCEPT_DEADLINE_SEC", "90")
	t.Setenv("FARE_DEFAULT", "100")
	t.Setenv("DRIVER_SERVICE_URL", "http://driver.internal:8080")

	cfg := loadConfigFromEnv()

	assert.False(t, cfg.Match.LooseDestination)
	assert.Equal(t, 90, cfg.Match.AcceptDeadlineSec)
	assert.Equal(t, 100, cfg.Fare.DefaultFare)
	assert.Equal(t, "http://driver.internal:8080", cfg.Services.DriverServiceURL)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BAD_INT", "not-a-number")

	assert.Equal(t, "value", GetEnv("TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnv("TEST_MISSING", "default"))
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 0))
	assert.Equal(t, 7, GetEnvAsInt("TEST_BAD_INT", 7))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.False(t, GetEnvAsBool("TEST_MISSING", false))
}
