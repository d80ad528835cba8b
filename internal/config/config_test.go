package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/config"
)

func TestEnvReader_Defaults(t *testing.T) {
	t.Setenv("ENV", config.EnvLocal)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := config.NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, config.EnvLocal, cfg.Env)
	assert.Equal(t, "5001", cfg.HTTP.Port)
	assert.Equal(t, "taskboard", cfg.Mongo.Database)
	assert.Equal(t, time.Hour, cfg.JWT.TokenTTL)
}

func TestEnvReader_Overrides(t *testing.T) {
	t.Setenv("ENV", config.EnvProd)
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DATABASE", "tasks_prod")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_TOKEN_TTL", "30m")
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := config.NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "tasks_prod", cfg.Mongo.Database)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TokenTTL)
}

func TestEnvReader_RequiredFields(t *testing.T) {
	t.Setenv("ENV", config.EnvLocal)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	_, err := config.NewEnvReader().Read()
	assert.Error(t, err, "JWT_SECRET is required")
}
