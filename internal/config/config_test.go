package config_test

import (
	"testing"

	"qim/ai-backend/internal/config"

	"github.com/stretchr/testify/assert"
)

// TestDSN_WithPasswordUsesHostPortAuth verifies the TCP DSN shape when a
// password is configured.
func TestDSN_WithPasswordUsesHostPortAuth(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBName:     "qim",
		DBUser:     "qim_ai",
		DBPassword: "secret",
	}

	dsn := cfg.DSN()

	assert.Equal(t, "host=db.internal user=qim_ai password=secret dbname=qim port=5433 sslmode=disable", dsn)
}

// TestDSN_WithoutPasswordUsesPeerAuth verifies that an empty password
// switches to the Unix-socket peer-auth DSN without password or port.
func TestDSN_WithoutPasswordUsesPeerAuth(t *testing.T) {
	cfg := &config.Config{
		DBHost: "/var/run/postgresql",
		DBPort: "5432",
		DBName: "qim",
		DBUser: "kimboguk",
	}

	dsn := cfg.DSN()

	assert.Equal(t, "host=/var/run/postgresql user=kimboguk dbname=qim sslmode=disable", dsn)
	assert.NotContains(t, dsn, "password")
	assert.NotContains(t, dsn, "port")
}

// TestLoad_UsesEnvironmentOverrides verifies environment variables win over
// the built-in defaults.
func TestLoad_UsesEnvironmentOverrides(t *testing.T) {
	t.Setenv("OLLAMA_MODEL", "test-model")
	t.Setenv("AI_SERVICE_PORT", "9009")
	t.Setenv("DB_PASSWORD", "")

	cfg := config.Load()

	assert.Equal(t, "test-model", cfg.OllamaModel)
	assert.Equal(t, ":9009", cfg.Addr())
	assert.Equal(t, "http://localhost:11434", cfg.OllamaBaseURL)
}
