// Package config holds the process-wide configuration for the AI backend.
// All values are sourced from environment variables once at startup and
// passed explicitly to the components that need them.
package config

import (
	"fmt"
	"os"
)

// Config contains every externally tunable setting of the service.
type Config struct {
	// OllamaBaseURL is the base URL of the Ollama inference endpoint.
	OllamaBaseURL string
	// OllamaModel is the model identifier sent with every generation call.
	OllamaModel string

	// PostgreSQL connection settings. An empty DBPassword means the
	// database accepts peer authentication over the local Unix socket,
	// so DBHost is a socket directory rather than a hostname.
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	// Port is the HTTP listen port of this service.
	Port string
}

// Load builds a Config from the environment, falling back to the
// development defaults where a variable is unset.
func Load() *Config {
	return &Config{
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "benedict/linkbricks-gemma2-korean:27b"),
		DBHost:        getEnv("DB_HOST", "/var/run/postgresql"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "qim"),
		DBUser:        getEnv("DB_USER", "kimboguk"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		Port:          getEnv("AI_SERVICE_PORT", "8008"),
	}
}

// DSN returns the PostgreSQL connection string. Without a password the
// DSN targets the Unix socket directory and relies on peer auth.
func (c *Config) DSN() string {
	if c.DBPassword == "" {
		return fmt.Sprintf("host=%s user=%s dbname=%s sslmode=disable",
			c.DBHost, c.DBUser, c.DBName)
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
