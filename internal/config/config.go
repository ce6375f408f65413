package config

import (
	"fmt"
	"os"
)

// Config holds the application configuration. It is read once from the
// environment at startup and treated as immutable afterwards.
type Config struct {
	// MongoDB
	MongoURI    string
	MongoDBName string

	// Session cookie signing secret.
	SecretKey string

	// Server bind address.
	Host string
	Port string
}

// Load reads the configuration from environment variables. Missing required
// variables are collected and reported in a single error.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	cfg.MongoURI = os.Getenv("MONGO_URI")
	if cfg.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}

	cfg.MongoDBName = os.Getenv("MONGO_DBNAME")
	if cfg.MongoDBName == "" {
		missing = append(missing, "MONGO_DBNAME")
	}

	cfg.SecretKey = os.Getenv("SECRET_KEY")
	if cfg.SecretKey == "" {
		missing = append(missing, "SECRET_KEY")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	cfg.Host = os.Getenv("IP")
	cfg.Port = getEnvString("PORT", "8080")

	return cfg, nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
