// Package config holds runtime configuration for the API server, loaded
// from environment variables.
package config

import "os"

// ServerConfig configures the HTTP API binary.
type ServerConfig struct {
	Addr      string
	LogLevel  string
	LogFormat string
}

// Default returns the configuration used when no environment overrides are set.
func Default() ServerConfig {
	return ServerConfig{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// LoadFromEnv overrides fields from environment variables with the given
// prefix, e.g. prefix "PANELCUT" reads PANELCUT_ADDR, PANELCUT_LOG_LEVEL
// and PANELCUT_LOG_FORMAT.
func (c *ServerConfig) LoadFromEnv(prefix string) {
	if addr := os.Getenv(prefix + "_ADDR"); addr != "" {
		c.Addr = addr
	}
	if level := os.Getenv(prefix + "_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if format := os.Getenv(prefix + "_LOG_FORMAT"); format != "" {
		c.LogFormat = format
	}
}
