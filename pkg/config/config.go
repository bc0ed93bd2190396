package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the runtime configuration for the bridge, sourced from
// environment variables.
type Config struct {
	Tuya   TuyaConfig
	Server ServerConfig
	Store  StoreConfig
}

// TuyaConfig contains Tuya Cloud API credentials and endpoint settings.
type TuyaConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig contains device alias store settings.
type StoreConfig struct {
	// Path to the alias store. Files ending in ".db" are opened as a
	// SQLite database; anything else is treated as a JSON document.
	Path string
}

// Address returns the listen address for the HTTP server.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SQLite reports whether the configured store path selects the SQLite store.
func (c *StoreConfig) SQLite() bool {
	return strings.HasSuffix(c.Path, ".db")
}

// LoadFromEnv loads configuration from environment variables, applying
// defaults for everything except the Tuya credentials. Credentials are
// allowed to be empty at startup: the token manager rejects vendor calls
// until they are set.
func LoadFromEnv() *Config {
	return &Config{
		Tuya: TuyaConfig{
			BaseURL:      getEnv("TUYA_BASE_URL", "https://openapi.tuyaus.com"),
			ClientID:     getEnv("TUYA_CLIENT_ID", ""),
			ClientSecret: getEnv("TUYA_CLIENT_SECRET", ""),
		},
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnvInt("PORT", 8787),
		},
		Store: StoreConfig{
			Path: getEnv("DEVICE_MAP_PATH", "device-map.json"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
