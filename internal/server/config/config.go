// Package config handles configuration for the serving process, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the serving process.
//
// Fields:
//   - Port: listen port; the server binds to all interfaces.
//   - StaticDir: directory holding the built single-page application.
type Config struct {
	Port      string
	StaticDir string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Port = "3000"
	c.StaticDir = "build"
}

// parseEnv overlays Config with environment variables, loading a .env file
// first when one is present (missing .env is not an error).
//
// Recognized variables: PORT, STATIC_DIR.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
