package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the gateway process
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Region      string `env:"TUNNEL_REGION" envDefault:"id"`
	BaseDomain  string `env:"BASE_DOMAIN" envDefault:"tunlify.biz.id"`
	Port        string `env:"API_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// Database Configuration
	DatabaseURL string `env:"DATABASE_URL"`

	// Ingress Configuration
	// Address the L4 listeners bind to. Empty means all interfaces.
	L4BindAddress string `env:"L4_BIND_ADDRESS"`

	// Timeouts (seconds). Defaults follow the tunnel protocol contract.
	RequestTimeout    int `env:"REQUEST_TIMEOUT" envDefault:"30"`
	HeartbeatInterval int `env:"HEARTBEAT_INTERVAL" envDefault:"25"`
	UDPSessionTimeout int `env:"UDP_SESSION_TIMEOUT" envDefault:"60"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists. Try environment-specific files first.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/gateway.log"
		} else {
			cfg.LogFile = "./logs/gateway.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}
