package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// GatewayConfig represents gateway connection settings
type GatewayConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	TLS  bool   `json:"tls"`
}

// SecurityConfig represents security settings
type SecurityConfig struct {
	InsecureSkipVerify bool `json:"insecure_skip_verify"`
}

// Config represents the relay client configuration, stored at
// ~/.tunlify/config.json.
type Config struct {
	Token    string         `json:"token"`
	Target   string         `json:"target,omitempty"`
	Gateway  GatewayConfig  `json:"gateway"`
	Security SecurityConfig `json:"security"`
}

// DefaultConfig provides default client configuration
var DefaultConfig = Config{
	Gateway: GatewayConfig{
		Host: "tunnel.tunlify.biz.id",
		Port: 443,
		TLS:  true,
	},
}

// ControlURL returns the websocket URL of the control-channel endpoint.
func (c *Config) ControlURL() string {
	scheme := "wss"
	if !c.Gateway.TLS {
		scheme = "ws"
	}
	return fmt.Sprintf("%s://%s:%d/ws/tunnel", scheme, c.Gateway.Host, c.Gateway.Port)
}

// APIBaseURL returns the base URL of the management API.
func (c *Config) APIBaseURL() string {
	scheme := "https"
	if !c.Gateway.TLS {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Gateway.Host, c.Gateway.Port)
}

func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tunlify", "config.json"), nil
}

// LoadConfig loads the configuration from the default location. A missing
// file yields the defaults.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes the configuration to the default location.
func SaveConfig(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
