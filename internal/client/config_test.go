package client

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempHome(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	return tempDir
}

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	withTempHome(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Gateway.Host != DefaultConfig.Gateway.Host {
		t.Errorf("Gateway.Host = %q, want default", cfg.Gateway.Host)
	}
	if !cfg.Gateway.TLS {
		t.Error("TLS should default to on")
	}
	if cfg.Token != "" {
		t.Errorf("Token = %q, want empty", cfg.Token)
	}
}

func TestSaveAndLoadConfigRoundTrip(t *testing.T) {
	home := withTempHome(t)

	in := DefaultConfig
	in.Token = "tok-123"
	in.Target = "127.0.0.1:3000"
	in.Security.InsecureSkipVerify = true

	if err := SaveConfig(&in); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	// Config holds the token; it must not be world-readable.
	info, err := os.Stat(filepath.Join(home, ".tunlify", "config.json"))
	if err != nil {
		t.Fatalf("config file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 0600", perm)
	}

	out, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *out != in {
		t.Errorf("round trip changed config: %+v != %+v", *out, in)
	}
}

func TestConfigURLs(t *testing.T) {
	cfg := &Config{Gateway: GatewayConfig{Host: "gw.example.com", Port: 443, TLS: true}}
	if got := cfg.ControlURL(); got != "wss://gw.example.com:443/ws/tunnel" {
		t.Errorf("ControlURL = %q", got)
	}
	if got := cfg.APIBaseURL(); got != "https://gw.example.com:443" {
		t.Errorf("APIBaseURL = %q", got)
	}

	cfg.Gateway.TLS = false
	if got := cfg.ControlURL(); got != "ws://gw.example.com:443/ws/tunnel" {
		t.Errorf("plaintext ControlURL = %q", got)
	}
}
