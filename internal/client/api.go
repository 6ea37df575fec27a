package client

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TunnelInfo is what the gateway reveals about a connection token.
type TunnelInfo struct {
	TunnelID  int    `json:"tunnel_id"`
	Subdomain string `json:"subdomain"`
	Region    string `json:"region"`
	Protocol  string `json:"protocol"`
	LocalPort int    `json:"local_port"`
	TunnelURL string `json:"tunnel_url"`
}

// VerifyToken exchanges the connection token for its tunnel details via the
// management API. Used by login and status, before any control channel.
func VerifyToken(cfg *Config) (*TunnelInfo, error) {
	body, err := json.Marshal(map[string]string{"connection_token": cfg.Token})
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: cfg.Security.InsecureSkipVerify,
			},
		},
	}

	resp, err := httpClient.Post(cfg.APIBaseURL()+"/api/v1/tunnels/auth", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to reach gateway API: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Success bool       `json:"success"`
		Data    TunnelInfo `json:"data"`
		Error   *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected response from gateway (HTTP %d)", resp.StatusCode)
	}
	if !envelope.Success {
		if envelope.Error != nil {
			return nil, fmt.Errorf("token rejected: %s", envelope.Error.Message)
		}
		return nil, fmt.Errorf("token rejected (HTTP %d)", resp.StatusCode)
	}
	return &envelope.Data, nil
}
