package mapper

import (
	"fmt"
	"time"

	tunneldto "github.com/tunlify/tunlify/internal/api/dto/v1/tunnel"
	"github.com/tunlify/tunlify/internal/db/ent"
	"github.com/tunlify/tunlify/internal/service"
)

// ToTunnelResponse converts a tunnel row to its API view, including the
// computed tunnel_url, connection_info and service_info fields.
func ToTunnelResponse(t *ent.Tunnel, baseDomain string, includeToken bool) tunneldto.TunnelResponse {
	resp := tunneldto.TunnelResponse{
		ID:              t.ID,
		Subdomain:       t.Subdomain,
		Region:          t.Region,
		ServiceType:     t.ServiceType,
		Protocol:        string(t.Protocol),
		LocalPort:       t.LocalPort,
		RemotePort:      t.RemotePort,
		Status:          string(t.Status),
		ClientConnected: t.ClientConnected,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
		TunnelURL:       TunnelURL(t, baseDomain),
		ConnectionInfo:  connectionInfo(t, baseDomain),
		ServiceInfo:     serviceInfo(t),
	}

	if includeToken {
		resp.ConnectionToken = t.ConnectionToken
	}
	if t.LastConnected != nil {
		formatted := t.LastConnected.Format(time.RFC3339)
		resp.LastConnected = &formatted
	}
	return resp
}

// TunnelURL returns the public address of a tunnel.
func TunnelURL(t *ent.Tunnel, baseDomain string) string {
	host := fmt.Sprintf("%s.%s.%s", t.Subdomain, t.Region, baseDomain)
	if t.Protocol == "http" {
		return "https://" + host
	}
	if t.RemotePort != nil {
		return fmt.Sprintf("%s:%d", host, *t.RemotePort)
	}
	return host
}

func connectionInfo(t *ent.Tunnel, baseDomain string) string {
	host := fmt.Sprintf("%s.%s.%s", t.Subdomain, t.Region, baseDomain)
	switch t.Protocol {
	case "http":
		return fmt.Sprintf("Browse to https://%s", host)
	case "udp":
		if t.RemotePort != nil {
			return fmt.Sprintf("Send UDP datagrams to %s:%d", host, *t.RemotePort)
		}
	default:
		if t.RemotePort != nil {
			return fmt.Sprintf("Connect to %s:%d", host, *t.RemotePort)
		}
	}
	return host
}

func serviceInfo(t *ent.Tunnel) string {
	if preset, ok := service.LookupPreset(t.ServiceType); ok {
		return fmt.Sprintf("%s - %s", preset.Name, preset.Description)
	}
	return t.ServiceType
}

// SetupInstructions returns the post-creation hints shown to the user.
func SetupInstructions(t *ent.Tunnel, baseDomain string) []string {
	return []string{
		"Install the client: go install github.com/tunlify/tunlify/cmd/tunlify@latest",
		fmt.Sprintf("Log in: tunlify login --token %s", t.ConnectionToken),
		fmt.Sprintf("Start the tunnel: tunlify connect --local-target 127.0.0.1:%d", t.LocalPort),
		fmt.Sprintf("Your service will be reachable at %s", TunnelURL(t, baseDomain)),
	}
}
