package mapper

import (
	"strings"
	"testing"
	"time"

	"github.com/tunlify/tunlify/internal/db/ent"
	enttunnel "github.com/tunlify/tunlify/internal/db/ent/tunnel"
)

func intp(v int) *int { return &v }

func httpTunnel() *ent.Tunnel {
	return &ent.Tunnel{
		ID:              3,
		Subdomain:       "myapp",
		Region:          "id",
		ServiceType:     "http",
		Protocol:        enttunnel.ProtocolHTTP,
		LocalPort:       3000,
		ConnectionToken: "secret-token",
		Status:          enttunnel.StatusActive,
		ClientConnected: true,
		UserID:          1,
		CreatedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestTunnelURL(t *testing.T) {
	httpT := httpTunnel()
	if got := TunnelURL(httpT, "tunlify.biz.id"); got != "https://myapp.id.tunlify.biz.id" {
		t.Errorf("http tunnel URL = %q", got)
	}

	tcpT := httpTunnel()
	tcpT.Protocol = enttunnel.ProtocolTCP
	tcpT.RemotePort = intp(15000)
	if got := TunnelURL(tcpT, "tunlify.biz.id"); got != "myapp.id.tunlify.biz.id:15000" {
		t.Errorf("tcp tunnel URL = %q", got)
	}
}

func TestToTunnelResponseTokenVisibility(t *testing.T) {
	row := httpTunnel()

	withToken := ToTunnelResponse(row, "tunlify.biz.id", true)
	if withToken.ConnectionToken != "secret-token" {
		t.Error("token should be included when requested")
	}

	withoutToken := ToTunnelResponse(row, "tunlify.biz.id", false)
	if withoutToken.ConnectionToken != "" {
		t.Error("token leaked into a response that should omit it")
	}
}

func TestToTunnelResponseFields(t *testing.T) {
	row := httpTunnel()
	last := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	row.LastConnected = &last

	resp := ToTunnelResponse(row, "tunlify.biz.id", false)
	if resp.ID != 3 || resp.Subdomain != "myapp" || resp.Region != "id" {
		t.Errorf("identity fields wrong: %+v", resp)
	}
	if resp.TunnelURL != "https://myapp.id.tunlify.biz.id" {
		t.Errorf("TunnelURL = %q", resp.TunnelURL)
	}
	if resp.ServiceInfo == "" || resp.ConnectionInfo == "" {
		t.Error("computed info fields should be populated")
	}
	if resp.LastConnected == nil || *resp.LastConnected != "2026-02-01T00:00:00Z" {
		t.Errorf("LastConnected = %v", resp.LastConnected)
	}
}

func TestSetupInstructionsMentionTokenAndURL(t *testing.T) {
	row := httpTunnel()
	lines := SetupInstructions(row, "tunlify.biz.id")
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, row.ConnectionToken) {
		t.Error("instructions should include the connection token")
	}
	if !strings.Contains(joined, "https://myapp.id.tunlify.biz.id") {
		t.Error("instructions should include the public URL")
	}
}
