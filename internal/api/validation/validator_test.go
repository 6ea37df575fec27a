package validation

import (
	"testing"

	tunneldto "github.com/tunlify/tunlify/internal/api/dto/v1/tunnel"
)

func intp(v int) *int { return &v }

func TestValidateCreateTunnel(t *testing.T) {
	tests := []struct {
		name      string
		req       tunneldto.CreateTunnelRequest
		wantPaths []string
	}{
		{
			name: "valid http tunnel",
			req:  tunneldto.CreateTunnelRequest{Subdomain: "myapp", Location: "id", ServiceType: "http"},
		},
		{
			name: "valid ssh tunnel with pinned port",
			req:  tunneldto.CreateTunnelRequest{Subdomain: "bastion", Location: "id", ServiceType: "ssh", RemotePort: intp(15000)},
		},
		{
			name:      "subdomain too short",
			req:       tunneldto.CreateTunnelRequest{Subdomain: "ab", Location: "id", ServiceType: "http"},
			wantPaths: []string{"subdomain"},
		},
		{
			name:      "subdomain with uppercase",
			req:       tunneldto.CreateTunnelRequest{Subdomain: "MyApp", Location: "id", ServiceType: "http"},
			wantPaths: []string{"subdomain"},
		},
		{
			name:      "location too long",
			req:       tunneldto.CreateTunnelRequest{Subdomain: "myapp", Location: "a-very-long-region", ServiceType: "http"},
			wantPaths: []string{"location"},
		},
		{
			// Ingress only routes lowercase alphanumeric regions, so the
			// catalog must reject anything else up front.
			name:      "location with uppercase",
			req:       tunneldto.CreateTunnelRequest{Subdomain: "myapp", Location: "ID", ServiceType: "http"},
			wantPaths: []string{"location"},
		},
		{
			name:      "unknown service type",
			req:       tunneldto.CreateTunnelRequest{Subdomain: "myapp", Location: "id", ServiceType: "gopher"},
			wantPaths: []string{"service_type"},
		},
		{
			name:      "bad protocol",
			req:       tunneldto.CreateTunnelRequest{Subdomain: "myapp", Location: "id", ServiceType: "custom", Protocol: "sctp"},
			wantPaths: []string{"protocol"},
		},
		{
			name:      "local port out of range",
			req:       tunneldto.CreateTunnelRequest{Subdomain: "myapp", Location: "id", ServiceType: "http", LocalPort: intp(70000)},
			wantPaths: []string{"local_port"},
		},
		{
			name:      "remote port on http tunnel",
			req:       tunneldto.CreateTunnelRequest{Subdomain: "myapp", Location: "id", ServiceType: "http", RemotePort: intp(15000)},
			wantPaths: []string{"remote_port"},
		},
		{
			name:      "remote port out of range",
			req:       tunneldto.CreateTunnelRequest{Subdomain: "myapp", Location: "id", ServiceType: "ssh", RemotePort: intp(0)},
			wantPaths: []string{"remote_port"},
		},
		{
			name:      "multiple violations reported together",
			req:       tunneldto.CreateTunnelRequest{Subdomain: "a", Location: "x", ServiceType: "nope"},
			wantPaths: []string{"subdomain", "location", "service_type"},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.ValidateCreateTunnel(&tt.req)
			if len(errs) != len(tt.wantPaths) {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(tt.wantPaths))
			}
			got := map[string]bool{}
			for _, e := range errs {
				if e.Msg == "" {
					t.Errorf("error for %s has empty message", e.Path)
				}
				got[e.Path] = true
			}
			for _, path := range tt.wantPaths {
				if !got[path] {
					t.Errorf("missing violation for %s in %v", path, errs)
				}
			}
		})
	}
}
