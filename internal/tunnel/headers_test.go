package tunnel

import (
	"net/http"
	"testing"
)

func TestSanitizeRequestHeaders(t *testing.T) {
	in := http.Header{
		"Host":               {"myapp.id.tunlify.biz.id"},
		"Connection":         {"keep-alive"},
		"X-Forwarded-For":    {"1.2.3.4"},
		"X-Tunnel-Subdomain": {"myapp"},
		"Accept":             {"text/html", "application/json"},
		"Content-Type":       {"application/json"},
		"X-Empty":            {""},
	}

	out := SanitizeRequestHeaders(in)

	for _, stripped := range []string{"Host", "Connection", "X-Forwarded-For", "X-Tunnel-Subdomain", "X-Empty"} {
		if _, ok := out[stripped]; ok {
			t.Errorf("%s should have been stripped", stripped)
		}
	}
	if out["Accept"] != "text/html, application/json" {
		t.Errorf("multi-valued header = %q, want comma-joined", out["Accept"])
	}
	if out["Content-Type"] != "application/json" {
		t.Errorf("Content-Type = %q", out["Content-Type"])
	}
}

func TestFilterResponseHeaders(t *testing.T) {
	in := map[string]string{
		"Content-Type":      "text/html",
		"Transfer-Encoding": "chunked",
		"Connection":        "close",
		"Server":            "nginx",
		"X-Powered-By":      "Express",
		"Cache-Control":     "no-store",
		"X-Blank":           "",
	}

	out := FilterResponseHeaders(in)

	want := map[string]string{
		"Content-Type":  "text/html",
		"Cache-Control": "no-store",
	}
	if len(out) != len(want) {
		t.Fatalf("got %d headers %v, want %d", len(out), out, len(want))
	}
	for k, v := range want {
		if out[k] != v {
			t.Errorf("%s = %q, want %q", k, out[k], v)
		}
	}
}

func TestIsStrippedHeaderCaseInsensitive(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"HOST", true},
		{"content-length", true},
		{"X-Real-IP", true},
		{"x-tunnel-region", true},
		{"Content-Type", false},
		{"Authorization", false},
	}
	for _, tt := range tests {
		if got := IsStrippedHeader(tt.name); got != tt.expected {
			t.Errorf("IsStrippedHeader(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
