package client

import (
	"testing"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{in: "3000", want: Target{Scheme: "http", Host: "127.0.0.1", Port: 3000}},
		{in: ":8080", want: Target{Scheme: "http", Host: "127.0.0.1", Port: 8080}},
		{in: "192.168.1.5:8080", want: Target{Scheme: "http", Host: "192.168.1.5", Port: 8080}},
		{in: "localhost:5432", want: Target{Scheme: "http", Host: "localhost", Port: 5432}},
		{in: "http://localhost:3000", want: Target{Scheme: "http", Host: "localhost", Port: 3000}},
		{in: "https://127.0.0.1:8443", want: Target{Scheme: "https", Host: "127.0.0.1", Port: 8443}},
		{in: "http://myhost", want: Target{Scheme: "http", Host: "myhost", Port: 80}},
		{in: "https://myhost", want: Target{Scheme: "https", Host: "myhost", Port: 443}},
		{in: "  3000  ", want: Target{Scheme: "http", Host: "127.0.0.1", Port: 3000}},
		{in: "", wantErr: true},
		{in: "no-port-here", wantErr: true},
		{in: "0", wantErr: true},
		{in: "99999", wantErr: true},
		{in: "ftp://host:21", wantErr: true},
		{in: "host:notaport", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTarget(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTarget(%q) should fail, got %+v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTarget(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestTargetAddrAndBaseURL(t *testing.T) {
	target := Target{Scheme: "https", Host: "localhost", Port: 8443}
	if target.Addr() != "localhost:8443" {
		t.Errorf("Addr() = %q", target.Addr())
	}
	if target.BaseURL() != "https://localhost:8443" {
		t.Errorf("BaseURL() = %q", target.BaseURL())
	}
}
