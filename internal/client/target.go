package client

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Target is the local endpoint traffic is relayed to.
type Target struct {
	Scheme string // http or https, used for HTTP dispatch only
	Host   string
	Port   int
}

// Addr returns the host:port form used for dialing.
func (t Target) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// BaseURL returns the scheme://host:port form used for HTTP dispatch.
func (t Target) BaseURL() string {
	return fmt.Sprintf("%s://%s", t.Scheme, t.Addr())
}

func (t Target) String() string {
	return t.Addr()
}

// ParseTarget accepts the forms users actually type: a bare port ("3000"),
// a colon port (":3000"), host:port ("192.168.1.5:8080"), or a full URL
// ("http://localhost:3000"). Host defaults to 127.0.0.1, scheme to http.
func ParseTarget(s string) (Target, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Target{}, fmt.Errorf("empty target")
	}

	t := Target{Scheme: "http", Host: "127.0.0.1"}

	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return Target{}, fmt.Errorf("invalid target URL %q: %w", s, err)
		}
		switch u.Scheme {
		case "http", "https":
			t.Scheme = u.Scheme
		default:
			return Target{}, fmt.Errorf("unsupported target scheme %q", u.Scheme)
		}
		if u.Hostname() != "" {
			t.Host = u.Hostname()
		}
		if p := u.Port(); p != "" {
			port, err := strconv.Atoi(p)
			if err != nil {
				return Target{}, fmt.Errorf("invalid target port %q", p)
			}
			t.Port = port
		} else if u.Scheme == "https" {
			t.Port = 443
		} else {
			t.Port = 80
		}
		return t, validatePort(t.Port)
	}

	// Bare or colon-prefixed port.
	if port, err := strconv.Atoi(strings.TrimPrefix(s, ":")); err == nil {
		t.Port = port
		return t, validatePort(t.Port)
	}

	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return Target{}, fmt.Errorf("invalid target %q: expected port, :port, host:port, or URL", s)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return Target{}, fmt.Errorf("invalid target port %q", portStr)
	}
	if host != "" {
		t.Host = host
	}
	t.Port = port
	return t, validatePort(t.Port)
}

func validatePort(p int) error {
	if p < 1 || p > 65535 {
		return fmt.Errorf("target port %d out of range", p)
	}
	return nil
}
