package tunnel

import (
	"net/http"
	"strings"
)

// Hop-by-hop and trust-sensitive headers that never cross the tunnel, in
// either direction.
var strippedHeaders = map[string]struct{}{
	"host":               {},
	"connection":         {},
	"upgrade":            {},
	"keep-alive":         {},
	"transfer-encoding":  {},
	"content-length":     {},
	"x-forwarded-for":    {},
	"x-real-ip":          {},
	"x-forwarded-host":   {},
	"x-forwarded-proto":  {},
	"x-tunnel-subdomain": {},
	"x-tunnel-region":    {},
	"server":             {},
	"x-powered-by":       {},
}

// IsStrippedHeader reports whether a header never crosses the tunnel.
func IsStrippedHeader(name string) bool {
	_, ok := strippedHeaders[strings.ToLower(name)]
	return ok
}

// SanitizeRequestHeaders converts an incoming header set to the flat wire
// map: stripped headers removed, empty values dropped, multi-valued headers
// comma-joined in their original order.
func SanitizeRequestHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if IsStrippedHeader(name) {
			continue
		}
		joined := flattenValues(values)
		if joined == "" {
			continue
		}
		out[name] = joined
	}
	return out
}

// FilterResponseHeaders removes stripped and empty headers from a response
// header map before it is written to the edge.
func FilterResponseHeaders(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for name, value := range h {
		if IsStrippedHeader(name) || value == "" {
			continue
		}
		out[name] = value
	}
	return out
}

func flattenValues(values []string) string {
	kept := values[:0:0]
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, ", ")
}
