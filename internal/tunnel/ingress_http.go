package tunnel

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tunlify/tunlify/internal/repository"
	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

// Headers the edge proxy injects; the only client-supplied values we trust.
const (
	HeaderSubdomain = "X-Tunnel-Subdomain"
	HeaderRegion    = "X-Tunnel-Region"
)

// SubdomainPattern and RegionPattern are the grammar of a tunnel key. The
// catalog validates creation against the same patterns, so every stored key
// is routable.
var (
	SubdomainPattern = regexp.MustCompile(`^[a-z0-9-]{3,50}$`)
	RegionPattern    = regexp.MustCompile(`^[a-z0-9]{2,10}$`)
)

// HandleHTTPIngress proxies one edge request over the tunnel's control
// channel and writes the correlated response back.
func (h *Hub) HandleHTTPIngress(c *gin.Context) {
	subdomain := c.GetHeader(HeaderSubdomain)
	region := c.GetHeader(HeaderRegion)
	if !SubdomainPattern.MatchString(subdomain) || !RegionPattern.MatchString(region) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Missing or malformed tunnel routing headers",
			"error":   "bad_request",
		})
		return
	}

	key := Key{Subdomain: subdomain, Region: region}
	host := h.PublicHost(key)

	t, err := h.tunnels.GetActive(c.Request.Context(), subdomain, region)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Tunnel not found",
				"error":   "not_found",
				"tunnel":  host,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to resolve tunnel",
			"error":   "internal_error",
			"tunnel":  host,
		})
		return
	}

	if !t.ClientConnected {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"message": "Tunnel client is not connected. Run `tunlify connect` next to your service to bring it online.",
			"error":   "client_disconnected",
			"tunnel":  host,
		})
		return
	}

	// The catalog can say connected while this gateway holds no channel,
	// e.g. right after a restart.
	ch, ok := h.registry.Lookup(key)
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"message": "Tunnel client connection was lost. It reconnects automatically; retry shortly.",
			"error":   "websocket_disconnected",
			"tunnel":  host,
		})
		return
	}

	frame := &proto.Request{
		RequestID: uuid.NewString(),
		Method:    c.Request.Method,
		URL:       c.Request.URL.RequestURI(),
		Headers:   SanitizeRequestHeaders(c.Request.Header),
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead && c.Request.Body != nil {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Failed to read request body",
				"error":   "bad_request",
				"tunnel":  host,
			})
			return
		}
		frame.Body = base64.StdEncoding.EncodeToString(body)
	}

	// Register before send so a fast response can never beat the entry.
	waiter, err := h.pending.Register(frame.RequestID, PendingEntry{
		Key:          key,
		Method:       frame.Method,
		Path:         c.Request.URL.Path,
		RegisteredAt: time.Now(),
	}, h.cfg.RequestTimeout)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to track request",
			"error":   "internal_error",
			"tunnel":  host,
		})
		return
	}

	if err := ch.Enqueue(frame); err != nil {
		h.pending.Fail(frame.RequestID, err)
		// Drain the failure we just delivered.
		_, _ = waiter.Wait(c.Request.Context())
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"message": "Tunnel is overloaded, try again",
			"error":   "channel_busy",
			"tunnel":  host,
		})
		return
	}

	resp, err := waiter.Wait(c.Request.Context())
	if err != nil {
		h.writeIngressError(c, host, err)
		return
	}

	h.writeIngressResponse(c, key, resp)
}

func (h *Hub) writeIngressError(c *gin.Context, host string, err error) {
	switch {
	case errors.Is(err, ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"message": "Gateway Timeout",
			"tunnel":  host,
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"message": "Bad Gateway",
			"error":   err.Error(),
			"tunnel":  host,
		})
	}
}

func (h *Hub) writeIngressResponse(c *gin.Context, key Key, resp *proto.Response) {
	host := h.PublicHost(key)

	body, err := decodeBody(resp)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"message": "Bad Gateway",
			"error":   "malformed response body from tunnel client",
			"tunnel":  host,
		})
		return
	}

	status := resp.StatusCode
	if status < 100 || status > 599 {
		status = http.StatusOK
	}

	header := c.Writer.Header()
	for name, value := range FilterResponseHeaders(resp.Headers) {
		header.Set(name, value)
	}
	header.Set(HeaderSubdomain, key.Subdomain)
	header.Set(HeaderRegion, key.Region)
	header.Set("X-Powered-By", "Tunlify")

	c.Status(status)
	if len(body) > 0 {
		_, _ = c.Writer.Write(body)
	}
}

func decodeBody(resp *proto.Response) ([]byte, error) {
	if resp.Body == "" {
		return nil, nil
	}
	if resp.Encoding == proto.EncodingBase64 {
		return base64.StdEncoding.DecodeString(resp.Body)
	}
	// utf8 bodies pass through as raw bytes; the sender vouches for the text.
	return []byte(resp.Body), nil
}
