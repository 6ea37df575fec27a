package client

import (
	"encoding/base64"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/tunnel"
	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

const localRequestTimeout = 30 * time.Second

// binaryContentType matches content types whose bodies must not be sent as
// literal JSON strings.
var binaryContentType = regexp.MustCompile(`(?i)(image|video|audio|font|pdf|zip|gzip|octet-stream|protobuf|msgpack)`)

// httpProxy forwards proxied requests to the local HTTP endpoint.
type httpProxy struct {
	relay  *Relay
	client *http.Client
	logger *logging.Logger
}

func newHTTPProxy(relay *Relay, logger *logging.Logger) *httpProxy {
	return &httpProxy{
		relay:  relay,
		logger: logger,
		client: &http.Client{
			Timeout: localRequestTimeout,
			// Redirects are the origin's business; relay them as-is.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// handle proxies one request and queues the response (or error) frame.
// It runs on its own goroutine; slow locals only stall their own request.
func (p *httpProxy) handle(s *session, req *proto.Request) {
	resp, err := p.roundTrip(s, req)
	if err != nil {
		p.logger.Warn("Local request %s %s failed: %v", req.Method, req.URL, err)
		_ = s.enqueue(&proto.Error{RequestID: req.RequestID, Message: err.Error()})
		return
	}
	_ = s.enqueue(resp)
}

func (p *httpProxy) roundTrip(s *session, req *proto.Request) (*proto.Response, error) {
	var body io.Reader
	if req.Body != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, err
		}
		body = strings.NewReader(string(decoded))
	}

	target := p.relay.Target()
	httpReq, err := http.NewRequestWithContext(s.ctx, req.Method, target.BaseURL()+req.URL, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		if tunnel.IsStrippedHeader(k) {
			continue
		}
		httpReq.Header.Set(k, v)
	}

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	payload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string, len(httpResp.Header))
	for k, vs := range httpResp.Header {
		if tunnel.IsStrippedHeader(k) {
			continue
		}
		headers[k] = strings.Join(vs, ", ")
	}

	encoding, encoded := encodeBody(httpResp.Header.Get("Content-Type"), payload)
	return &proto.Response{
		RequestID:  req.RequestID,
		StatusCode: httpResp.StatusCode,
		Headers:    headers,
		Encoding:   encoding,
		Body:       encoded,
	}, nil
}

// encodeBody picks the body transport encoding: binary content types and
// invalid UTF-8 go as base64, everything else rides as plain text.
func encodeBody(contentType string, payload []byte) (string, string) {
	if len(payload) == 0 {
		return proto.EncodingUTF8, ""
	}
	if binaryContentType.MatchString(contentType) || !utf8.Valid(payload) {
		return proto.EncodingBase64, base64.StdEncoding.EncodeToString(payload)
	}
	return proto.EncodingUTF8, string(payload)
}
