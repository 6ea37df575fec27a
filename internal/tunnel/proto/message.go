// Package proto defines the JSON frames exchanged on a control channel.
// Every frame is a single JSON object with a "type" discriminator; the set
// of types is closed, and anything else decodes to *Unknown so that protocol
// evolution stays additive.
package proto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Type discriminates control-channel frames.
type Type string

const (
	// server -> client
	TypeConnected  Type = "connected"
	TypeRequest    Type = "request"
	TypeTCPConnect Type = "tcp_connect"
	TypeUDPData    Type = "udp_data"

	// client -> server
	TypeResponse        Type = "response"
	TypeError           Type = "error"
	TypeTCPConnectAck   Type = "tcp_connect_ack"
	TypeTCPError        Type = "tcp_error"
	TypeUDPResponse     Type = "udp_response"
	TypeSetLocalAddress Type = "set_local_address"

	// both directions
	TypeTCPData      Type = "tcp_data"
	TypeTCPClose     Type = "tcp_close"
	TypeHeartbeat    Type = "heartbeat"
	TypeHeartbeatAck Type = "heartbeat_ack"
)

// Body encodings for HTTP request/response frames.
const (
	EncodingUTF8   = "utf8"
	EncodingBase64 = "base64"
)

// Frame is one decoded control-channel message.
type Frame interface {
	Kind() Type
}

// Connected is issued once by the server after successful authentication.
type Connected struct {
	TunnelID  int    `json:"tunnelId"`
	Subdomain string `json:"subdomain"`
	Region    string `json:"region"`
	PublicURL string `json:"publicUrl"`
	// Advisory local port from the catalog; the client may override it.
	LocalPort int `json:"localPort"`
}

// Request carries one HTTP request to be proxied. Body is base64-encoded
// and empty for GET/HEAD.
type Request struct {
	RequestID string            `json:"requestId"`
	Method    string            `json:"method"`
	URL       string            `json:"url"`
	Headers   map[string]string `json:"headers"`
	Body      string            `json:"body,omitempty"`
}

// Response correlates to a prior Request by id.
type Response struct {
	RequestID  string            `json:"requestId"`
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Encoding   string            `json:"encoding"`
	Body       string            `json:"body"`
}

// UnmarshalJSON tolerates statusCode values that are not plain integers.
// Floats are truncated and numeric strings parsed; anything else leaves the
// field at zero, which the receiver's valid-range fallback turns into 200.
func (r *Response) UnmarshalJSON(data []byte) error {
	type plain Response
	aux := struct {
		*plain
		StatusCode json.RawMessage `json:"statusCode"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.StatusCode = lenientStatusCode(aux.StatusCode)
	return nil
}

func lenientStatusCode(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v
		}
	}
	return 0
}

// Error reports a failure for a specific request.
type Error struct {
	RequestID string `json:"requestId"`
	Message   string `json:"message"`
}

// TCPConnect opens a logical raw stream.
type TCPConnect struct {
	ConnectionID string `json:"connectionId"`
}

// TCPConnectAck acknowledges a TCPConnect.
type TCPConnectAck struct {
	ConnectionID string `json:"connectionId"`
}

// TCPData carries one ordered chunk of a raw stream, base64-encoded.
type TCPData struct {
	ConnectionID string `json:"connectionId"`
	Data         string `json:"data"`
}

// TCPClose terminates a raw stream from either side.
type TCPClose struct {
	ConnectionID string `json:"connectionId"`
}

// TCPError aborts a raw stream.
type TCPError struct {
	ConnectionID string `json:"connectionId"`
	Message      string `json:"message"`
}

// UDPData is one datagram to relay, base64-encoded.
type UDPData struct {
	SessionID  string `json:"sessionId"`
	Data       string `json:"data"`
	SourceAddr string `json:"sourceAddr,omitempty"`
}

// UDPResponse is one return datagram for a session.
type UDPResponse struct {
	SessionID string `json:"sessionId"`
	Data      string `json:"data"`
}

// Heartbeat is a liveness probe; either side may send it.
type Heartbeat struct{}

// HeartbeatAck answers a Heartbeat.
type HeartbeatAck struct{}

// SetLocalAddress informs the server of the client's intended local target.
// The server only logs it.
type SetLocalAddress struct {
	Address string `json:"address"`
}

// Unknown preserves frames whose type is outside the defined set.
type Unknown struct {
	Type Type
	Raw  json.RawMessage
}

func (Connected) Kind() Type       { return TypeConnected }
func (Request) Kind() Type         { return TypeRequest }
func (Response) Kind() Type        { return TypeResponse }
func (Error) Kind() Type           { return TypeError }
func (TCPConnect) Kind() Type      { return TypeTCPConnect }
func (TCPConnectAck) Kind() Type   { return TypeTCPConnectAck }
func (TCPData) Kind() Type         { return TypeTCPData }
func (TCPClose) Kind() Type        { return TypeTCPClose }
func (TCPError) Kind() Type        { return TypeTCPError }
func (UDPData) Kind() Type         { return TypeUDPData }
func (UDPResponse) Kind() Type     { return TypeUDPResponse }
func (Heartbeat) Kind() Type       { return TypeHeartbeat }
func (HeartbeatAck) Kind() Type    { return TypeHeartbeatAck }
func (SetLocalAddress) Kind() Type { return TypeSetLocalAddress }
func (u Unknown) Kind() Type       { return u.Type }

// Encode marshals a frame to its wire form, splicing the type tag into the
// flat JSON object.
func Encode(f Frame) ([]byte, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s frame: %w", f.Kind(), err)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("failed to flatten %s frame: %w", f.Kind(), err)
	}
	fields["type"], _ = json.Marshal(f.Kind())

	return json.Marshal(fields)
}

// Decode parses one wire message into its typed frame. Unrecognized types
// yield *Unknown; malformed JSON is an error.
func Decode(data []byte) (Frame, error) {
	var head struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}

	var frame Frame
	switch head.Type {
	case TypeConnected:
		frame = &Connected{}
	case TypeRequest:
		frame = &Request{}
	case TypeResponse:
		frame = &Response{}
	case TypeError:
		frame = &Error{}
	case TypeTCPConnect:
		frame = &TCPConnect{}
	case TypeTCPConnectAck:
		frame = &TCPConnectAck{}
	case TypeTCPData:
		frame = &TCPData{}
	case TypeTCPClose:
		frame = &TCPClose{}
	case TypeTCPError:
		frame = &TCPError{}
	case TypeUDPData:
		frame = &UDPData{}
	case TypeUDPResponse:
		frame = &UDPResponse{}
	case TypeHeartbeat:
		frame = &Heartbeat{}
	case TypeHeartbeatAck:
		frame = &HeartbeatAck{}
	case TypeSetLocalAddress:
		frame = &SetLocalAddress{}
	default:
		return &Unknown{Type: head.Type, Raw: append(json.RawMessage(nil), data...)}, nil
	}

	if err := json.Unmarshal(data, frame); err != nil {
		return nil, fmt.Errorf("malformed %s frame: %w", head.Type, err)
	}
	return frame, nil
}
