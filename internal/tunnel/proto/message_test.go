package proto

import (
	"encoding/json"
	"testing"
)

func TestEncodeSplicesTypeTag(t *testing.T) {
	data, err := Encode(&Request{
		RequestID: "req-1",
		Method:    "GET",
		URL:       "/api/users?page=2",
		Headers:   map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Encode produced invalid JSON: %v", err)
	}
	if string(fields["type"]) != `"request"` {
		t.Errorf("type tag = %s, want \"request\"", fields["type"])
	}
	if string(fields["requestId"]) != `"req-1"` {
		t.Errorf("requestId = %s, want \"req-1\"", fields["requestId"])
	}
	if _, nested := fields["headers"]; !nested {
		t.Error("expected headers field at top level")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	frames := []Frame{
		&Connected{TunnelID: 7, Subdomain: "myapp", Region: "id", PublicURL: "https://myapp.id.tunlify.biz.id", LocalPort: 3000},
		&Request{RequestID: "r1", Method: "POST", URL: "/submit", Headers: map[string]string{"Content-Type": "application/json"}, Body: "eyJrIjoidiJ9"},
		&Response{RequestID: "r1", StatusCode: 201, Headers: map[string]string{"Content-Type": "text/plain"}, Encoding: EncodingUTF8, Body: "created"},
		&Error{RequestID: "r1", Message: "connection refused"},
		&TCPConnect{ConnectionID: "c1"},
		&TCPConnectAck{ConnectionID: "c1"},
		&TCPData{ConnectionID: "c1", Data: "AAEC"},
		&TCPClose{ConnectionID: "c1"},
		&TCPError{ConnectionID: "c1", Message: "dial failed"},
		&UDPData{SessionID: "s1", Data: "AAEC", SourceAddr: "1.2.3.4:9999"},
		&UDPResponse{SessionID: "s1", Data: "AAEC"},
		&Heartbeat{},
		&HeartbeatAck{},
		&SetLocalAddress{Address: "127.0.0.1:3000"},
	}

	for _, in := range frames {
		data, err := Encode(in)
		if err != nil {
			t.Fatalf("Encode(%s) failed: %v", in.Kind(), err)
		}
		out, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode(%s) failed: %v", in.Kind(), err)
		}
		if out.Kind() != in.Kind() {
			t.Errorf("round trip changed kind: %s -> %s", in.Kind(), out.Kind())
		}
	}
}

func TestDecodePreservesFields(t *testing.T) {
	in := `{"type":"response","requestId":"abc","statusCode":404,"headers":{"X-A":"1"},"encoding":"base64","body":"aGk="}`
	frame, err := Decode([]byte(in))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	resp, ok := frame.(*Response)
	if !ok {
		t.Fatalf("expected *Response, got %T", frame)
	}
	if resp.RequestID != "abc" || resp.StatusCode != 404 || resp.Encoding != EncodingBase64 || resp.Body != "aGk=" {
		t.Errorf("unexpected decode result: %+v", resp)
	}
	if resp.Headers["X-A"] != "1" {
		t.Errorf("headers not preserved: %v", resp.Headers)
	}
}

func TestDecodeUnknownType(t *testing.T) {
	frame, err := Decode([]byte(`{"type":"compression_hint","level":3}`))
	if err != nil {
		t.Fatalf("unknown type should not error: %v", err)
	}
	u, ok := frame.(*Unknown)
	if !ok {
		t.Fatalf("expected *Unknown, got %T", frame)
	}
	if u.Type != "compression_hint" {
		t.Errorf("Type = %q, want compression_hint", u.Type)
	}
	if len(u.Raw) == 0 {
		t.Error("expected raw payload to be preserved")
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{"", "not json", `{"type":`} {
		if _, err := Decode([]byte(in)); err == nil {
			t.Errorf("Decode(%q) should fail", in)
		}
	}
}

func TestDecodeResponseLenientStatusCode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"integer", `{"type":"response","requestId":"r1","statusCode":201}`, 201},
		{"float", `{"type":"response","requestId":"r1","statusCode":204.0}`, 204},
		{"numeric string", `{"type":"response","requestId":"r1","statusCode":"302"}`, 302},
		{"garbage string", `{"type":"response","requestId":"r1","statusCode":"teapot"}`, 0},
		{"missing", `{"type":"response","requestId":"r1"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Decode([]byte(tt.raw))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			resp, ok := frame.(*Response)
			if !ok {
				t.Fatalf("expected *Response, got %T", frame)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("StatusCode = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
