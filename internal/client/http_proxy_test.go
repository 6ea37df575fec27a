package client

import (
	"encoding/base64"
	"testing"

	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

func TestEncodeBody(t *testing.T) {
	pngBytes := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}

	tests := []struct {
		name         string
		contentType  string
		payload      []byte
		wantEncoding string
	}{
		{"empty body", "text/html", nil, proto.EncodingUTF8},
		{"html text", "text/html; charset=utf-8", []byte("<html></html>"), proto.EncodingUTF8},
		{"json text", "application/json", []byte(`{"ok":true}`), proto.EncodingUTF8},
		{"png image", "image/png", pngBytes, proto.EncodingBase64},
		{"mp4 video", "video/mp4", []byte("binary"), proto.EncodingBase64},
		{"octet stream", "application/octet-stream", []byte("data"), proto.EncodingBase64},
		{"pdf", "application/pdf", []byte("%PDF-1.4"), proto.EncodingBase64},
		{"case insensitive match", "IMAGE/JPEG", []byte("data"), proto.EncodingBase64},
		{"invalid utf8 without binary type", "text/plain", []byte{0xff, 0xfe, 0x00}, proto.EncodingBase64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoding, body := encodeBody(tt.contentType, tt.payload)
			if encoding != tt.wantEncoding {
				t.Fatalf("encoding = %q, want %q", encoding, tt.wantEncoding)
			}
			switch encoding {
			case proto.EncodingUTF8:
				if body != string(tt.payload) {
					t.Errorf("utf8 body altered: %q", body)
				}
			case proto.EncodingBase64:
				decoded, err := base64.StdEncoding.DecodeString(body)
				if err != nil {
					t.Fatalf("body is not valid base64: %v", err)
				}
				if string(decoded) != string(tt.payload) {
					t.Error("base64 body does not round-trip")
				}
			}
		})
	}
}
