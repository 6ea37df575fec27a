package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

func newTestLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logger, err := logging.NewLogger(&logging.Config{
		Level: "error",
		File:  filepath.Join(t.TempDir(), "client.log"),
	})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	return logger
}

// newTestSession builds a session with no websocket behind it; frames land in
// the send queue where the test can decode them.
func newTestSession(t *testing.T, target Target) *session {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := newTestLogger(t)
	cfg := DefaultConfig
	s := &session{
		relay:  &Relay{cfg: &cfg, logger: logger, target: target},
		send:   make(chan []byte, 64),
		ctx:    ctx,
		cancel: cancel,
	}
	s.tcp = newTCPProxy(s, logger)
	return s
}

func nextFrame(t *testing.T, s *session) proto.Frame {
	t.Helper()
	select {
	case data := <-s.send:
		frame, err := proto.Decode(data)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		return frame
	case <-time.After(2 * time.Second):
		t.Fatal("no frame queued within 2s")
		return nil
	}
}

// A service that answers only after it has seen EOF must still get its
// response through: tcp_close from the gateway half-closes the local socket,
// it does not tear the stream down.
func TestTCPHalfCloseKeepsResponsePath(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	defer ln.Close()

	serverDone := make(chan struct{})
	go func() {
		defer close(serverDone)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		req, _ := io.ReadAll(conn)
		_, _ = conn.Write(append([]byte("echo:"), req...))
	}()

	addr := ln.Addr().(*net.TCPAddr)
	s := newTestSession(t, Target{Scheme: "http", Host: "127.0.0.1", Port: addr.Port})

	pumpDone := make(chan struct{})
	go func() {
		s.tcp.open("c1")
		close(pumpDone)
	}()

	if _, ok := nextFrame(t, s).(*proto.TCPConnectAck); !ok {
		t.Fatal("expected tcp_connect_ack first")
	}

	s.tcp.data(&proto.TCPData{
		ConnectionID: "c1",
		Data:         base64.StdEncoding.EncodeToString([]byte("ping")),
	})
	s.tcp.halfClose("c1")

	var got bytes.Buffer
	for {
		switch f := nextFrame(t, s).(type) {
		case *proto.TCPData:
			chunk, err := base64.StdEncoding.DecodeString(f.Data)
			if err != nil {
				t.Fatalf("bad tcp_data payload: %v", err)
			}
			got.Write(chunk)
		case *proto.TCPClose:
			if got.String() != "echo:ping" {
				t.Errorf("response = %q, want %q", got.String(), "echo:ping")
			}
			<-serverDone
			<-pumpDone
			return
		default:
			t.Fatalf("unexpected frame %s", f.Kind())
		}
	}
}

// tcp_error aborts the stream outright; the local socket must be gone.
func TestTCPAbortClosesStream(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	defer ln.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	addr := ln.Addr().(*net.TCPAddr)
	s := newTestSession(t, Target{Scheme: "http", Host: "127.0.0.1", Port: addr.Port})

	pumpDone := make(chan struct{})
	go func() {
		s.tcp.open("c1")
		close(pumpDone)
	}()

	if _, ok := nextFrame(t, s).(*proto.TCPConnectAck); !ok {
		t.Fatal("expected tcp_connect_ack first")
	}

	s.tcp.abort("c1", "public side reset")

	conn := <-accepted
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, err := conn.Read(make([]byte, 1)); err == nil {
		t.Error("local socket should be closed after abort")
	}
	<-pumpDone

	s.tcp.mu.Lock()
	n := len(s.tcp.streams)
	s.tcp.mu.Unlock()
	if n != 0 {
		t.Errorf("stream table has %d entries, want 0", n)
	}
}
