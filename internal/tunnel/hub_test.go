package tunnel

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/tunlify/tunlify/internal/db/ent"
	enttunnel "github.com/tunlify/tunlify/internal/db/ent/tunnel"
	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/repository"
	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

type stubTunnelRepo struct {
	byToken map[string]*ent.Tunnel
	byKey   map[string]*ent.Tunnel
}

func (s *stubTunnelRepo) Create(ctx context.Context, t *ent.Tunnel) (*ent.Tunnel, error) {
	return t, nil
}

func (s *stubTunnelRepo) GetByID(ctx context.Context, id uint32) (*ent.Tunnel, error) {
	return nil, repository.ErrNotFound
}

func (s *stubTunnelRepo) GetByUserID(ctx context.Context, userID uint32) ([]*ent.Tunnel, error) {
	return nil, nil
}

func (s *stubTunnelRepo) GetByToken(ctx context.Context, token string) (*ent.Tunnel, error) {
	if t, ok := s.byToken[token]; ok {
		return t, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubTunnelRepo) GetActive(ctx context.Context, subdomain, region string) (*ent.Tunnel, error) {
	if t, ok := s.byKey[subdomain+"/"+region]; ok {
		return t, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubTunnelRepo) Delete(ctx context.Context, id uint32, userID uint32) error { return nil }

func (s *stubTunnelRepo) UpdateStatus(ctx context.Context, id uint32, status enttunnel.Status, clientConnected bool, lastConnected *time.Time) error {
	return nil
}

func (s *stubTunnelRepo) IsPortFree(ctx context.Context, region string, port int) (bool, error) {
	return true, nil
}

func newHubTestLogger(t *testing.T) *logging.Logger {
	t.Helper()
	logger, err := logging.NewLogger(&logging.Config{
		Level: "error",
		File:  filepath.Join(t.TempDir(), "hub.log"),
	})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	return logger
}

// dialControl connects a fake tunnel client and runs its frame loop. The
// handler runs on the single read goroutine, so its writes are ordered.
func dialControl(t *testing.T, srvURL, token string, handle func(conn *websocket.Conn, frame proto.Frame)) (*websocket.Conn, <-chan *proto.Connected) {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srvURL, "http") + "/ws/tunnel?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}

	connected := make(chan *proto.Connected, 1)
	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			frame, err := proto.Decode(data)
			if err != nil {
				continue
			}
			if f, ok := frame.(*proto.Connected); ok {
				connected <- f
				continue
			}
			handle(conn, frame)
		}
	}()
	return conn, connected
}

func writeFrame(t *testing.T, conn *websocket.Conn, f proto.Frame) {
	t.Helper()
	data, err := proto.Encode(f)
	if err != nil {
		t.Errorf("Encode failed: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		t.Errorf("WriteMessage failed: %v", err)
	}
}

func awaitConnected(t *testing.T, ch <-chan *proto.Connected) *proto.Connected {
	t.Helper()
	select {
	case f := <-ch:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("no connected frame within 2s")
		return nil
	}
}

func TestHubProxiesHTTPRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	row := &ent.Tunnel{
		ID:              7,
		Subdomain:       "myapp",
		Region:          "id",
		Protocol:        enttunnel.ProtocolHTTP,
		LocalPort:       3000,
		ConnectionToken: "tok-http",
		Status:          enttunnel.StatusActive,
		ClientConnected: true,
	}
	repo := &stubTunnelRepo{
		byToken: map[string]*ent.Tunnel{"tok-http": row},
		byKey:   map[string]*ent.Tunnel{"myapp/id": row},
	}

	hub := NewHub(HubConfig{
		BaseDomain:     "tunlify.biz.id",
		L4BindAddress:  "127.0.0.1",
		RequestTimeout: 5 * time.Second,
	}, repo, newHubTestLogger(t))

	router := gin.New()
	router.GET("/ws/tunnel", hub.HandleControl)
	router.NoRoute(hub.HandleHTTPIngress)
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn, connectedCh := dialControl(t, srv.URL, "tok-http", func(conn *websocket.Conn, frame proto.Frame) {
		switch f := frame.(type) {
		case *proto.Request:
			body, _ := base64.StdEncoding.DecodeString(f.Body)
			writeFrame(t, conn, &proto.Response{
				RequestID:  f.RequestID,
				StatusCode: 201,
				Headers:    map[string]string{"Content-Type": "text/plain", "X-Local": "yes"},
				Encoding:   proto.EncodingUTF8,
				Body:       fmt.Sprintf("handled %s %s body=%s", f.Method, f.URL, body),
			})
		case *proto.Heartbeat:
			writeFrame(t, conn, &proto.HeartbeatAck{})
		}
	})
	defer conn.Close()

	connected := awaitConnected(t, connectedCh)
	if connected.PublicURL != "https://myapp.id.tunlify.biz.id" {
		t.Errorf("PublicURL = %q", connected.PublicURL)
	}
	if hub.Registry().Len() != 1 {
		t.Fatalf("registry has %d channels, want 1", hub.Registry().Len())
	}

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/orders?limit=2", strings.NewReader("payload"))
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	req.Header.Set(HeaderSubdomain, "myapp")
	req.Header.Set(HeaderRegion, "id")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("status = %d, want 201", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if want := "handled POST /orders?limit=2 body=payload"; string(body) != want {
		t.Errorf("body = %q, want %q", body, want)
	}
	if resp.Header.Get("X-Local") != "yes" {
		t.Error("client response header was not forwarded")
	}
	if resp.Header.Get("X-Powered-By") != "Tunlify" {
		t.Error("missing X-Powered-By header")
	}
	if hub.Pending().Len() != 0 {
		t.Errorf("pending table has %d leftover entries", hub.Pending().Len())
	}
}

func TestHubRelaysTCPStream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Reserve a port for the public listener.
	reserved, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	remotePort := reserved.Addr().(*net.TCPAddr).Port
	reserved.Close()

	row := &ent.Tunnel{
		ID:              9,
		Subdomain:       "rawapp",
		Region:          "id",
		Protocol:        enttunnel.ProtocolTCP,
		LocalPort:       5432,
		RemotePort:      &remotePort,
		ConnectionToken: "tok-tcp",
		Status:          enttunnel.StatusActive,
		ClientConnected: true,
	}
	repo := &stubTunnelRepo{
		byToken: map[string]*ent.Tunnel{"tok-tcp": row},
		byKey:   map[string]*ent.Tunnel{"rawapp/id": row},
	}

	hub := NewHub(HubConfig{
		BaseDomain:     "tunlify.biz.id",
		L4BindAddress:  "127.0.0.1",
		RequestTimeout: 5 * time.Second,
	}, repo, newHubTestLogger(t))

	router := gin.New()
	router.GET("/ws/tunnel", hub.HandleControl)
	srv := httptest.NewServer(router)
	defer srv.Close()

	// The fake client acks every stream and echoes its bytes back untouched.
	conn, connectedCh := dialControl(t, srv.URL, "tok-tcp", func(conn *websocket.Conn, frame proto.Frame) {
		switch f := frame.(type) {
		case *proto.TCPConnect:
			writeFrame(t, conn, &proto.TCPConnectAck{ConnectionID: f.ConnectionID})
		case *proto.TCPData:
			writeFrame(t, conn, &proto.TCPData{ConnectionID: f.ConnectionID, Data: f.Data})
		case *proto.TCPClose:
			writeFrame(t, conn, &proto.TCPClose{ConnectionID: f.ConnectionID})
		case *proto.Heartbeat:
			writeFrame(t, conn, &proto.HeartbeatAck{})
		}
	})
	defer conn.Close()
	awaitConnected(t, connectedCh)

	// The listener starts just after the connected frame; retry briefly.
	var pub net.Conn
	deadline := time.Now().Add(2 * time.Second)
	for {
		pub, err = net.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", remotePort))
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("public listener never came up: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	defer pub.Close()

	payload := []byte{0x00, 0x01, 0xfe, 0xff, 'p', 'i', 'n', 'g', 0x00}
	if _, err := pub.Write(payload); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := pub.(*net.TCPConn).CloseWrite(); err != nil {
		t.Fatalf("CloseWrite failed: %v", err)
	}

	got, err := io.ReadAll(pub)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("echoed %x, want %x", got, payload)
	}
}
