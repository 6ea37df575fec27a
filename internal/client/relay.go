// Package client implements the relay side of a tunnel: it dials the
// gateway's control channel, keeps it alive, and dispatches proxied HTTP
// requests, raw streams, and datagrams to a local endpoint.
package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

const (
	reconnectDelay    = 5 * time.Second
	handshakeTimeout  = 10 * time.Second
	writeTimeout      = 10 * time.Second
	heartbeatInterval = 25 * time.Second
	sendQueueSize     = 256
)

// Relay maintains one control channel to the gateway, reconnecting forever
// until its context is cancelled.
type Relay struct {
	cfg    *Config
	logger *logging.Logger

	mu        sync.Mutex
	target    Target
	connected bool
	publicURL string
	retries   int
}

// NewRelay creates a relay for the given gateway config and local target.
// A zero target port means "use the port the gateway advertises".
func NewRelay(cfg *Config, target Target, logger *logging.Logger) *Relay {
	return &Relay{
		cfg:    cfg,
		logger: logger,
		target: target,
	}
}

// Target returns the current local endpoint.
func (r *Relay) Target() Target {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

// Connected reports whether a control channel is currently established.
func (r *Relay) Connected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.connected
}

// PublicURL returns the public address announced by the gateway, if any.
func (r *Relay) PublicURL() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.publicURL
}

// Run connects and serves until ctx is cancelled. Every connection loss is
// followed by a fixed-delay reconnect; the gateway queues nothing for us
// while we are away, so there is no catch-up phase.
func (r *Relay) Run(ctx context.Context) error {
	for {
		err := r.runSession(ctx)

		r.mu.Lock()
		r.connected = false
		r.retries++
		retries := r.retries
		r.mu.Unlock()

		if ctx.Err() != nil {
			return ctx.Err()
		}

		r.logger.Warn("Control channel lost (attempt %d): %v; reconnecting in %s",
			retries, err, reconnectDelay)

		select {
		case <-time.After(reconnectDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// session is the state of one live control channel. It dies with the
// websocket; the relay then builds a fresh one.
type session struct {
	relay  *Relay
	conn   *websocket.Conn
	send   chan []byte
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	http *httpProxy
	tcp  *tcpProxy
	udp  *udpProxy
}

func (r *Relay) runSession(ctx context.Context) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: r.cfg.Security.InsecureSkipVerify,
		},
	}

	wsURL := fmt.Sprintf("%s?token=%s", r.cfg.ControlURL(), url.QueryEscape(r.cfg.Token))
	conn, resp, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("failed to dial gateway (HTTP %d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("failed to dial gateway: %w", err)
	}

	sessCtx, cancel := context.WithCancel(ctx)
	s := &session{
		relay:  r,
		conn:   conn,
		send:   make(chan []byte, sendQueueSize),
		ctx:    sessCtx,
		cancel: cancel,
	}
	s.http = newHTTPProxy(r, r.logger)
	s.tcp = newTCPProxy(s, r.logger)
	s.udp = newUDPProxy(s, r.logger)

	defer func() {
		cancel()
		conn.Close()
		s.tcp.closeAll()
		s.udp.closeAll()
		s.wg.Wait()
	}()

	s.wg.Add(2)
	go s.writeLoop()
	go s.heartbeatLoop()

	_ = s.enqueue(&proto.SetLocalAddress{Address: r.Target().Addr()})

	return s.readLoop()
}

// enqueue serializes and queues one frame for the single writer.
func (s *session) enqueue(f proto.Frame) error {
	data, err := proto.Encode(f)
	if err != nil {
		return err
	}
	select {
	case s.send <- data:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	}
}

func (s *session) writeLoop() {
	defer s.wg.Done()
	for {
		select {
		case data := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.cancel()
				return
			}
		case <-s.ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "shutting down")
			_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeTimeout))
			return
		}
	}
}

func (s *session) heartbeatLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.enqueue(&proto.Heartbeat{}); err != nil {
				return
			}
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *session) readLoop() error {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return err
		}

		frame, err := proto.Decode(data)
		if err != nil {
			s.relay.logger.Warn("Dropping malformed frame: %v", err)
			continue
		}
		s.dispatch(frame)
	}
}

func (s *session) dispatch(frame proto.Frame) {
	switch f := frame.(type) {
	case *proto.Connected:
		s.onConnected(f)

	case *proto.Request:
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.http.handle(s, f)
		}()

	case *proto.TCPConnect:
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.tcp.open(f.ConnectionID)
		}()

	case *proto.TCPData:
		s.tcp.data(f)
	case *proto.TCPClose:
		s.tcp.halfClose(f.ConnectionID)
	case *proto.TCPError:
		s.tcp.abort(f.ConnectionID, f.Message)

	case *proto.UDPData:
		s.udp.relayDatagram(f)

	case *proto.Heartbeat:
		_ = s.enqueue(&proto.HeartbeatAck{})
	case *proto.HeartbeatAck:
		// Liveness confirmed; nothing to track beyond the read itself.

	case *proto.Error:
		s.relay.logger.Warn("Gateway reported error for request %s: %s", f.RequestID, f.Message)

	case *proto.Unknown:
		s.relay.logger.Debug("Ignoring unknown frame type %q", f.Kind())
	}
}

func (s *session) onConnected(f *proto.Connected) {
	r := s.relay
	r.mu.Lock()
	r.connected = true
	r.retries = 0
	r.publicURL = f.PublicURL
	if r.target.Port == 0 {
		r.target.Port = f.LocalPort
	}
	target := r.target
	r.mu.Unlock()

	r.logger.Info("Tunnel established: %s -> %s (tunnel #%d, %s.%s)",
		f.PublicURL, target.Addr(), f.TunnelID, f.Subdomain, f.Region)
}
