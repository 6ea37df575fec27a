package client

import (
	"encoding/base64"
	"net"
	"sync"
	"time"

	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

const (
	udpSessionIdleTimeout = 60 * time.Second
	udpDatagramLimit      = 64 * 1024
)

// udpProxy keeps one local socket per gateway session id, so return
// datagrams can be matched back to the public source address.
type udpProxy struct {
	session *session
	logger  *logging.Logger

	mu       sync.Mutex
	sessions map[string]*udpFlow
}

type udpFlow struct {
	conn     *net.UDPConn
	lastSeen time.Time
}

func newUDPProxy(s *session, logger *logging.Logger) *udpProxy {
	return &udpProxy{
		session:  s,
		logger:   logger,
		sessions: make(map[string]*udpFlow),
	}
}

// relayDatagram forwards one datagram to the local endpoint, creating the
// flow on first sight.
func (p *udpProxy) relayDatagram(f *proto.UDPData) {
	payload, err := base64.StdEncoding.DecodeString(f.Data)
	if err != nil {
		p.logger.Warn("Dropping undecodable datagram for session %s: %v", f.SessionID, err)
		return
	}

	flow, err := p.flow(f.SessionID)
	if err != nil {
		p.logger.Warn("Failed to open local socket for session %s: %v", f.SessionID, err)
		return
	}

	if _, err := flow.conn.Write(payload); err != nil {
		p.logger.Warn("Failed to forward datagram for session %s: %v", f.SessionID, err)
		p.drop(f.SessionID)
	}
}

// flow returns the socket for a session id, dialing a fresh one when needed.
func (p *udpProxy) flow(sessionID string) (*udpFlow, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if f, ok := p.sessions[sessionID]; ok {
		f.lastSeen = time.Now()
		return f, nil
	}

	target := p.session.relay.Target()
	addr, err := net.ResolveUDPAddr("udp", target.Addr())
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, err
	}

	f := &udpFlow{conn: conn, lastSeen: time.Now()}
	p.sessions[sessionID] = f

	p.session.wg.Add(1)
	go p.readPump(sessionID, f)
	return f, nil
}

// readPump relays local responses back to the gateway until the flow idles
// out or the session ends.
func (p *udpProxy) readPump(sessionID string, f *udpFlow) {
	defer p.session.wg.Done()
	defer p.drop(sessionID)

	buf := make([]byte, udpDatagramLimit)
	for {
		_ = f.conn.SetReadDeadline(time.Now().Add(udpSessionIdleTimeout))
		n, err := f.conn.Read(buf)
		if err != nil {
			return
		}

		frame := &proto.UDPResponse{
			SessionID: sessionID,
			Data:      base64.StdEncoding.EncodeToString(buf[:n]),
		}
		if err := p.session.enqueue(frame); err != nil {
			return
		}

		p.mu.Lock()
		f.lastSeen = time.Now()
		p.mu.Unlock()
	}
}

func (p *udpProxy) drop(sessionID string) {
	p.mu.Lock()
	f, ok := p.sessions[sessionID]
	if ok {
		delete(p.sessions, sessionID)
	}
	p.mu.Unlock()
	if ok {
		f.conn.Close()
	}
}

func (p *udpProxy) closeAll() {
	p.mu.Lock()
	sessions := p.sessions
	p.sessions = make(map[string]*udpFlow)
	p.mu.Unlock()

	for _, f := range sessions {
		f.conn.Close()
	}
}
