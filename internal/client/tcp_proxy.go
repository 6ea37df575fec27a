package client

import (
	"encoding/base64"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

const (
	localDialTimeout   = 10 * time.Second
	localReadBufferLen = 32 * 1024
)

// tcpProxy maintains the local connections backing the gateway's raw
// streams, keyed by connection id.
type tcpProxy struct {
	session *session
	logger  *logging.Logger

	mu      sync.Mutex
	streams map[string]net.Conn
}

func newTCPProxy(s *session, logger *logging.Logger) *tcpProxy {
	return &tcpProxy{
		session: s,
		logger:  logger,
		streams: make(map[string]net.Conn),
	}
}

// open dials the local endpoint for a new stream. Success is acked; failure
// is reported and the stream never exists.
func (p *tcpProxy) open(connectionID string) {
	target := p.session.relay.Target()
	conn, err := net.DialTimeout("tcp", target.Addr(), localDialTimeout)
	if err != nil {
		p.logger.Warn("Failed to dial local endpoint %s for stream %s: %v",
			target.Addr(), connectionID, err)
		_ = p.session.enqueue(&proto.TCPError{ConnectionID: connectionID, Message: err.Error()})
		return
	}

	p.mu.Lock()
	p.streams[connectionID] = conn
	p.mu.Unlock()

	if err := p.session.enqueue(&proto.TCPConnectAck{ConnectionID: connectionID}); err != nil {
		p.closeStream(connectionID)
		return
	}

	p.readPump(connectionID, conn)
}

// readPump relays local reads to the gateway until the local side ends.
// Running data and close on the same goroutine keeps them ordered.
func (p *tcpProxy) readPump(connectionID string, conn net.Conn) {
	buf := make([]byte, localReadBufferLen)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			frame := &proto.TCPData{
				ConnectionID: connectionID,
				Data:         base64.StdEncoding.EncodeToString(buf[:n]),
			}
			if qErr := p.session.enqueue(frame); qErr != nil {
				p.closeStream(connectionID)
				return
			}
		}
		if err != nil {
			if p.remove(connectionID) != nil {
				if errors.Is(err, io.EOF) {
					_ = p.session.enqueue(&proto.TCPClose{ConnectionID: connectionID})
				} else {
					_ = p.session.enqueue(&proto.TCPError{ConnectionID: connectionID, Message: err.Error()})
				}
			}
			conn.Close()
			return
		}
	}
}

// data writes one gateway chunk to the local connection.
func (p *tcpProxy) data(f *proto.TCPData) {
	p.mu.Lock()
	conn, ok := p.streams[f.ConnectionID]
	p.mu.Unlock()
	if !ok {
		return
	}

	payload, err := base64.StdEncoding.DecodeString(f.Data)
	if err != nil {
		p.logger.Warn("Dropping undecodable chunk for stream %s: %v", f.ConnectionID, err)
		return
	}
	if _, err := conn.Write(payload); err != nil {
		p.closeStream(f.ConnectionID)
		_ = p.session.enqueue(&proto.TCPError{ConnectionID: f.ConnectionID, Message: err.Error()})
	}
}

// closeStream tears down a stream without reporting back.
func (p *tcpProxy) closeStream(connectionID string) {
	if conn := p.remove(connectionID); conn != nil {
		conn.Close()
	}
}

// halfClose signals EOF from the public side. The local service sees EOF on
// its reads but can still write its response; the read pump stays alive to
// carry it back.
func (p *tcpProxy) halfClose(connectionID string) {
	p.mu.Lock()
	conn, ok := p.streams[connectionID]
	p.mu.Unlock()
	if !ok {
		return
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
	} else {
		p.closeStream(connectionID)
	}
}

// abort tears down a stream the gateway declared broken.
func (p *tcpProxy) abort(connectionID, message string) {
	p.logger.Warn("Gateway aborted stream %s: %s", connectionID, message)
	p.closeStream(connectionID)
}

// remove detaches a stream from the table. Whoever gets the conn back owns
// the close.
func (p *tcpProxy) remove(connectionID string) net.Conn {
	p.mu.Lock()
	defer p.mu.Unlock()
	conn, ok := p.streams[connectionID]
	if !ok {
		return nil
	}
	delete(p.streams, connectionID)
	return conn
}

func (p *tcpProxy) closeAll() {
	p.mu.Lock()
	streams := p.streams
	p.streams = make(map[string]net.Conn)
	p.mu.Unlock()

	for _, conn := range streams {
		conn.Close()
	}
}
