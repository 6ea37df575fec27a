package tunnel

import (
	"encoding/base64"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

const (
	// defaultUDPSessionTimeout is how long a session keeps routing replies
	// back to its remote address after the last datagram.
	defaultUDPSessionTimeout = 60 * time.Second

	udpReadBufferSize = 64 * 1024
)

// udpSession maps a remote (ip, port) to a session id so return datagrams
// can find their way back.
type udpSession struct {
	id       string
	remote   *net.UDPAddr
	lastSeen time.Time
}

// udpListener owns the single datagram socket for one udp tunnel.
type udpListener struct {
	key     Key
	ch      *Channel
	conn    *net.UDPConn
	timeout time.Duration
	logger  *logging.Logger

	mu     sync.Mutex
	byID   map[string]*udpSession
	byAddr map[string]*udpSession

	closed    chan struct{}
	closeOnce sync.Once
}

func newUDPListener(key Key, addr string, ch *Channel, timeout time.Duration, logger *logging.Logger) (*udpListener, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, err
	}

	l := &udpListener{
		key:     key,
		ch:      ch,
		conn:    conn,
		timeout: timeout,
		logger:  logger,
		byID:    make(map[string]*udpSession),
		byAddr:  make(map[string]*udpSession),
		closed:  make(chan struct{}),
	}

	ch.setUDPHandler(l.handleResponse)
	go l.readLoop()
	go l.sweepLoop()
	return l, nil
}

func (l *udpListener) stop() {
	l.closeOnce.Do(func() {
		close(l.closed)
		_ = l.conn.Close()
	})
}

func (l *udpListener) readLoop() {
	buf := make([]byte, udpReadBufferSize)
	for {
		n, remote, err := l.conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-l.closed:
			default:
				l.logger.Error("UDP read failed on %s listener: %v", l.key, err)
			}
			return
		}

		sess := l.session(remote)
		frame := &proto.UDPData{
			SessionID:  sess.id,
			Data:       base64.StdEncoding.EncodeToString(buf[:n]),
			SourceAddr: remote.String(),
		}
		// Datagrams are droppable; a saturated channel loses them rather
		// than blocking the socket.
		if err := l.ch.Enqueue(frame); err != nil {
			l.logger.Debug("Dropped datagram for %s: %v", l.key, err)
		}
	}
}

// session returns the session for a remote address, creating one if needed
// and refreshing its activity window.
func (l *udpListener) session(remote *net.UDPAddr) *udpSession {
	addrKey := remote.String()

	l.mu.Lock()
	defer l.mu.Unlock()

	sess, ok := l.byAddr[addrKey]
	if !ok {
		sess = &udpSession{id: uuid.NewString(), remote: remote}
		l.byAddr[addrKey] = sess
		l.byID[sess.id] = sess
	}
	sess.lastSeen = time.Now()
	return sess
}

// handleResponse routes one udp_response frame back to its remote address.
func (l *udpListener) handleResponse(f *proto.UDPResponse) {
	l.mu.Lock()
	sess, ok := l.byID[f.SessionID]
	l.mu.Unlock()
	if !ok {
		l.logger.Debug("udp_response for unknown session %s on %s", f.SessionID, l.key)
		return
	}

	payload, err := base64.StdEncoding.DecodeString(f.Data)
	if err != nil {
		l.logger.Warn("Bad udp_response payload on %s: %v", l.key, err)
		return
	}
	if _, err := l.conn.WriteToUDP(payload, sess.remote); err != nil {
		l.logger.Debug("Failed to write return datagram for %s: %v", l.key, err)
	}
}

func (l *udpListener) sweepLoop() {
	ticker := time.NewTicker(l.timeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-l.closed:
			return
		}
	}
}

func (l *udpListener) sweep() {
	cutoff := time.Now().Add(-l.timeout)

	l.mu.Lock()
	defer l.mu.Unlock()
	for id, sess := range l.byID {
		if sess.lastSeen.Before(cutoff) {
			delete(l.byID, id)
			delete(l.byAddr, sess.remote.String())
		}
	}
}
