package tunnel

import (
	"context"
	"encoding/base64"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

const (
	// Bounded send queue per channel. A full queue applies backpressure to
	// TCP ingress and fails HTTP ingress fast.
	sendQueueSize = 256

	// DefaultHeartbeatInterval is how often the server probes the client.
	DefaultHeartbeatInterval = 25 * time.Second

	// staleChannelAge is the no-heartbeat threshold for janitor eviction.
	staleChannelAge = 5 * time.Minute

	writeWait = 10 * time.Second
)

// ChannelInfo is the identity a channel carries for registry and logging.
type ChannelInfo struct {
	TunnelID  int
	Key       Key
	LocalPort int
	PublicURL string
	PeerEmail string
	PeerName  string
}

// Channel is one authenticated control-channel session. All writes to the
// underlying socket go through a single writer goroutine draining a bounded
// queue; every other component only enqueues.
type Channel struct {
	info    ChannelInfo
	conn    *websocket.Conn
	pending *PendingTable
	logger  *logging.Logger

	heartbeatInterval time.Duration

	sendq     chan []byte
	closed    chan struct{}
	closeOnce sync.Once

	openedAt      time.Time
	lastActivity  atomic.Int64 // unix nanos
	requestCount  atomic.Uint64
	responseCount atomic.Uint64

	streams streamTable

	udpMu      sync.RWMutex
	udpHandler func(*proto.UDPResponse)

	// onClose runs exactly once after the channel is torn down.
	onClose func(*Channel)
}

// NewChannel wraps an upgraded, authenticated connection.
func NewChannel(conn *websocket.Conn, info ChannelInfo, pending *PendingTable, logger *logging.Logger) *Channel {
	ch := &Channel{
		info:              info,
		conn:              conn,
		pending:           pending,
		logger:            logger,
		heartbeatInterval: DefaultHeartbeatInterval,
		sendq:             make(chan []byte, sendQueueSize),
		closed:            make(chan struct{}),
		openedAt:          time.Now(),
		streams:           streamTable{m: make(map[string]*tcpStream)},
	}
	ch.touch()
	return ch
}

// SetOnClose installs the teardown hook. Must be called before Run.
func (c *Channel) SetOnClose(fn func(*Channel)) { c.onClose = fn }

// SetHeartbeatInterval overrides the probe interval. Must be called before Run.
func (c *Channel) SetHeartbeatInterval(d time.Duration) { c.heartbeatInterval = d }

// Key returns the tunnel key this channel serves.
func (c *Channel) Key() Key { return c.info.Key }

// Info returns the channel's identity.
func (c *Channel) Info() ChannelInfo { return c.info }

// OpenedAt returns when the channel was established.
func (c *Channel) OpenedAt() time.Time { return c.openedAt }

// LastActivity returns the time of the last heartbeat or frame.
func (c *Channel) LastActivity() time.Time {
	return time.Unix(0, c.lastActivity.Load())
}

// Stale reports whether the channel has seen no activity for the given age.
func (c *Channel) Stale(age time.Duration) bool {
	return time.Since(c.LastActivity()) >= age
}

// Counters returns the number of request frames sent and response frames seen.
func (c *Channel) Counters() (requests, responses uint64) {
	return c.requestCount.Load(), c.responseCount.Load()
}

func (c *Channel) touch() {
	c.lastActivity.Store(time.Now().UnixNano())
}

// Run services the channel until the socket closes or Close is called.
// It blocks; the caller owns the goroutine.
func (c *Channel) Run() {
	go c.writeLoop()
	go c.heartbeatLoop()

	c.readLoop()

	c.teardown()
}

// Enqueue queues a frame without blocking. A saturated queue returns
// ErrQueueFull so HTTP ingress can fail fast.
func (c *Channel) Enqueue(f proto.Frame) error {
	data, err := proto.Encode(f)
	if err != nil {
		return err
	}
	if _, ok := f.(*proto.Request); ok {
		c.requestCount.Add(1)
	}

	select {
	case <-c.closed:
		return ErrChannelClosed
	default:
	}

	select {
	case c.sendq <- data:
		return nil
	case <-c.closed:
		return ErrChannelClosed
	default:
		return ErrQueueFull
	}
}

// EnqueueWait queues a frame, blocking while the queue is full. TCP ingress
// uses it so that inbound reads pause instead of dropping chunks.
func (c *Channel) EnqueueWait(ctx context.Context, f proto.Frame) error {
	data, err := proto.Encode(f)
	if err != nil {
		return err
	}

	select {
	case c.sendq <- data:
		return nil
	case <-c.closed:
		return ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close terminates the channel with a WebSocket close code. Safe to call
// from any goroutine, any number of times.
func (c *Channel) Close(code int, reason string) {
	c.closeOnce.Do(func() {
		close(c.closed)
		msg := websocket.FormatCloseMessage(code, reason)
		deadline := time.Now().Add(writeWait)
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, deadline)
		_ = c.conn.Close()
	})
}

func (c *Channel) writeLoop() {
	for {
		select {
		case data := <-c.sendq:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.Close(websocket.CloseAbnormalClosure, "write failed")
				return
			}
		case <-c.closed:
			return
		}
	}
}

func (c *Channel) heartbeatLoop() {
	ticker := time.NewTicker(c.heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Enqueue(&proto.Heartbeat{}); err != nil {
				return
			}
		case <-c.closed:
			return
		}
	}
}

func (c *Channel) readLoop() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.closed:
			default:
				c.logger.Info("Control channel for %s closed: %v", c.info.Key, err)
			}
			c.Close(websocket.CloseNormalClosure, "")
			return
		}

		frame, err := proto.Decode(data)
		if err != nil {
			c.logger.Warn("Dropping malformed frame on %s: %v", c.info.Key, err)
			continue
		}

		c.touch()
		c.handleFrame(frame)
	}
}

func (c *Channel) handleFrame(frame proto.Frame) {
	switch f := frame.(type) {
	case *proto.Response:
		c.responseCount.Add(1)
		if !c.pending.Complete(f.RequestID, f) {
			c.logger.Warn("Response for unknown request %s on %s", f.RequestID, c.info.Key)
		}

	case *proto.Error:
		c.responseCount.Add(1)
		if !c.pending.Fail(f.RequestID, fmt.Errorf("tunnel client reported: %s", f.Message)) {
			c.logger.Warn("Error for unknown request %s on %s", f.RequestID, c.info.Key)
		}

	case *proto.TCPConnectAck:
		c.streams.ack(f.ConnectionID, nil)

	case *proto.TCPError:
		c.streams.ack(f.ConnectionID, fmt.Errorf("tunnel client reported: %s", f.Message))
		c.streams.abort(f.ConnectionID)

	case *proto.TCPData:
		if err := c.streams.write(f.ConnectionID, f.Data); err != nil {
			c.logger.Debug("tcp_data for stream %s on %s dropped: %v", f.ConnectionID, c.info.Key, err)
		}

	case *proto.TCPClose:
		c.streams.halfClose(f.ConnectionID)

	case *proto.UDPResponse:
		c.udpMu.RLock()
		handler := c.udpHandler
		c.udpMu.RUnlock()
		if handler != nil {
			handler(f)
		}

	case *proto.Heartbeat:
		_ = c.Enqueue(&proto.HeartbeatAck{})

	case *proto.HeartbeatAck:
		// touch already happened

	case *proto.SetLocalAddress:
		c.logger.Info("Client for %s targets local address %s", c.info.Key, f.Address)

	case *proto.Unknown:
		c.logger.Warn("Dropping unknown frame type %q on %s", f.Kind(), c.info.Key)

	default:
		c.logger.Warn("Dropping unexpected %s frame on %s", frame.Kind(), c.info.Key)
	}
}

// setUDPHandler routes udp_response frames to the bound UDP listener.
func (c *Channel) setUDPHandler(fn func(*proto.UDPResponse)) {
	c.udpMu.Lock()
	c.udpHandler = fn
	c.udpMu.Unlock()
}

func (c *Channel) teardown() {
	c.Close(websocket.CloseNormalClosure, "")
	c.streams.closeAll()
	if c.onClose != nil {
		c.onClose(c)
	}
}

// tcpStream is the server-side state of one logical raw stream: the accepted
// ingress socket plus the ack the client owes us. Each direction half-closes
// independently; the socket is released once both are done.
type tcpStream struct {
	id   string
	conn net.Conn
	// Buffered by one; the channel reader never blocks on it.
	ackCh     chan error
	closeOnce sync.Once

	mu           sync.Mutex
	inboundDone  bool // public reader hit EOF
	outboundDone bool // client sent tcp_close
}

func newTCPStream(id string, conn net.Conn) *tcpStream {
	return &tcpStream{
		id:    id,
		conn:  conn,
		ackCh: make(chan error, 1),
	}
}

// markInboundDone reports whether the outbound direction already finished.
func (s *tcpStream) markInboundDone() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inboundDone = true
	return s.outboundDone
}

// markOutboundDone reports whether the inbound direction already finished.
func (s *tcpStream) markOutboundDone() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outboundDone = true
	return s.inboundDone
}

// awaitAck blocks until the client acknowledges or rejects the stream.
func (s *tcpStream) awaitAck(ctx context.Context) error {
	select {
	case err := <-s.ackCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *tcpStream) close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
}

type streamTable struct {
	mu sync.Mutex
	m  map[string]*tcpStream
}

func (t *streamTable) add(s *tcpStream) {
	t.mu.Lock()
	t.m[s.id] = s
	t.mu.Unlock()
}

func (t *streamTable) remove(id string) {
	t.mu.Lock()
	delete(t.m, id)
	t.mu.Unlock()
}

func (t *streamTable) get(id string) *tcpStream {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.m[id]
}

func (t *streamTable) ack(id string, err error) {
	if s := t.get(id); s != nil {
		select {
		case s.ackCh <- err:
		default:
		}
	}
}

// write decodes one tcp_data payload and writes it to the ingress socket.
// Ordering per stream is preserved because all tcp_data frames for a channel
// arrive on the single reader goroutine.
func (t *streamTable) write(id string, data string) error {
	s := t.get(id)
	if s == nil {
		return fmt.Errorf("no stream %s", id)
	}
	payload, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return fmt.Errorf("bad tcp_data payload: %w", err)
	}
	if _, err := s.conn.Write(payload); err != nil {
		s.close()
		return err
	}
	return nil
}

// halfClose signals EOF from the client side of the stream. The public side
// may still be sending; the stream is only released once it finishes too.
func (t *streamTable) halfClose(id string) {
	s := t.get(id)
	if s == nil {
		return
	}
	if tc, ok := s.conn.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
	} else {
		s.close()
	}
	if s.markOutboundDone() {
		t.abort(id)
	}
}

// finishInbound records EOF from the public side and releases the stream if
// the client has already closed its direction.
func (t *streamTable) finishInbound(id string) {
	s := t.get(id)
	if s == nil {
		return
	}
	if s.markInboundDone() {
		t.abort(id)
	}
}

func (t *streamTable) abort(id string) {
	if s := t.get(id); s != nil {
		s.close()
	}
	t.remove(id)
}

func (t *streamTable) closeAll() {
	t.mu.Lock()
	streams := make([]*tcpStream, 0, len(t.m))
	for _, s := range t.m {
		streams = append(streams, s)
	}
	t.m = make(map[string]*tcpStream)
	t.mu.Unlock()

	for _, s := range streams {
		s.close()
	}
}
