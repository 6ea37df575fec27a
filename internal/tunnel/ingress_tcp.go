package tunnel

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

const (
	// How long a new inbound socket waits for the client's tcp_connect_ack.
	tcpConnectAckTimeout = 10 * time.Second

	tcpReadBufferSize = 32 * 1024
)

// tcpListener accepts public sockets for one tcp tunnel and shuttles their
// bytes over the control channel as ordered tcp_data frames.
type tcpListener struct {
	key    Key
	ch     *Channel
	ln     net.Listener
	logger *logging.Logger

	closed    chan struct{}
	closeOnce sync.Once
}

func newTCPListener(key Key, addr string, ch *Channel, logger *logging.Logger) (*tcpListener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	l := &tcpListener{
		key:    key,
		ch:     ch,
		ln:     ln,
		logger: logger,
		closed: make(chan struct{}),
	}
	go l.acceptLoop()
	return l, nil
}

func (l *tcpListener) stop() {
	l.closeOnce.Do(func() {
		close(l.closed)
		_ = l.ln.Close()
	})
}

func (l *tcpListener) acceptLoop() {
	for {
		conn, err := l.ln.Accept()
		if err != nil {
			select {
			case <-l.closed:
			default:
				l.logger.Error("Accept failed on %s listener: %v", l.key, err)
			}
			return
		}
		go l.handleConn(conn)
	}
}

// handleConn drives one logical stream: open it with tcp_connect, wait for
// the ack, then pump inbound bytes until either side is done. Frames for one
// connectionId are enqueued from this single goroutine, so tcp_close always
// trails the data that preceded it.
func (l *tcpListener) handleConn(conn net.Conn) {
	id := uuid.NewString()
	stream := newTCPStream(id, conn)
	l.ch.streams.add(stream)

	ctx := context.Background()
	if err := l.ch.EnqueueWait(ctx, &proto.TCPConnect{ConnectionID: id}); err != nil {
		l.logger.Warn("Failed to open stream %s for %s: %v", id, l.key, err)
		l.ch.streams.abort(id)
		return
	}

	ackCtx, cancel := context.WithTimeout(ctx, tcpConnectAckTimeout)
	err := stream.awaitAck(ackCtx)
	cancel()
	if err != nil {
		l.logger.Warn("Stream %s for %s rejected: %v", id, l.key, err)
		_ = l.ch.Enqueue(&proto.TCPClose{ConnectionID: id})
		l.ch.streams.abort(id)
		return
	}

	buf := make([]byte, tcpReadBufferSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			frame := &proto.TCPData{
				ConnectionID: id,
				Data:         base64.StdEncoding.EncodeToString(buf[:n]),
			}
			// EnqueueWait blocks while the send queue is saturated, which
			// pauses this read loop: backpressure by construction.
			if err := l.ch.EnqueueWait(ctx, frame); err != nil {
				l.ch.streams.abort(id)
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				l.logger.Debug("Stream %s read ended: %v", id, err)
			}
			_ = l.ch.EnqueueWait(ctx, &proto.TCPClose{ConnectionID: id})
			if errors.Is(err, io.EOF) {
				// Half-close: the socket stays open so the client's remaining
				// bytes can still flow back.
				l.ch.streams.finishInbound(id)
			} else {
				l.ch.streams.abort(id)
			}
			return
		}
	}
}
