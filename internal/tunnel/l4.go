package tunnel

import (
	"fmt"
	"sync"
	"time"

	"github.com/tunlify/tunlify/internal/db/ent"
	enttunnel "github.com/tunlify/tunlify/internal/db/ent/tunnel"
	"github.com/tunlify/tunlify/internal/logging"
)

// L4Manager owns the public TCP/UDP listeners. A listener exists exactly
// while a control channel for its tunnel is alive: created on first channel
// registration, destroyed when the channel goes away.
type L4Manager struct {
	hub        *Hub
	bindAddr   string
	udpTimeout time.Duration
	logger     *logging.Logger

	mu       sync.Mutex
	bindings map[Key]*l4Binding
}

type l4Binding struct {
	ch  *Channel
	tcp *tcpListener
	udp *udpListener
}

func newL4Manager(hub *Hub, bindAddr string, udpTimeout time.Duration, logger *logging.Logger) *L4Manager {
	return &L4Manager{
		hub:        hub,
		bindAddr:   bindAddr,
		udpTimeout: udpTimeout,
		logger:     logger,
		bindings:   make(map[Key]*l4Binding),
	}
}

// Ensure starts the listener for a tcp/udp tunnel, bound to the given
// channel. An existing binding for the key (from a superseded channel) is
// stopped first.
func (m *L4Manager) Ensure(t *ent.Tunnel, ch *Channel) error {
	if t.RemotePort == nil {
		return fmt.Errorf("tunnel %s/%s has no remote port", t.Subdomain, t.Region)
	}
	key := ch.Key()
	addr := fmt.Sprintf("%s:%d", m.bindAddr, *t.RemotePort)

	m.mu.Lock()
	if prev, ok := m.bindings[key]; ok {
		delete(m.bindings, key)
		m.mu.Unlock()
		prev.stop()
		m.mu.Lock()
	}

	binding := &l4Binding{ch: ch}
	var err error
	switch t.Protocol {
	case enttunnel.ProtocolTCP:
		binding.tcp, err = newTCPListener(key, addr, ch, m.logger)
	case enttunnel.ProtocolUDP:
		binding.udp, err = newUDPListener(key, addr, ch, m.udpTimeout, m.logger)
	default:
		err = fmt.Errorf("protocol %s has no L4 listener", t.Protocol)
	}
	if err != nil {
		m.mu.Unlock()
		return err
	}

	m.bindings[key] = binding
	m.mu.Unlock()

	m.logger.Info("Started %s listener for %s on %s", t.Protocol, key, addr)
	return nil
}

// Release stops the listener bound to the given channel, if it is still the
// owner of its key's binding.
func (m *L4Manager) Release(ch *Channel) {
	key := ch.Key()

	m.mu.Lock()
	binding, ok := m.bindings[key]
	if !ok || binding.ch != ch {
		m.mu.Unlock()
		return
	}
	delete(m.bindings, key)
	m.mu.Unlock()

	binding.stop()
	m.logger.Info("Stopped L4 listener for %s", key)
}

func (b *l4Binding) stop() {
	if b.tcp != nil {
		b.tcp.stop()
	}
	if b.udp != nil {
		b.udp.stop()
	}
}
