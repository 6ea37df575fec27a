package tunnel

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/tunlify/tunlify/internal/db/ent"
	enttunnel "github.com/tunlify/tunlify/internal/db/ent/tunnel"
	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/repository"
	"github.com/tunlify/tunlify/internal/tunnel/proto"
)

// HubConfig carries the tunable parts of the gateway data plane.
type HubConfig struct {
	BaseDomain        string
	L4BindAddress     string
	RequestTimeout    time.Duration
	HeartbeatInterval time.Duration
	UDPSessionTimeout time.Duration
}

// Hub owns the gateway data plane: the connection registry, the
// pending-request table, the L4 listeners, and the control-channel endpoint.
// Everything is injected once at startup; there are no package globals.
type Hub struct {
	cfg      HubConfig
	upgrader websocket.Upgrader
	tunnels  repository.TunnelRepository
	registry *Registry
	pending  *PendingTable
	l4       *L4Manager
	logger   *logging.Logger
}

// NewHub wires the data plane together.
func NewHub(cfg HubConfig, tunnels repository.TunnelRepository, logger *logging.Logger) *Hub {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if cfg.UDPSessionTimeout <= 0 {
		cfg.UDPSessionTimeout = defaultUDPSessionTimeout
	}

	h := &Hub{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// The edge proxy is the only caller of this endpoint.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		tunnels:  tunnels,
		registry: NewRegistry(),
		pending:  NewPendingTable(),
		logger:   logger,
	}
	h.l4 = newL4Manager(h, cfg.L4BindAddress, cfg.UDPSessionTimeout, logger)
	return h
}

// Registry exposes the connection registry (health endpoint, tests).
func (h *Hub) Registry() *Registry { return h.registry }

// Pending exposes the pending-request table (janitor, tests).
func (h *Hub) Pending() *PendingTable { return h.pending }

// PublicHost returns the public hostname for a tunnel key.
func (h *Hub) PublicHost(key Key) string {
	return fmt.Sprintf("%s.%s.%s", key.Subdomain, key.Region, h.cfg.BaseDomain)
}

// HandleControl serves GET /ws/tunnel?token=… . A control channel is
// authenticated exactly once, on open; bad tokens get a policy-violation
// close and nothing else.
func (h *Hub) HandleControl(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade control connection: %v", err)
		return
	}

	token := c.Query("token")
	if token == "" {
		h.rejectControl(conn, "missing token")
		return
	}

	t, err := h.tunnels.GetByToken(c.Request.Context(), token)
	if err != nil {
		h.rejectControl(conn, "invalid token")
		return
	}

	key := Key{Subdomain: t.Subdomain, Region: t.Region}
	info := ChannelInfo{
		TunnelID:  t.ID,
		Key:       key,
		LocalPort: t.LocalPort,
		PublicURL: "https://" + h.PublicHost(key),
	}
	if owner, err := t.Edges.OwnerOrErr(); err == nil {
		info.PeerEmail = owner.Email
		info.PeerName = owner.Name
	}

	ch := NewChannel(conn, info, h.pending, h.logger)
	ch.SetHeartbeatInterval(h.cfg.HeartbeatInterval)
	ch.SetOnClose(h.onChannelClosed)

	// Last-writer-wins: a newer client with the same token displaces the
	// older channel.
	if prev := h.registry.Register(ch); prev != nil {
		h.logger.Warn("Duplicate control channel for %s; closing previous", key)
		prev.Close(websocket.ClosePolicyViolation, "superseded by newer connection")
	}

	now := time.Now()
	if err := h.tunnels.UpdateStatus(c.Request.Context(), uint32(t.ID), enttunnel.StatusActive, true, &now); err != nil {
		h.logger.Error("Failed to mark tunnel %s active: %v", key, err)
	}

	if err := ch.Enqueue(&proto.Connected{
		TunnelID:  t.ID,
		Subdomain: t.Subdomain,
		Region:    t.Region,
		PublicURL: info.PublicURL,
		LocalPort: t.LocalPort,
	}); err != nil {
		h.logger.Error("Failed to queue connected frame for %s: %v", key, err)
	}

	// TCP/UDP tunnels own a public listener for as long as the channel lives.
	if t.Protocol != enttunnel.ProtocolHTTP && t.RemotePort != nil {
		if err := h.l4.Ensure(t, ch); err != nil {
			h.logger.Error("Failed to start %s listener for %s on port %d: %v",
				t.Protocol, key, *t.RemotePort, err)
		}
	}

	h.logger.Info("Control channel established for %s (user=%s)", key, info.PeerEmail)

	ch.Run()
}

func (h *Hub) rejectControl(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	_ = conn.Close()
}

// onChannelClosed runs once per channel, after its socket is gone. It removes
// the registry entry (compare-and-delete), fails the channel's pending
// requests, tears down its listeners, and flips the catalog row back.
func (h *Hub) onChannelClosed(ch *Channel) {
	key := ch.Key()

	removed := h.registry.Deregister(ch)
	cancelled := h.pending.CancelByKey(key, ErrTunnelGone)
	h.l4.Release(ch)

	// Only the channel that still owned the registry entry demotes the
	// catalog row; a superseded channel must not clobber its successor.
	if removed {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.tunnels.UpdateStatus(ctx, uint32(ch.Info().TunnelID), enttunnel.StatusInactive, false, nil); err != nil {
			h.logger.Error("Failed to mark tunnel %s inactive: %v", key, err)
		}
	}

	requests, responses := ch.Counters()
	h.logger.Info("Control channel for %s closed (registered=%v, cancelled=%d, requests=%d, responses=%d)",
		key, removed, cancelled, requests, responses)
}

// CloseChannel closes the active channel for a key, if any. Used when a
// tunnel is deleted while its client is connected.
func (h *Hub) CloseChannel(key Key, reason string) bool {
	ch, ok := h.registry.Lookup(key)
	if !ok {
		return false
	}
	ch.Close(websocket.CloseNormalClosure, reason)
	return true
}

// CloseChannelForTunnel closes the channel serving the given tunnel row.
func (h *Hub) CloseChannelForTunnel(t *ent.Tunnel, reason string) bool {
	return h.CloseChannel(Key{Subdomain: t.Subdomain, Region: t.Region}, reason)
}
