package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tunlify/tunlify/internal/api/handlers"
	"github.com/tunlify/tunlify/internal/api/middleware"
	"github.com/tunlify/tunlify/internal/api/validation"
	"github.com/tunlify/tunlify/internal/config"
	"github.com/tunlify/tunlify/internal/db/ent"
	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/repository"
	"github.com/tunlify/tunlify/internal/service"
	"github.com/tunlify/tunlify/internal/tunnel"
)

// Server wires the management API and the tunnel data plane onto one
// gin engine.
type Server struct {
	router  *gin.Engine
	httpSrv *http.Server
	cfg     *config.Config
	client  *ent.Client
	hub     *tunnel.Hub
	janitor *tunnel.Janitor
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, client *ent.Client, hub *tunnel.Hub) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's own logger is replaced by our middleware.
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.Use(gin.Recovery())

	return &Server{
		router: router,
		cfg:    cfg,
		client: client,
		hub:    hub,
	}
}

// Start registers all routes and begins serving. It blocks until the listener
// fails or Shutdown is called.
func (s *Server) Start() error {
	tunnelRepo := repository.NewTunnelRepository(s.client)
	userRepo := repository.NewUserRepository(s.client)

	allocator := service.NewPortAllocator(tunnelRepo)
	tunnelService := service.NewTunnelService(tunnelRepo, allocator)

	authMiddleware := middleware.NewAuthMiddleware(userRepo)
	validator := validation.New()

	tunnelHandler := handlers.NewTunnelHandler(tunnelService, s.hub, validator, s.cfg.BaseDomain)
	healthHandler := handlers.NewHealthHandler(s.client, s.hub, s.cfg.Region)

	s.router.Use(middleware.RequestLogger())

	// Health check endpoint - no auth required
	s.router.GET("/health", healthHandler.Check)

	// Control channel endpoint, authenticated by connection token.
	s.router.GET("/ws/tunnel", s.hub.HandleControl)

	// One bucket for the whole management surface. Ingress and the control
	// channel are never rate limited.
	rateLimit := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   50,
		Burst: 100,
	})

	// Token exchange used by clients before dialing the control channel.
	public := s.router.Group("/api/v1")
	public.Use(rateLimit)
	{
		public.POST("/tunnels/auth", tunnelHandler.Auth)
		public.GET("/tunnels/presets", tunnelHandler.Presets)
	}

	// Tunnel management, authenticated by API key.
	protected := s.router.Group("/api/v1")
	protected.Use(rateLimit, authMiddleware.RequireAuth())
	{
		protected.GET("/tunnels", tunnelHandler.List)
		protected.POST("/tunnels", tunnelHandler.Create)
		protected.DELETE("/tunnels/:id", tunnelHandler.Delete)
		protected.PATCH("/tunnels/:id/status", tunnelHandler.UpdateStatus)
	}

	// Everything else is ingress traffic forwarded by the edge proxy.
	s.router.NoRoute(s.hub.HandleHTTPIngress)

	s.janitor = tunnel.NewJanitor(s.hub, logging.GetGlobalLogger())
	s.janitor.Start()

	s.httpSrv = &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.router,
	}

	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the janitor and drains the HTTP listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.janitor != nil {
		s.janitor.Stop()
	}
	if s.httpSrv == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}
