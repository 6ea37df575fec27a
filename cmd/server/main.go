package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tunlify/tunlify/internal/config"
	"github.com/tunlify/tunlify/internal/db"
	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/repository"
	"github.com/tunlify/tunlify/internal/server"
	"github.com/tunlify/tunlify/internal/tunnel"
	"github.com/tunlify/tunlify/internal/version"
)

func main() {
	// Set development environment variables
	if os.Getenv("ENV") != "production" {
		os.Setenv("ENV", "development")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logConfig := &logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting gateway %s in %s mode (region=%s, domain=%s)",
		version.Version, cfg.Environment, cfg.Region, cfg.BaseDomain)

	entClient, err := db.Initialize()
	if err != nil {
		logger.Error("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	defer entClient.Close()

	tunnelRepo := repository.NewTunnelRepository(entClient)
	hub := tunnel.NewHub(tunnel.HubConfig{
		BaseDomain:        cfg.BaseDomain,
		L4BindAddress:     cfg.L4BindAddress,
		RequestTimeout:    time.Duration(cfg.RequestTimeout) * time.Second,
		HeartbeatInterval: time.Duration(cfg.HeartbeatInterval) * time.Second,
		UDPSessionTimeout: time.Duration(cfg.UDPSessionTimeout) * time.Second,
	}, tunnelRepo, logger)

	srv := server.NewServer(cfg, entClient, hub)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening on :%s", cfg.Port)
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("Received %s, shutting down", sig)
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed: %v", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error: %v", err)
		os.Exit(1)
	}
	logger.Info("Shutdown complete")
}
