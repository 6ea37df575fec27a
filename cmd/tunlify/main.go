package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/tunlify/tunlify/internal/client"
	"github.com/tunlify/tunlify/internal/logging"
	"github.com/tunlify/tunlify/internal/version"
)

var logger *logging.Logger

func initLogger() {
	logFile := "./tunlify.log"
	if homeDir, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(homeDir, ".tunlify")
		if err := os.MkdirAll(dir, 0700); err == nil {
			logFile = filepath.Join(dir, "client.log")
		}
	}

	logConfig := &logging.Config{
		Level:      os.Getenv("LOG_LEVEL"),
		File:       logFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger = logging.GetGlobalLogger()
}

var rootCmd = &cobra.Command{
	Use:   "tunlify",
	Short: "Tunlify CLI - reverse tunnel client",
	Long: `Tunlify CLI is a reverse tunnel client that exposes local services
through Tunlify's gateway infrastructure.`,
}

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to Tunlify and establish a tunnel",
	Long: `Connect to Tunlify and relay traffic from your public address to a
local endpoint.

Example:
  tunlify connect                              # Use port configured on server
  tunlify connect --local-target 3000          # Forward to 127.0.0.1:3000
  tunlify connect --local-target 192.168.1.5:8080`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := client.LoadConfig()
		if err != nil {
			logger.Error("Error loading config: %v", err)
			os.Exit(1)
		}
		applyGatewayFlags(cmd, cfg)

		if cfg.Token == "" {
			logger.Error("No connection token configured. Run 'tunlify login --token <token>' first.")
			os.Exit(1)
		}

		localTarget, _ := cmd.Flags().GetString("local-target")
		if localTarget == "" {
			localTarget = cfg.Target
		}

		// Verify the token up front for a readable failure, and to learn the
		// tunnel's protocol and advisory local port.
		info, err := client.VerifyToken(cfg)
		if err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}

		var target client.Target
		if localTarget != "" {
			target, err = client.ParseTarget(localTarget)
			if err != nil {
				logger.Error("Invalid --local-target: %v", err)
				os.Exit(1)
			}
		} else {
			target = client.Target{Scheme: "http", Host: "127.0.0.1", Port: info.LocalPort}
		}

		if err := client.Preflight(target, info.Protocol); err != nil {
			logger.Warn("%v", err)
		}

		// Remember the target for the next run.
		cfg.Target = target.Addr()
		if err := client.SaveConfig(cfg); err != nil {
			logger.Warn("Failed to save config: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.Info("Received signal %v, shutting down...", sig)
			cancel()
		}()

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Connecting %s -> %s ...", info.TunnelURL, target.Addr())
		s.Start()

		relay := client.NewRelay(cfg, target, logger)
		go func() {
			// Stop the spinner once the first session is up.
			for !relay.Connected() {
				select {
				case <-ctx.Done():
					return
				case <-time.After(100 * time.Millisecond):
				}
			}
			s.Stop()
			logger.Info("Tunnel is running. Press Ctrl+C to stop.")
		}()

		err = relay.Run(ctx)
		s.Stop()
		if err != nil && ctx.Err() == nil {
			logger.Error("Tunnel failed: %v", err)
			os.Exit(1)
		}
		logger.Info("Tunnel closed")
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a connection token",
	Long: `Validate a connection token against the gateway and store it in
~/.tunlify/config.json for later 'tunlify connect' runs.

Example:
  tunlify login --token your-connection-token`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := client.LoadConfig()
		if err != nil {
			logger.Error("Error loading config: %v", err)
			os.Exit(1)
		}
		applyGatewayFlags(cmd, cfg)

		token, _ := cmd.Flags().GetString("token")
		if token != "" {
			cfg.Token = token
		}
		if cfg.Token == "" {
			logger.Error("No token given. Use --token.")
			os.Exit(1)
		}

		info, err := client.VerifyToken(cfg)
		if err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}

		if err := client.SaveConfig(cfg); err != nil {
			logger.Error("Failed to save config: %v", err)
			os.Exit(1)
		}

		logger.Info("Logged in. Token is bound to %s (%s, local port %d)",
			info.TunnelURL, info.Protocol, info.LocalPort)
		logger.Info("Run 'tunlify connect' to establish the tunnel")
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured tunnel and its catalog state",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := client.LoadConfig()
		if err != nil {
			logger.Error("Error loading config: %v", err)
			os.Exit(1)
		}
		applyGatewayFlags(cmd, cfg)

		fmt.Printf("Gateway:      %s\n", cfg.APIBaseURL())
		if cfg.Target != "" {
			fmt.Printf("Local target: %s\n", cfg.Target)
		}
		if cfg.Token == "" {
			fmt.Println("Token:        not configured (run 'tunlify login')")
			return
		}

		info, err := client.VerifyToken(cfg)
		if err != nil {
			fmt.Printf("Token:        invalid (%v)\n", err)
			os.Exit(1)
		}
		fmt.Printf("Tunnel:       #%d %s.%s (%s)\n", info.TunnelID, info.Subdomain, info.Region, info.Protocol)
		fmt.Printf("Public URL:   %s\n", info.TunnelURL)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetBuildInfo().String())
	},
}

func applyGatewayFlags(cmd *cobra.Command, cfg *client.Config) {
	if host, _ := cmd.Flags().GetString("gateway-host"); host != "" {
		cfg.Gateway.Host = host
	}
	if port, _ := cmd.Flags().GetInt("gateway-port"); port != 0 {
		cfg.Gateway.Port = port
	}
	if insecure, _ := cmd.Flags().GetBool("insecure"); insecure {
		cfg.Security.InsecureSkipVerify = true
	}
	if plaintext, _ := cmd.Flags().GetBool("plaintext"); plaintext {
		cfg.Gateway.TLS = false
	}
}

func addGatewayFlags(cmd *cobra.Command) {
	cmd.Flags().String("gateway-host", "", "Gateway host to connect to")
	cmd.Flags().Int("gateway-port", 0, "Gateway port to connect to")
	cmd.Flags().Bool("insecure", false, "Skip TLS certificate verification")
	cmd.Flags().Bool("plaintext", false, "Use ws/http instead of wss/https")
}

func main() {
	initLogger()
	defer logger.Close()

	connectCmd.Flags().String("local-target", "", "Local endpoint (port, :port, host:port, or URL)")
	loginCmd.Flags().String("token", "", "Connection token issued at tunnel creation")
	addGatewayFlags(connectCmd)
	addGatewayFlags(loginCmd)
	addGatewayFlags(statusCmd)

	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
