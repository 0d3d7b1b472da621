package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/sheets-mcp/internal/config"
	"github.com/teemow/sheets-mcp/internal/instrumentation"
	"github.com/teemow/sheets-mcp/internal/logging"
	"github.com/teemow/sheets-mcp/internal/resources"
	"github.com/teemow/sheets-mcp/internal/server"
	"github.com/teemow/sheets-mcp/internal/tools/sheets_tools"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server (default: true)
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode          bool
		transport          string
		httpAddr           string
		yolo               bool
		spreadsheetID      string
		serviceAccountFile string
		// Metrics server configuration
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server exposing the configured
Google Spreadsheet to AI assistants.

Supports multiple transport types:
  - stdio: Standard input/output (default)
  - streamable-http: Streamable HTTP transport

Safety Mode:
  By default, the server operates in read-only mode, registering only the
  tools that read or export data. Use --yolo to enable write operations
  (creating sheets, appending rows, deleting rows and columns, etc.)

Configuration:
  Spreadsheet (required):
    --spreadsheet-id OR SPREADSHEET_ID env var

  Credentials (required):
    --service-account-file OR SERVICE_ACCOUNT_FILE env var
    Path to a service account key JSON file. Share the spreadsheet with
    the service account's email address, otherwise every call fails.

  A .env file in the working directory is loaded if present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}

			return runServe(transport, debugMode, httpAddr, yolo, spreadsheetID, serviceAccountFile, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type: stdio or streamable-http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (for streamable-http transport)")
	cmd.Flags().BoolVar(&yolo, "yolo", false, "Enable write operations (sheet creation, row deletion, etc.). Default is read-only mode.")
	cmd.Flags().StringVar(&spreadsheetID, "spreadsheet-id", "", "ID of the Google Spreadsheet to operate on. Can also use SPREADSHEET_ID env var.")
	cmd.Flags().StringVar(&serviceAccountFile, "service-account-file", "", "Path to the service account key JSON file. Can also use SERVICE_ACCOUNT_FILE env var.")

	// Metrics server flags
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(transport string, debugMode bool, httpAddr string, yolo bool, spreadsheetID, serviceAccountFile string, metricsConfig MetricsConfig) error {
	// Logs go to stderr, keeping stdout free for the stdio transport
	logging.Setup(debugMode)

	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	config.LoadEnv()
	cfg, err := config.Load(spreadsheetID, serviceAccountFile)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled {
		if os.Getenv("METRICS_ENABLED") == "true" {
			metricsConfig.Enabled = true
		}
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == server.DefaultMetricsAddr {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			if transport != "stdio" {
				log.Printf("Error during instrumentation shutdown: %v", err)
			}
		}
	}()

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if transport != "stdio" && metricsConfig.Enabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		// Wait for metrics server to be ready or fail
		select {
		case <-metricsReady:
			log.Printf("Metrics server started on %s", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	// Create server context; the Sheets client is constructed on first use
	serverContext, err := server.NewServerContext(shutdownCtx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}

	// Set metrics and audit logger on server context for tool instrumentation
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
		serverContext.SetAuditLogger(instrumentation.NewAuditLoggerWithConfig(nil, instrConfig.AuditLogging))
	}
	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}
		if err := serverContext.Shutdown(); err != nil {
			if transport != "stdio" {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("sheets-mcp", version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false), // Subscribe and listChanged
	)

	// readOnly is the inverse of yolo
	readOnly := !yolo

	// Log the mode for visibility (only for non-stdio transports)
	if transport != "stdio" {
		if readOnly {
			log.Println("Starting server in READ-ONLY mode (use --yolo to enable write operations)")
		} else {
			log.Println("Starting server with WRITE operations enabled (--yolo flag is set)")
		}
	}

	// Register all tools and resources
	if err := registerAll(mcpSrv, serverContext, readOnly); err != nil {
		return err
	}

	// Start the appropriate server based on transport type
	switch transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		return runStreamableHTTPServer(mcpSrv, serverContext, httpAddr, shutdownCtx, readOnly, metricsConfig)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

// registerAll registers all MCP tools and resources
func registerAll(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext, readOnly bool) error {
	type registration struct {
		name     string
		register func() error
	}

	registrations := []registration{
		{
			name: "Sheets tools",
			register: func() error {
				return sheets_tools.RegisterSheetsTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Spreadsheet resources",
			register: func() error {
				return resources.RegisterSpreadsheetResources(mcpSrv, ctx)
			},
		},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}

	return nil
}

func runStreamableHTTPServer(mcpSrv *mcpserver.MCPServer, serverContext *server.ServerContext, addr string, ctx context.Context, readOnly bool, metricsConfig MetricsConfig) error {
	httpServer := server.NewHTTPServer(mcpSrv, serverContext)

	fmt.Printf("Starting sheets-mcp MCP server with streamable-http transport on %s\n", addr)
	fmt.Printf("  HTTP endpoint: /mcp\n")
	fmt.Printf("  Health endpoints: /healthz, /readyz\n")
	if metricsConfig.Enabled {
		fmt.Printf("  Metrics endpoint: %s/metrics\n", metricsConfig.Addr)
	}
	if readOnly {
		fmt.Println("  Mode: read-only (use --yolo to enable write operations)")
	} else {
		fmt.Println("  Mode: read-write")
	}
	fmt.Printf("  Spreadsheet: %s\n", serverContext.Config().SpreadsheetID)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	httpServer.SetReady(true)

	select {
	case <-ctx.Done():
		fmt.Println("Shutdown signal received, stopping HTTP server...")
		httpServer.SetReady(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down HTTP server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("HTTP server stopped with error: %w", err)
		}
		fmt.Println("HTTP server stopped normally")
	}

	fmt.Println("HTTP server gracefully stopped")
	return nil
}
