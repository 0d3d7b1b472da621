package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/teemow/sheets-mcp/internal/config"
	"github.com/teemow/sheets-mcp/internal/google"
	"github.com/teemow/sheets-mcp/internal/instrumentation"
	"github.com/teemow/sheets-mcp/internal/sheets"
)

// ServerContext holds the shared state for the MCP server
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config.Config
	creds  google.CredentialsProvider
	client *sheets.Client // Lazily constructed, cached for the server lifetime

	metrics *instrumentation.Metrics
	audit   *instrumentation.AuditLogger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context whose credentials are loaded
// from the service account key file named in the configuration.
func NewServerContext(ctx context.Context, cfg *config.Config) (*ServerContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	return NewServerContextWithProvider(ctx, cfg, google.NewKeyFileCredentials(cfg.ServiceAccountFile))
}

// NewServerContextWithProvider creates a new server context with an
// injectable credentials provider.
func NewServerContextWithProvider(ctx context.Context, cfg *config.Config, creds google.CredentialsProvider) (*ServerContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if creds == nil {
		return nil, fmt.Errorf("credentials provider is required")
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
		cfg:    cfg,
		creds:  creds,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the process configuration
func (sc *ServerContext) Config() *config.Config {
	return sc.cfg
}

// SheetsClient returns the Sheets client for the configured spreadsheet.
// The client is created on first use and cached. Construction failures
// (missing or invalid key file) are returned so callers can report them;
// the next call retries.
func (sc *ServerContext) SheetsClient() (*sheets.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.client != nil {
		return sc.client, nil
	}

	client, err := sheets.NewClientWithCredentials(sc.ctx, sc.creds, sc.cfg.SpreadsheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets client: %w", err)
	}

	sc.client = client
	return client, nil
}

// SetSheetsClient sets the cached Sheets client
func (sc *ServerContext) SetSheetsClient(client *sheets.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.client = client
}

// SetMetrics wires the metrics recorder used by tool handlers
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// Metrics returns the metrics recorder, or nil when instrumentation is disabled
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger wires the audit logger used by tool handlers
func (sc *ServerContext) SetAuditLogger(al *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.audit = al
}

// AuditLogger returns the audit logger, or nil when audit logging is disabled
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.audit
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
