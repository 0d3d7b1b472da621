package server

import (
	"context"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/sheets-mcp/internal/instrumentation"
)

const (
	// sessionIDHeader is the session header of the MCP streamable HTTP transport.
	sessionIDHeader = "Mcp-Session-Id"

	// DefaultHTTPReadHeaderTimeout bounds time spent reading request headers.
	DefaultHTTPReadHeaderTimeout = 10 * time.Second

	// DefaultHTTPIdleTimeout bounds idle keep-alive connections.
	DefaultHTTPIdleTimeout = 120 * time.Second
)

// HTTPServer serves the MCP server over the streamable HTTP transport,
// alongside health endpoints and per-request metrics.
type HTTPServer struct {
	streamable *mcpserver.StreamableHTTPServer
	health     *HealthChecker
	sessions   *SessionTracker
	metrics    *instrumentation.Metrics
	httpServer *http.Server
}

// NewHTTPServer creates an HTTP server for the given MCP server.
// Metrics are taken from the server context; health endpoints report its
// shutdown state.
func NewHTTPServer(mcpSrv *mcpserver.MCPServer, sc *ServerContext) *HTTPServer {
	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithEndpointPath("/mcp"),
	)

	sessions := NewSessionTracker()
	var metrics *instrumentation.Metrics
	if sc != nil {
		metrics = sc.Metrics()
	}
	sessions.SetMetrics(metrics)

	return &HTTPServer{
		streamable: streamable,
		health:     NewHealthChecker(sc),
		sessions:   sessions,
		metrics:    metrics,
	}
}

// Handler returns the full HTTP handler: the /mcp endpoint wrapped with
// instrumentation, plus the health endpoints.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	s.health.RegisterHealthEndpoints(mux)
	mux.Handle("/mcp", s.instrument(s.streamable))
	return mux
}

// SetReady sets the readiness state reported by /readyz.
func (s *HTTPServer) SetReady(ready bool) {
	s.health.SetReady(ready)
}

// Sessions returns the session tracker.
func (s *HTTPServer) Sessions() *SessionTracker {
	return s.sessions
}

// Start starts the HTTP server in a blocking manner.
// Call this in a goroutine if you need non-blocking operation.
func (s *HTTPServer) Start(addr string) error {
	// No WriteTimeout: streamable responses can outlive any fixed limit.
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: DefaultHTTPReadHeaderTimeout,
		IdleTimeout:       DefaultHTTPIdleTimeout,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server and stops session cleanup.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.sessions.Stop()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// instrument wraps a handler with session tracking and HTTP request metrics.
func (s *HTTPServer) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		s.sessions.Touch(r.Context(), r.Header.Get(sessionIDHeader))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if s.metrics != nil {
			s.metrics.RecordHTTPRequest(r.Context(), r.Method, r.URL.Path, rec.status, time.Since(start))
		}
	})
}

// statusRecorder captures the response status code for metrics.
// Flush is forwarded so streaming responses keep working behind the wrapper.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
