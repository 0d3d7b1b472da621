package server

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/oauth2"

	"github.com/teemow/sheets-mcp/internal/config"
	"github.com/teemow/sheets-mcp/internal/sheets"
)

// staticCredentials is a test credentials provider backed by a fixed token.
type staticCredentials struct{}

func (staticCredentials) TokenSource(_ context.Context, _ ...string) (oauth2.TokenSource, error) {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}), nil
}

// failingCredentials is a test credentials provider that always errors.
type failingCredentials struct {
	err error
}

func (c failingCredentials) TokenSource(_ context.Context, _ ...string) (oauth2.TokenSource, error) {
	return nil, c.err
}

func testConfig() *config.Config {
	return &config.Config{
		SpreadsheetID:      "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		ServiceAccountFile: "/nonexistent/key.json",
	}
}

func TestNewServerContext_RequiresConfig(t *testing.T) {
	_, err := NewServerContext(context.Background(), nil)
	if err == nil {
		t.Fatal("NewServerContext() with nil config expected error, got nil")
	}
}

func TestNewServerContextWithProvider_RequiresProvider(t *testing.T) {
	_, err := NewServerContextWithProvider(context.Background(), testConfig(), nil)
	if err == nil {
		t.Fatal("NewServerContextWithProvider() with nil provider expected error, got nil")
	}
}

func TestServerContext_Config(t *testing.T) {
	cfg := testConfig()
	sc, err := NewServerContextWithProvider(context.Background(), cfg, staticCredentials{})
	if err != nil {
		t.Fatalf("NewServerContextWithProvider() error = %v", err)
	}

	if sc.Config() != cfg {
		t.Error("Config() did not return the configured config")
	}
}

func TestServerContext_SheetsClientCached(t *testing.T) {
	sc, err := NewServerContextWithProvider(context.Background(), testConfig(), staticCredentials{})
	if err != nil {
		t.Fatalf("NewServerContextWithProvider() error = %v", err)
	}

	first, err := sc.SheetsClient()
	if err != nil {
		t.Fatalf("SheetsClient() error = %v", err)
	}
	if first == nil {
		t.Fatal("SheetsClient() returned nil client")
	}

	second, err := sc.SheetsClient()
	if err != nil {
		t.Fatalf("SheetsClient() second call error = %v", err)
	}
	if first != second {
		t.Error("SheetsClient() did not return the cached client")
	}
}

func TestServerContext_SheetsClientCredentialError(t *testing.T) {
	provider := failingCredentials{err: sheets.ErrAuth}
	sc, err := NewServerContextWithProvider(context.Background(), testConfig(), provider)
	if err != nil {
		t.Fatalf("NewServerContextWithProvider() error = %v", err)
	}

	_, err = sc.SheetsClient()
	if err == nil {
		t.Fatal("SheetsClient() with failing credentials expected error, got nil")
	}
	if !errors.Is(err, sheets.ErrAuth) {
		t.Errorf("SheetsClient() error = %v, want ErrAuth", err)
	}
}

func TestServerContext_SetSheetsClient(t *testing.T) {
	sc, err := NewServerContextWithProvider(context.Background(), testConfig(), failingCredentials{err: errors.New("should not be called")})
	if err != nil {
		t.Fatalf("NewServerContextWithProvider() error = %v", err)
	}

	injected := &sheets.Client{}
	sc.SetSheetsClient(injected)

	got, err := sc.SheetsClient()
	if err != nil {
		t.Fatalf("SheetsClient() error = %v", err)
	}
	if got != injected {
		t.Error("SheetsClient() did not return the injected client")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc, err := NewServerContextWithProvider(context.Background(), testConfig(), staticCredentials{})
	if err != nil {
		t.Fatalf("NewServerContextWithProvider() error = %v", err)
	}

	if sc.IsShutdown() {
		t.Error("IsShutdown() = true before Shutdown()")
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}

	if !sc.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown()")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("Context() not canceled after Shutdown()")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}

func TestServerContext_MetricsAndAuditLogger(t *testing.T) {
	sc, err := NewServerContextWithProvider(context.Background(), testConfig(), staticCredentials{})
	if err != nil {
		t.Fatalf("NewServerContextWithProvider() error = %v", err)
	}

	if sc.Metrics() != nil {
		t.Error("Metrics() expected nil before SetMetrics")
	}
	if sc.AuditLogger() != nil {
		t.Error("AuditLogger() expected nil before SetAuditLogger")
	}

	provider := createTestProvider(t)
	sc.SetMetrics(provider.Metrics())
	if sc.Metrics() == nil {
		t.Error("Metrics() returned nil after SetMetrics")
	}
}
