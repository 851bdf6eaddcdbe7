package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopeasy/storefront/internal/server/config"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()

	staticDir := t.TempDir()
	index := `<!doctype html><html><body id="root">shopeasy</body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte(index), 0o600))

	app, err := NewApp(&config.Config{Port: "0", StaticDir: staticDir})
	require.NoError(t, err)
	return app, staticDir
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"frontend"}`, rec.Body.String())
}

func TestServesIndexAtRoot(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shopeasy")
}

func TestServesStaticAsset(t *testing.T) {
	app, staticDir := newTestApp(t)
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "app.js"), []byte(`console.log("hi")`), 0o600))

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")
}

func TestUnknownPathFallsBackToIndex(t *testing.T) {
	app, _ := newTestApp(t)

	// Client-side routes have no file on disk; a reload must still get the
	// SPA entry document.
	req := httptest.NewRequest(http.MethodGet, "/checkout/payment", nil)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shopeasy")
}
