package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"citylaw/internal/logger"
	"citylaw/internal/metrics"
	"citylaw/internal/render"
	"citylaw/internal/services/pages"
	"citylaw/internal/services/sitemap"
	"citylaw/internal/store"
	"citylaw/internal/testutil"
)

const base = "https://example.test"

func init() { gin.SetMode(gin.TestMode) }

func newTestServer(t *testing.T, dataDir string, log *logger.Logger) *Server {
	t.Helper()
	cities := store.NewCityFileStore(dataDir)
	clusters := store.NewClusterFileStore(dataDir)
	r, err := render.New(render.Site{Name: "City Law Guide", BaseURL: base, ContactEmail: "info@example.test"})
	require.NoError(t, err)
	m := metrics.New()
	return New(Deps{
		Pages:   pages.New(cities, clusters, r, pages.WithMetrics(m)),
		Sitemap: sitemap.New(base, cities),
		BaseURL: base,
		Logger:  log,
		Metrics: m,
	})
}

func seed(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteCity(t, dir, "apex-nc", testutil.ApexPack())
	testutil.WriteCluster(t, dir, "wake-nc", testutil.WakeCluster())
	return dir
}

func get(t *testing.T, h http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestPages(t *testing.T) {
	h := newTestServer(t, seed(t), nil).Handler()

	for _, path := range []string{"/", "/dui-lawyer", "/dui-lawyer/apex-nc", "/clusters/wake-nc", "/contact", "/editorial-policy", "/sponsorship-disclosure"} {
		w := get(t, h, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"), path)
		assert.NotEmpty(t, w.Header().Get("ETag"), path)
	}

	w := get(t, h, "/dui-lawyer/apex-nc")
	assert.Contains(t, w.Body.String(), "Wake County Superior Court")

	w = get(t, h, "/clusters/wake-nc")
	assert.Equal(t, "noindex, follow", w.Header().Get("X-Robots-Tag"))
}

func TestNotModified(t *testing.T) {
	h := newTestServer(t, seed(t), nil).Handler()
	first := get(t, h, "/dui-lawyer/apex-nc")
	require.Equal(t, http.StatusOK, first.Code)

	second := get(t, h, "/dui-lawyer/apex-nc", "If-None-Match", first.Header().Get("ETag"))
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.String())
}

func TestNotFound(t *testing.T) {
	h := newTestServer(t, seed(t), nil).Handler()
	for _, path := range []string{"/dui-lawyer/nowhere-nc", "/clusters/nowhere", "/no/such/page"} {
		w := get(t, h, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "Page not found", path)
	}
}

func TestInvalidPackIsServerError(t *testing.T) {
	dir := seed(t)
	bad := testutil.CityPack("durham-nc", "Durham")
	delete(bad, "courts")
	testutil.WriteCity(t, dir, "durham-nc", bad)

	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	h := newTestServer(t, dir, log).Handler()

	w := get(t, h, "/dui-lawyer/durham-nc")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	entries := logs.FilterMessage("render page").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "durham-nc", fields["slug"])
	assert.Equal(t, "missing_field", fields["kind"])
}

func TestSitemapAndRobots(t *testing.T) {
	h := newTestServer(t, seed(t), nil).Handler()

	w := get(t, h, "/sitemap.xml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<loc>https://example.test/dui-lawyer/apex-nc</loc>")

	w = get(t, h, "/robots.txt")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sitemap: https://example.test/sitemap.xml")
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestServer(t, seed(t), nil).Handler()
	w := get(t, h, "/healthcheck")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	get(t, h, "/dui-lawyer/apex-nc")
	w = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `citylaw_pages_rendered_total`)
	assert.True(t, strings.Contains(body, `route="/dui-lawyer/:city"`), "request metrics should use the route pattern")
}

func TestRunShutsDown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	s := newTestServer(t, seed(t), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthcheck")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
