package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/wepoker/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	r.GET("/api/game/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_Generated(t *testing.T) {
	r := newEngine(RequestID())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	r := newEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "upstream-42")
	w := serve(r, req)

	assert.Equal(t, "upstream-42", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "upstream-42", w.Body.String())
}

func TestRequestID_AttachesLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ctx", func(c *gin.Context) {
		if logger.FromContext(c.Request.Context()) == logger.Default() {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ctx", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	r := newEngine(RequestID(), RequestLogger())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS_AllowAll(t *testing.T) {
	r := newEngine(CORS([]string{"*"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://lan-player.local")
	w := serve(r, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	r := newEngine(CORS([]string{"https://poker.example"}))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://poker.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://poker.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	r := newEngine(CORS([]string{"https://poker.example"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := serve(r, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitConfig_IsExemptPath(t *testing.T) {
	cfg := RateLimitConfig{ExemptPaths: []string{"/api/game/health"}}

	assert.True(t, cfg.IsExemptPath("/api/game/health"))
	assert.True(t, cfg.IsExemptPath("/api/game/health/deep"))
	assert.False(t, cfg.IsExemptPath("/api/game/healthy"))
	assert.False(t, cfg.IsExemptPath("/api/game/tables"))
}

func TestNewRateLimiter_InvalidRate(t *testing.T) {
	_, err := NewRateLimiter(RateLimitConfig{Rate: "lots"})
	assert.Error(t, err)
}

func TestNewRateLimiter_InvalidRedisURL(t *testing.T) {
	_, err := NewRateLimiter(RateLimitConfig{Rate: "10-M", RedisURL: "not a url"})
	assert.Error(t, err)
}

func TestRateLimiter_BlocksAfterQuota(t *testing.T) {
	rl, err := NewRateLimiter(RateLimitConfig{
		Rate:        "2-M",
		ExemptPaths: []string{"/api/game/health"},
	})
	require.NoError(t, err)
	defer rl.Close() //nolint:errcheck // memory store

	r := newEngine(rl.Middleware())

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too_many_requests")

	// exempt path keeps working
	for i := 0; i < 5; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/api/game/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
