package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(t *testing.T, rate string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rl, err := NewRateLimiter(rate)
	if err != nil {
		t.Fatalf("NewRateLimiter: %v", err)
	}

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doRequest(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	r := newLimitedRouter(t, "2-M")

	for i := 0; i < 2; i++ {
		if w := doRequest(r, "10.0.0.1:1234"); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := doRequest(r, "10.0.0.1:1234")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", got)
	}
}

func TestRateLimiter_SeparatesClients(t *testing.T) {
	r := newLimitedRouter(t, "1-M")

	if w := doRequest(r, "10.0.0.1:1234"); w.Code != http.StatusOK {
		t.Fatalf("first client: expected 200, got %d", w.Code)
	}
	if w := doRequest(r, "10.0.0.2:1234"); w.Code != http.StatusOK {
		t.Fatalf("second client: expected 200, got %d", w.Code)
	}
	if w := doRequest(r, "10.0.0.1:1234"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("first client again: expected 429, got %d", w.Code)
	}
}

func TestNewRateLimiter_InvalidRate(t *testing.T) {
	if _, err := NewRateLimiter("lots"); err == nil {
		t.Fatal("expected an error for a malformed rate")
	}
}
