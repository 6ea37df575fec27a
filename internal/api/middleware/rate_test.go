package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimitRejectsBeyondBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(RateLimitConfig{RPS: 1, Burst: 5}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	var rejected int
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		switch rec.Code {
		case http.StatusOK:
			if rec.Header().Get("X-RateLimit-Limit") != "1" {
				t.Errorf("X-RateLimit-Limit = %q, want 1", rec.Header().Get("X-RateLimit-Limit"))
			}
		case http.StatusTooManyRequests:
			rejected++
		default:
			t.Fatalf("request %d: unexpected status %d", i, rec.Code)
		}
	}
	if rejected == 0 {
		t.Error("a 20-request burst against burst=5 should see some 429s")
	}
}

func TestRateLimitScopedToGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api/v1")
	api.Use(RateLimitMiddleware(RateLimitConfig{RPS: 1, Burst: 5}))
	api.GET("/tunnels", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Unmatched paths stand in for forwarded ingress traffic; the bucket on
	// the API group must never touch them.
	router.NoRoute(func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	for i := 0; i < 120; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything", nil))
		if rec.Code == http.StatusTooManyRequests {
			t.Fatalf("ingress request %d was rate limited", i)
		}
	}

	var rejected int
	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tunnels", nil))
		if rec.Code == http.StatusTooManyRequests {
			rejected++
		}
	}
	if rejected == 0 {
		t.Error("the API group itself should still be limited")
	}
}
