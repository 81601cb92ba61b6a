package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, window), mr
}

func newTestRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	router := newTestRouter(limiter)

	for i := 0; i < 3; i++ {
		if code := doRequest(router, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}

	if code := doRequest(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after limit, got %d", code)
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	router := newTestRouter(limiter)

	if code := doRequest(router, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("expected 200 for first client, got %d", code)
	}
	if code := doRequest(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for exhausted client, got %d", code)
	}

	// A different address still has its own budget
	if code := doRequest(router, "10.0.0.2"); code != http.StatusOK {
		t.Errorf("expected 200 for second client, got %d", code)
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	router := newTestRouter(limiter)

	if code := doRequest(router, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := doRequest(router, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}

	mr.FastForward(time.Minute + time.Second)

	if code := doRequest(router, "10.0.0.1"); code != http.StatusOK {
		t.Errorf("expected 200 after window reset, got %d", code)
	}
}

func TestRateLimiterFailsOpenWhenRedisDown(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	router := newTestRouter(limiter)

	mr.Close()

	// Redis being unreachable must not block logins
	for i := 0; i < 5; i++ {
		if code := doRequest(router, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200 with Redis down, got %d", i+1, code)
		}
	}
}
