package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupLimitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/limitado", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	router := setupLimitedRouter(NewRateLimiter(3, time.Minute))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/limitado", nil)
		req.RemoteAddr = "198.51.100.1:1234"
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimiterBlocksOverBudget(t *testing.T) {
	router := setupLimitedRouter(NewRateLimiter(2, time.Minute))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/limitado", nil)
		req.RemoteAddr = "198.51.100.2:1234"
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/limitado", nil)
	req.RemoteAddr = "198.51.100.2:1234"
	router.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the bucket is empty, got %d", w.Code)
	}
}

func TestRateLimiterIsPerClient(t *testing.T) {
	router := setupLimitedRouter(NewRateLimiter(1, time.Minute))

	first := httptest.NewRecorder()
	req1 := httptest.NewRequest("GET", "/limitado", nil)
	req1.RemoteAddr = "198.51.100.3:1234"
	router.ServeHTTP(first, req1)

	// A different IP has its own bucket.
	second := httptest.NewRecorder()
	req2 := httptest.NewRequest("GET", "/limitado", nil)
	req2.RemoteAddr = "198.51.100.4:1234"
	router.ServeHTTP(second, req2)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected both clients allowed, got %d and %d", first.Code, second.Code)
	}
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter(10, 100*time.Millisecond)
	router := setupLimitedRouter(rl)

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/limitado", nil)
		req.RemoteAddr = "198.51.100.5:1234"
		router.ServeHTTP(w, req)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/limitado", nil)
	req.RemoteAddr = "198.51.100.5:1234"
	router.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 with empty bucket, got %d", w.Code)
	}

	time.Sleep(50 * time.Millisecond)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/limitado", nil)
	req.RemoteAddr = "198.51.100.5:1234"
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after refill, got %d", w.Code)
	}
}
