package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func setupTestGin() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestMetricsMiddleware_CountsRequests(t *testing.T) {
	router := setupTestGin()
	router.Use(MetricsMiddleware())
	router.GET("/todos", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	before := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/todos", "200"))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		router.ServeHTTP(w, req)
	}

	after := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/todos", "200"))
	if got := after - before; got != 3 {
		t.Errorf("expected 3 requests recorded, got %v", got)
	}
}

func TestMetricsMiddleware_RouteLabelUsesPattern(t *testing.T) {
	router := setupTestGin()
	router.Use(MetricsMiddleware())
	router.GET("/todos/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/todos/:id", "200"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos/42", nil)
	router.ServeHTTP(w, req)

	after := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/todos/:id", "200"))
	if got := after - before; got != 1 {
		t.Errorf("expected the route pattern label to be used, delta %v", got)
	}
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	router := setupTestGin()
	router.Use(MetricsMiddleware())

	before := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "unmatched", "404"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	router.ServeHTTP(w, req)

	after := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "unmatched", "404"))
	if got := after - before; got != 1 {
		t.Errorf("expected unmatched routes to share one label, delta %v", got)
	}
}

func TestObserveGeneration(t *testing.T) {
	before := testutil.ToFloat64(generationsTotal.WithLabelValues("fallback"))

	ObserveGeneration("fallback")
	ObserveGeneration("fallback")

	after := testutil.ToFloat64(generationsTotal.WithLabelValues("fallback"))
	if got := after - before; got != 2 {
		t.Errorf("expected 2 fallback generations recorded, got %v", got)
	}
}

func TestMetricsHandler_Exposition(t *testing.T) {
	router := setupTestGin()
	router.Use(MetricsMiddleware())
	router.GET("/metrics", MetricsHandler())
	router.GET("/todos", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	router.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 from /metrics, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "todoapp_http_requests_total") {
		t.Error("expected request counter in exposition output")
	}
	if !strings.Contains(w.Body.String(), "todoapp_http_request_duration_seconds") {
		t.Error("expected duration histogram in exposition output")
	}
}

func BenchmarkMetricsMiddleware(b *testing.B) {
	router := setupTestGin()
	router.Use(MetricsMiddleware())
	router.GET("/todos", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}
