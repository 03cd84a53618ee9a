package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersUseRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.PUT("/api/data/favorite/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.DELETE("/api/data/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	baseFav := testutil.ToFloat64(httpReqs.WithLabelValues("PUT", "/api/data/favorite/:id", "200"))
	baseDel := testutil.ToFloat64(httpReqs.WithLabelValues("DELETE", "/api/data/:id", "204"))
	baseMiss := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "unmatched", "404"))

	for _, rq := range []*http.Request{
		httptest.NewRequest(http.MethodPut, "/api/data/favorite/abc", nil),
		httptest.NewRequest(http.MethodPut, "/api/data/favorite/def", nil),
		httptest.NewRequest(http.MethodDelete, "/api/data/abc", nil),
		httptest.NewRequest(http.MethodGet, "/nope/123", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), rq)
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("PUT", "/api/data/favorite/:id", "200")); got != baseFav+2 {
		t.Fatalf("favorite counter = %v; want %v", got, baseFav+2)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("DELETE", "/api/data/:id", "204")); got != baseDel+1 {
		t.Fatalf("delete counter = %v; want %v", got, baseDel+1)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "unmatched", "404")); got != baseMiss+1 {
		t.Fatalf("unmatched counter = %v; want %v", got, baseMiss+1)
	}
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0", inFlight)
	}
}
