package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecipeCounters(t *testing.T) {
	before := testutil.ToFloat64(recipesCreatedTotal)
	IncRecipeCreated()
	if got := testutil.ToFloat64(recipesCreatedTotal); got != before+1 {
		t.Fatalf("expected created counter %v, got %v", before+1, got)
	}

	rejected := recipesRejectedTotal.WithLabelValues("duplicate_title")
	beforeRejected := testutil.ToFloat64(rejected)
	IncRecipeRejected("duplicate_title")
	if got := testutil.ToFloat64(rejected); got != beforeRejected+1 {
		t.Fatalf("expected rejected counter %v, got %v", beforeRejected+1, got)
	}

	SetCollectionSize(7)
	if got := testutil.ToFloat64(collectionSize); got != 7 {
		t.Fatalf("expected collection size 7, got %v", got)
	}
}

func TestHandlerExposesRequestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", Handler())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `recipes_http_requests_total{method="GET",path="/ping",status="204"}`) {
		t.Fatalf("expected request counter in exposition, got:\n%s", body)
	}
}
