package respond

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"recipe-backend/internal/shared/telemetry"
)

func TestErrorWritesFlatBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	telemetry.SetOutput(io.Discard)
	t.Cleanup(func() { telemetry.SetOutput(nil) })

	r := gin.New()
	r.POST("/recipes", func(c *gin.Context) {
		Error(c, http.StatusConflict, "duplicate_title", "A recipe with this title already exists")
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/recipes", nil))

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "A recipe with this title already exists" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
	if body["code"] != "duplicate_title" {
		t.Fatalf("unexpected code: %v", body["code"])
	}
}
