package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"recipe-backend/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), Logging())
	router.POST("/recipes", func(c *gin.Context) {
		c.Set("recipeTitle", "Soup")
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	var buf bytes.Buffer
	telemetry.SetOutput(&buf)
	defer telemetry.SetOutput(nil)

	req := httptest.NewRequest(http.MethodPost, "/recipes?x=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatalf("expected log output")
	}
	last := lines[len(lines)-1]
	var payload map[string]any
	if err := json.Unmarshal([]byte(last), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}

	required := []string{"request_id", "method", "path", "status", "duration_ms", "client_ip", "recipe_title"}
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["msg"] != "request.complete" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["status"] != float64(http.StatusCreated) {
		t.Fatalf("unexpected status: %v", payload["status"])
	}
	if payload["recipe_title"] != "Soup" {
		t.Fatalf("unexpected recipe_title: %v", payload["recipe_title"])
	}
	if payload["query"] != "x=1" {
		t.Fatalf("unexpected query: %v", payload["query"])
	}
}
