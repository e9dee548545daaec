package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestInfoWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Info("recipes.persisted", map[string]any{"count": 3, "err": errors.New("boom")})

	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &payload); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if payload["msg"] != "recipes.persisted" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts field")
	}
	if payload["count"] != float64(3) {
		t.Fatalf("unexpected count: %v", payload["count"])
	}
	if payload["err"] != "boom" {
		t.Fatalf("expected error rendered as string, got %v", payload["err"])
	}
}

func TestSetLevelSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(nil)
		SetLevel("info")
	})

	SetLevel("info")
	Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected debug suppressed at info level, got %q", buf.String())
	}

	SetLevel("debug")
	Debug("shown", nil)
	if !strings.Contains(buf.String(), `"msg":"shown"`) {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}
