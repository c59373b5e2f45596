package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"go.trai.ch/nodepack/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	log := logger.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Info("bundling entry")
	log.Warn("asset not found, skipping: ./missing")
	log.Error(zerr.New("pkg exited 1"))

	out := buf.String()
	if !strings.Contains(out, "bundling entry") {
		t.Errorf("expected info message in output, got %q", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "asset not found") {
		t.Errorf("expected warning in output, got %q", out)
	}
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "pkg exited 1") {
		t.Errorf("expected error in output, got %q", out)
	}
}
