package qrpdf

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLoggerRecordsEncodeAndRender(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c := &recordingCanvas{bounds: pageBounds()}
	if err := Print(c, "log me", WithScale(2)); err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"encoded symbol", "version=1", "qrpdf: render", "dot_w=2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNilSilences(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("default logger must be disabled")
	}
}
