package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
}

func TestLogKV(t *testing.T) {
	var kvMsg string
	var kvArgs, plainArgs []any

	kv := func(msg string, args ...any) { kvMsg, kvArgs = msg, args }
	plain := func(args ...any) { plainArgs = args }

	logKV([]any{"done", "model", "gpt"}, kv, plain)
	if kvMsg != "done" || len(kvArgs) != 2 {
		t.Fatalf("expected key/value call, got msg=%q args=%v", kvMsg, kvArgs)
	}

	logKV([]any{"just a message"}, kv, plain)
	if len(plainArgs) != 1 {
		t.Fatalf("expected plain call, got %v", plainArgs)
	}
}
