package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todolist-service/internal/platform/logging"
)

func TestNew_LevelsAndFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		format   string
		log      func(*slog.Logger)
		contains []string
		absent   []string
	}{
		{
			name: "json info", level: "info", format: "json",
			log:      func(l *slog.Logger) { l.Info("hello") },
			contains: []string{`"level":"INFO"`, `"msg":"hello"`},
			absent:   []string{`"source"`},
		},
		{
			name: "text info", level: "info", format: "text",
			log:      func(l *slog.Logger) { l.Info("hello") },
			contains: []string{"level=INFO", "msg=hello"},
		},
		{
			name: "debug includes source", level: "debug", format: "json",
			log:      func(l *slog.Logger) { l.Debug("details") },
			contains: []string{`"msg":"details"`, `"source"`},
		},
		{
			name: "info filters debug", level: "info", format: "json",
			log:    func(l *slog.Logger) { l.Debug("details") },
			absent: []string{"details"},
		},
		{
			name: "error filters warn", level: "error", format: "json",
			log:    func(l *slog.Logger) { l.Warn("careful") },
			absent: []string{"careful"},
		},
		{
			name: "unknown level means info", level: "verbose", format: "json",
			log: func(l *slog.Logger) {
				l.Debug("hidden")
				l.Info("shown")
			},
			contains: []string{"shown"},
			absent:   []string{"hidden"},
		},
		{
			name: "unknown format means json", level: "info", format: "xml",
			log:      func(l *slog.Logger) { l.Info("hello") },
			contains: []string{`"msg":"hello"`},
		},
		{
			name: "level is case-insensitive", level: "DEBUG", format: "json",
			log:      func(l *slog.Logger) { l.Debug("details") },
			contains: []string{"details"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tc.log(logging.New(tc.level, tc.format, &buf))

			out := buf.String()
			for _, want := range tc.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output = %q, want it to contain %q", out, want)
				}
			}
			for _, bad := range tc.absent {
				if strings.Contains(out, bad) {
					t.Errorf("output = %q, want it not to contain %q", out, bad)
				}
			}
		})
	}
}

func TestNew_BaseAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf, slog.String("service", "todolist-service"))

	logger.Info("started")

	if !strings.Contains(buf.String(), `"service":"todolist-service"`) {
		t.Errorf("output = %q, want service attribute", buf.String())
	}
}

func TestContext_RoundTrip(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext(empty) did not return slog.Default()")
	}

	var buf bytes.Buffer
	first := logging.New("info", "json", &buf)
	second := logging.New("debug", "json", &buf)

	ctx := logging.WithLogger(context.Background(), first)
	if logging.FromContext(ctx) != first {
		t.Error("FromContext did not return the stored logger")
	}

	ctx = logging.WithLogger(ctx, second)
	if logging.FromContext(ctx) != second {
		t.Error("FromContext returned the first logger, want the overwriting one")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{"authorization field", slog.String("authorization", "Bearer supersecret-token"), "supersecret-token"},
		{"cookie field", slog.String("cookie", "session=abc123def"), "abc123def"},
		{"password field", slog.String("password", "hunter2"), "hunter2"},
		{"dsn field", slog.String("dsn", "host=db user=todolist password=s3cr3t"), "s3cr3t"},
		{"redis password field", slog.String("redis_password", "r3d1s"), "r3d1s"},
		{"bearer inside any value", slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), "eyJhbGciOiJSUzI1NiJ9"},
		{"url credentials inside an error", slog.String("error",
			"dial postgres://todolist:hunter2@db:5432/todolist: refused"), "hunter2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("event", tc.attr)

			out := buf.String()
			if strings.Contains(out, tc.secret) {
				t.Errorf("output = %q, want %q redacted", out, tc.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, want a [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("adding todo item",
		slog.Int64("item_id", 42),
		slog.String("category", "Work"),
		slog.String("path", "/api/v1/todolists"),
	)

	out := buf.String()
	for _, want := range []string{`"item_id":42`, `"category":"Work"`, "/api/v1/todolists"} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to contain %q", out, want)
		}
	}
}
