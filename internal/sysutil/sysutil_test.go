package sysutil

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestParseLevel_AllVariants(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"  DeBuG  ", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestSetLogLevel_SetsGlobal(t *testing.T) {
	orig := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(orig) })

	SetLogLevel("error")
	if got := zerolog.GlobalLevel(); got != zerolog.ErrorLevel {
		t.Fatalf("global level = %v", got)
	}
}

func TestNewLogger_JSONCarriesService(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(&buf, false, "creatorlab")
	lg.Info().Str("k", "v").Msg("hello")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if m["service"] != "creatorlab" || m["message"] != "hello" || m["k"] != "v" || m["time"] == nil {
		t.Fatalf("unexpected fields: %v", m)
	}
}

func TestNewLogger_PrettyIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(&buf, true, "creatorlab")
	lg.Info().Msg("hello")
	out := buf.String()
	if strings.HasPrefix(out, "{") || !strings.Contains(out, "hello") {
		t.Fatalf("unexpected console output %q", out)
	}
}

func TestSetupLogging_InstallsContextFallback(t *testing.T) {
	origLevel, origLog, origCtx, origFmt := zerolog.GlobalLevel(), log.Logger, zerolog.DefaultContextLogger, zerolog.TimeFieldFormat
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(origLevel)
		log.Logger = origLog
		zerolog.DefaultContextLogger = origCtx
		zerolog.TimeFieldFormat = origFmt
	})

	SetupLogging("warn", false, "svc")
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("level not applied")
	}
	if zerolog.Ctx(context.Background()) != &log.Logger {
		t.Fatalf("zerolog.Ctx must fall back to the root logger")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty(); got != "" {
		t.Fatalf("FirstNonEmpty() = %q", got)
	}
	if got := FirstNonEmpty(" ", "\t"); got != "" {
		t.Fatalf("FirstNonEmpty(blanks) = %q", got)
	}
	if got := FirstNonEmpty("", " v1.2 ", "dev"); got != " v1.2 " {
		t.Fatalf("FirstNonEmpty(...) = %q", got)
	}
}
