package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_DisabledByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, 0, true)

	logger.Warn().Msg("should not appear")
	if buf.Len() != 0 {
		t.Errorf("verbosity 0 should not log, got %q", buf.String())
	}
}

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{verbosity: 1, want: zerolog.DebugLevel},
		{verbosity: 2, want: zerolog.TraceLevel},
		{verbosity: 5, want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if got := New(&buf, tt.verbosity, true).GetLevel(); got != tt.want {
			t.Errorf("New(verbosity=%d).GetLevel() = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(&buf, 1, true), "index")

	logger.Debug().Int("templates", 3).Msg("index built")

	out := buf.String()
	for _, want := range []string{"index built", "component=index", "templates=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}
