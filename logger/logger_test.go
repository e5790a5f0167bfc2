package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}

	got, ok := ParseLevel("chatty")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestSetupWritesJSONAtLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	l := SetupWithWriter(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown", "position", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, float64(3), entry["position"])
}

func TestSetupWarnsOnBadLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	SetupWithWriter(&buf, "chatty")
	assert.Contains(t, buf.String(), "invalid log level configured")
}
