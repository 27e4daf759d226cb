package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"inventory/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	logger, err := New(Params{Config: cfg})
	assert.Error(t, err)
	assert.Nil(t, logger)
}

func TestNewHandler_Format(t *testing.T) {
	var buf bytes.Buffer

	handler, err := newHandler(&buf, config.Log{Level: "warn"}, false)
	require.NoError(t, err)
	logger := slog.New(handler)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("order_id", "o-1"))

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"order_id":"o-1"`)
	assert.NotContains(t, buf.String(), `"source"`)

	buf.Reset()
	handler, err = newHandler(&buf, config.Log{Pretty: true}, true)
	require.NoError(t, err)
	slog.New(handler).Info("pretty")

	assert.Contains(t, buf.String(), "msg=pretty")
	assert.Contains(t, buf.String(), "source=")
}
