package salesreport

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "warn")

	log.Info("dropped")
	log.Warn("kept", slog.String("path", "out.xlsx"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "out.xlsx", rec["path"])
}

func TestStagesLogProgress(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions(t.TempDir())
	opts.Logger = NewLogger(&buf, "info")

	_, err := Run(opts)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"sample data written"`)
	assert.Contains(t, out, `"msg":"summary written"`)
	assert.Contains(t, out, `"msg":"report formatted"`)
	assert.Contains(t, out, `"range":"A1:D7"`)
}
