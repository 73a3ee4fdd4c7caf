package fixedvec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestJSONLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, slog.LevelDebug).WithDimension(3).WithCount(10).WithISA("avx2")

	l.LogBatch(context.Background(), "add", 10, time.Millisecond, nil)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "batch completed", lines[0]["msg"])
	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "add", lines[0]["op"])
	assert.EqualValues(t, 3, lines[0]["dimension"])
	assert.Equal(t, "avx2", lines[0]["isa"])
}

func TestLogBatchError(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, slog.LevelInfo)

	l.LogBatch(context.Background(), "scale", 4, 0, errors.New("boom"))
	l.LogBatch(context.Background(), "scale", 4, 0, nil) // below level

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR", lines[0]["level"])
	assert.Equal(t, "boom", lines[0]["error"])
}

func TestLogBench(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelInfo)

	l.LogBench(context.Background(), "add/D16", 4, 4*time.Microsecond)
	assert.Contains(t, buf.String(), "op=add/D16")
	assert.Contains(t, buf.String(), "per_op=1µs")

	buf.Reset()
	l.LogBench(context.Background(), "noop", 0, time.Second)
	assert.Contains(t, buf.String(), "per_op=0s")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() { l.LogBatch(context.Background(), "fill", 1, 0, errors.New("x")) })
}

func TestNewLoggerDefaultHandler(t *testing.T) {
	l := NewLogger(nil)
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}
