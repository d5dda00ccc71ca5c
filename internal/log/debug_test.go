package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSink(t *testing.T) func() {
	t.Helper()

	defaultSink.mu.Lock()
	prevOut := defaultSink.out
	prevPending := append([]byte(nil), defaultSink.pending...)
	prevDropped := defaultSink.dropped
	defaultSink.out = nil
	defaultSink.pending = nil
	defaultSink.dropped = false
	defaultSink.mu.Unlock()

	return func() {
		defaultSink.mu.Lock()
		if defaultSink.out != nil {
			_ = defaultSink.out.Close()
		}
		defaultSink.out = prevOut
		defaultSink.pending = prevPending
		defaultSink.dropped = prevDropped
		defaultSink.mu.Unlock()
	}
}

func TestPendingLinesAreFlushedToFile(t *testing.T) {
	t.Cleanup(resetSink(t))

	Printf("parsed %d entries", 3)
	Printf("before file")

	logPath := filepath.Join(t.TempDir(), "debug.log")
	require.NoError(t, SetFile(logPath))
	Printf("after file")
	require.NoError(t, Close())

	data, err := os.ReadFile(logPath) //nolint:gosec
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "parsed 3 entries")
	assert.Contains(t, content, "before file")
	assert.Contains(t, content, "after file")
	assert.Less(t, strings.Index(content, "parsed 3 entries"), strings.Index(content, "after file"))
}

func TestSetFileEmptyDiscards(t *testing.T) {
	t.Cleanup(resetSink(t))

	Printf("dropped")
	require.NoError(t, SetFile(""))
	Printf("also dropped")

	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	assert.True(t, defaultSink.dropped)
	assert.Empty(t, defaultSink.pending)
	assert.Nil(t, defaultSink.out)
}

func TestSetFileFailureDiscards(t *testing.T) {
	t.Cleanup(resetSink(t))

	Printf("pending")
	logPath := filepath.Join(t.TempDir(), "missing-dir", "debug.log")
	err := SetFile(logPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening debug log")

	Printf("after failure")

	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	assert.True(t, defaultSink.dropped)
	assert.Empty(t, defaultSink.pending)
}

func TestSetFileAgainSwitchesFile(t *testing.T) {
	t.Cleanup(resetSink(t))

	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	require.NoError(t, SetFile(first))
	Printf("one")
	require.NoError(t, SetFile(second))
	Printf("two")
	require.NoError(t, Close())

	data, err := os.ReadFile(first) //nolint:gosec
	require.NoError(t, err)
	assert.Contains(t, string(data), "one")
	assert.NotContains(t, string(data), "two")

	data, err = os.ReadFile(second) //nolint:gosec
	require.NoError(t, err)
	assert.Contains(t, string(data), "two")
}

func TestCloseWithoutFile(t *testing.T) {
	t.Cleanup(resetSink(t))
	assert.NoError(t, Close())
}

func TestWarnf(t *testing.T) {
	t.Cleanup(resetSink(t))

	var buf bytes.Buffer
	prev := SetWarnWriter(&buf)
	t.Cleanup(func() { SetWarnWriter(prev) })

	Warnf("skipping line %d: %s", 4, "too short")

	assert.Equal(t, "gitree: skipping line 4: too short\n", buf.String())

	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	assert.Contains(t, string(defaultSink.pending), "warning: skipping line 4: too short")
}

func TestWarnfNilWriter(t *testing.T) {
	t.Cleanup(resetSink(t))

	prev := SetWarnWriter(nil)
	t.Cleanup(func() { SetWarnWriter(prev) })

	assert.NotPanics(t, func() { Warnf("quiet") })
}
