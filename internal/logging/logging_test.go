package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNewFallbackWriter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "info", Fallback: &buf, Prefix: "test"})
	require.NoError(t, err)
	defer l.Close()

	l.Debug("hidden")
	l.Info("run saved", "score", 120)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "run saved")
	assert.Contains(t, out, "score=120")
	assert.Contains(t, out, "test")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breakout.log")
	l, err := New(Options{File: path, Level: "debug"})
	require.NoError(t, err)

	l.Debug("ball lost", "progress", 40)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ball lost")
	assert.Contains(t, string(data), "progress=40")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nobody hears this")
	assert.NoError(t, l.Close())
}
