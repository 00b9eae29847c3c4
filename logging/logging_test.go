package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Formats(t *testing.T) {
	cases := []struct {
		format string
		want   []string
	}{
		{"text", []string{"level=INFO", "component=maze", "msg=generated", "seed=7"}},
		{"json", []string{`"level":"INFO"`, `"component":"maze"`, `"msg":"generated"`, `"seed":7`}},
		{"", []string{"component=maze"}},
	}
	for _, tc := range cases {
		t.Run("format="+tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			Init(slog.LevelInfo, tc.format, &buf)
			New("maze").Info("generated", "seed", 7)
			for _, w := range tc.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestInit_LevelGating(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelWarn, "text", &buf)

	log := New("api")
	log.Debug("request served")
	log.Info("run served")
	log.Warn("run failed")

	out := buf.String()
	assert.NotContains(t, out, "served")
	assert.Contains(t, out, "run failed")
}

func TestDiscard(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, "text", &buf)
	Discard().Error("dropped")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
