package log

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"quiet", zerolog.Disabled},
		{"off", zerolog.Disabled},
		{" Info ", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, parseLevel(tc.in), "level %q", tc.in)
	}
}

func TestNewWithWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn")

	logger.Info().Msg("filtered out")
	require.Empty(t, buf.String())

	logger.Warn().Str("room", "default").Msg("kept")
	out := buf.String()
	require.Contains(t, out, "kept")
	require.Contains(t, out, "default")
}
