package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("invalidLevel", func(t *testing.T) {
		_, err := New(Config{Level: "verbose"})
		require.Error(t, err)
	})

	t.Run("routing", func(t *testing.T) {
		testCases := []struct {
			level      string
			wantStdout []string
			wantStderr []string
		}{
			{level: "debug", wantStdout: []string{"debug", "info", "warn"}, wantStderr: []string{"error"}},
			{level: "info", wantStdout: []string{"info", "warn"}, wantStderr: []string{"error"}},
			{level: "warn", wantStdout: []string{"warn"}, wantStderr: []string{"error"}},
			{level: "error", wantStderr: []string{"error"}},
		}

		for _, tc := range testCases {
			t.Run(tc.level, func(t *testing.T) {
				var stdout, stderr bytes.Buffer
				logger, err := New(Config{
					Level:  tc.level,
					Stdout: zapcore.AddSync(&stdout),
					Stderr: zapcore.AddSync(&stderr),
					JSON:   true,
				})
				require.NoError(t, err)

				logger.Debug("debug")
				logger.Info("info")
				logger.Warn("warn")
				logger.Error("error")

				require.Equal(t, tc.wantStdout, messages(t, &stdout))
				require.Equal(t, tc.wantStderr, messages(t, &stderr))
			})
		}
	})
}

func messages(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()

	var msgs []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		require.Contains(t, entry, "host")
		msgs = append(msgs, entry["message"].(string))
	}

	return msgs
}
