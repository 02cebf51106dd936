package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{
			format: FormatText,
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "msg=ready")
				assert.Contains(t, out, "port=8000")
			},
		},
		{
			format: FormatJSON,
			check: func(t *testing.T, out string) {
				var rec map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &rec))
				assert.Equal(t, "ready", rec["msg"])
				assert.EqualValues(t, 8000, rec["port"])
			},
		},
		{
			format: FormatZap,
			check: func(t *testing.T, out string) {
				var rec map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &rec))
				assert.Equal(t, "ready", rec["msg"])
				assert.Equal(t, "info", rec["level"])
				assert.EqualValues(t, 8000, rec["port"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(tt.format, "info", &buf)
			require.NoError(t, err)

			log.Info(context.Background(), "ready", "port", 8000)
			tt.check(t, buf.String())
		})
	}
}

func TestNew_LevelFilters(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatZap} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(format, "warn", &buf)
			require.NoError(t, err)

			log.Info(context.Background(), "hidden")
			log.Debug(context.Background(), "hidden")
			assert.Empty(t, buf.String())

			log.Warn(context.Background(), "shown")
			assert.Contains(t, buf.String(), "shown")
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("xml", "info", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestZapLogger_WithAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(FormatZap, "debug", &buf)
	require.NoError(t, err)

	ctx := WithRequestID(context.Background(), "abc")
	log.With("component", "search").Debug(ctx, "issued")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "search", rec["component"])
	assert.Equal(t, "abc", rec["request_id"])
}
