package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Handlers(t *testing.T) {
	tests := []struct {
		env  string
		json bool
	}{
		{env: "production", json: true},
		{env: "development"},
		{env: ""},
		{env: "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			logger := NewLogger(tt.env, "")
			require.NotNil(t, logger)

			_, isJSON := logger.Handler().(*slog.JSONHandler)
			assert.Equal(t, tt.json, isJSON, "got %T", logger.Handler())
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	ctx := context.Background()

	prod := NewLogger("production", "")
	assert.True(t, prod.Handler().Enabled(ctx, slog.LevelInfo))
	assert.False(t, prod.Handler().Enabled(ctx, slog.LevelDebug))

	dev := NewLogger("development", "")
	assert.True(t, dev.Handler().Enabled(ctx, slog.LevelDebug))
}

func TestNewLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	newLogger("production", &buf).Info("pushed", "id", "doc-1")

	assert.Contains(t, buf.String(), `"msg":"pushed"`)
	assert.Contains(t, buf.String(), `"id":"doc-1"`)
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mdkeeper.log")

	logger := NewLogger("production", path)
	logger.Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
