package utilities

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yourscinema-backend/internal/config"
)

func TestNewLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(config.LoggingConfig{Level: "debug", Dir: dir})
	require.NoError(t, err)

	logger.Info("mood recorded")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "mood recorded")
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger(config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}
