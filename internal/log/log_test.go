package log

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/strix/internal/config"
)

func TestInitLevelAndFormat(t *testing.T) {
	err := Init(config.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logrus.StandardLogger().GetLevel())
}

func TestInitBadLevel(t *testing.T) {
	err := Init(config.LogConfig{Level: "loud", Format: "text"})
	assert.Error(t, err)
}

func TestInitBadFormat(t *testing.T) {
	err := Init(config.LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestInitFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strix.log")
	err := Init(config.LogConfig{
		Level:  "info",
		Format: "text",
		File: config.FileOutputConfig{
			Enabled:   true,
			Path:      path,
			MaxSizeMB: 1,
		},
	})
	require.NoError(t, err)

	logrus.Info("hello")
	// lumberjack creates the file lazily on first write
	assert.FileExists(t, path)
}

func TestInitFileOutputRequiresPath(t *testing.T) {
	err := Init(config.LogConfig{
		Level:  "info",
		Format: "text",
		File:   config.FileOutputConfig{Enabled: true},
	})
	assert.Error(t, err)
}
