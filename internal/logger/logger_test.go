package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tokenmeta-proxy/internal/config"
)

func TestNewLogger_Levels(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "debug", Encoding: "console", Output: "stderr"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	fallback, err := NewLogger(config.LoggerConfig{Level: "loud"})
	require.NoError(t, err)
	assert.False(t, fallback.Core().Enabled(zap.DebugLevel))
	assert.True(t, fallback.Core().Enabled(zap.InfoLevel))
}

func TestOutputSink(t *testing.T) {
	for _, output := range []string{"", "stdout", "stderr"} {
		sink, err := outputSink(output)
		require.NoError(t, err, output)
		assert.NotNil(t, sink)
	}

	_, err := outputSink("/var/log/tokenmeta.log")
	assert.Error(t, err)
}

func TestNewLogger_RejectsUnknownOutput(t *testing.T) {
	_, err := NewLogger(config.LoggerConfig{Level: "info", Output: os.DevNull})
	assert.Error(t, err)
}
