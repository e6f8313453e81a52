package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/andresuchdata/dss-backend/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutput_SharedWithGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	log.Info().Str("component", "Resistor").Msg("generated")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "generated", entry["message"])
	assert.Equal(t, "Resistor", entry["component"])
	assert.Equal(t, "info", entry["level"])
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	logger.SetLevel("warn")
	logger.Log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	logger.SetLevel("nonsense")
	assert.Contains(t, buf.String(), "invalid log level")
	assert.Equal(t, zerolog.InfoLevel, logger.Log.GetLevel())
}
