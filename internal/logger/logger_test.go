package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Domenick1991/flightsearch/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(config.LogConfig{Level: "warn"}, &buf)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Str("flight_id", "FL001").Msg("shown")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "FL001", entry["flight_id"])
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, newWithWriter(config.LogConfig{Level: "loud"}, &bytes.Buffer{}).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, newWithWriter(config.LogConfig{}, &bytes.Buffer{}).GetLevel())
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(config.LogConfig{Level: "info", Pretty: true}, &buf)
	log.Info().Msg("catalog loaded")
	assert.Contains(t, buf.String(), "catalog loaded")
	assert.NotContains(t, buf.String(), `"message"`)
}
