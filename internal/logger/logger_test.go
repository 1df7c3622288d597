package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Level: "debug", Format: "json"}
	l.SetupWriter(&buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Debug().Str("sn", "N1").Msg("Fetching position")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "N1", entry["sn"])
	assert.Equal(t, "Fetching position", entry["message"])
}

func TestSetupLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Level: "error", Format: "json"}
	l.SetupWriter(&buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Error().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupInvalidLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Level: "verbose", Format: "console"}
	l.SetupWriter(&buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log.Warn().Msg("console line")
	assert.Contains(t, buf.String(), "console line")
}
