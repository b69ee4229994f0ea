package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestSetupJSONRespectsLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	SetupWithWriter(&buf, "warn", "json")

	log.Info().Msg("hidden")
	log.Warn().Str("stage", "persona").Msg("model returned no text")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "persona", entry["stage"])
	require.Equal(t, "model returned no text", entry["message"])
}

func TestSetupFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	SetupWithWriter(&buf, "loud", "console")

	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	log.Info().Msg("server starting")
	require.Contains(t, buf.String(), "server starting")
}
