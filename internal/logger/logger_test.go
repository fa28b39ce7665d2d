package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTo_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	initTo(&buf, Config{Level: "debug", Format: "json"})
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	l := Component("search")
	l.Info().Str("term", "iti").Msg("catalog search")

	var evt map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &evt))
	assert.Equal(t, "search", evt["component"])
	assert.Equal(t, "iti", evt["term"])
	assert.Equal(t, "info", evt["level"])
}

func TestInitTo_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := initTo(&buf, Config{Level: "loud"})
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
