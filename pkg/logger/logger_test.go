package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jhoicas/opsdesk-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithServiceAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Service: "opsdesk-api", Output: &buf})

	l.Info().Msg("descartado")
	l.Warn().Str("k", "v").Msg("visible")

	var event map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &event))
	assert.Equal(t, "visible", event["message"])
	assert.Equal(t, "opsdesk-api", event["service"])
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, "v", event["k"])
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "verbose", Output: &buf})

	l.Debug().Msg("no")
	assert.Zero(t, buf.Len())
	l.Info().Msg("si")
	assert.NotZero(t, buf.Len())
}
