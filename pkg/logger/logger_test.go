package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Service: "ginebra", Output: &buf})

	log.Info().Msg("descartado")
	log.Component("mail").Warn().Msg("smtp caído")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), buf.String())
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "ginebra", line["service"])
	assert.Equal(t, "mail", line["component"])
	assert.Equal(t, "smtp caído", line["message"])
}

func TestNew_NivelDesconocidoEsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "verboso", Output: &buf})

	log.Debug().Msg("no")
	log.Info().Msg("sí")

	assert.NotContains(t, buf.String(), `"no"`)
	assert.Contains(t, buf.String(), `"sí"`)
}
