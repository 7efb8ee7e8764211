package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinmalgor04/sistema-empleados-api/pkg/logger"
)

func TestLevelFor_NivelExplicitoPisaElDefault(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, logger.LevelFor("production", "warn"))
	assert.Equal(t, zerolog.TraceLevel, logger.LevelFor("development", "trace"))
	assert.Equal(t, zerolog.ErrorLevel, logger.LevelFor("development", " ERROR "),
		"el nivel se normaliza: espacios y mayúsculas no importan")
}

func TestLevelFor_DefaultsPorEntorno(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.LevelFor("development", ""),
		"development sin nivel configurado arranca en debug")
	assert.Equal(t, zerolog.InfoLevel, logger.LevelFor("production", ""),
		"production sin nivel configurado arranca en info")
	assert.Equal(t, zerolog.InfoLevel, logger.LevelFor("production", "verboso"),
		"un nivel desconocido cae al default del entorno")
}

func TestNew_ProduccionEmiteJSONConService(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{
		Env:     "production",
		Service: "sistema-empleados",
		Writer:  &buf,
	})

	l.Info().Str("evento", "arranque").Msg("listo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "en production la salida es JSON")
	assert.Equal(t, "sistema-empleados", line["service"], "cada línea lleva el nombre del servicio")
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "arranque", line["evento"])
	assert.NotEmpty(t, line["time"], "cada línea lleva timestamp")
}

func TestNew_ProduccionFiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Env: "production", Writer: &buf})

	l.Debug().Msg("no debería salir")

	assert.Zero(t, buf.Len(), "en production el nivel default es info: debug se filtra")
}

func TestNew_DevelopmentEscribeConsolaLegible(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Env: "development", Writer: &buf})

	l.Debug().Msg("visible en desarrollo")

	out := buf.String()
	assert.Contains(t, out, "visible en desarrollo")
	assert.False(t, json.Valid(buf.Bytes()), "en development la salida es consola, no JSON")
}
