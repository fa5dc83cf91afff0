package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("desconocido"))
}

func TestNewWithWriter_EscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")
	log.Info().Str("product_id", "p1").Msg("venta registrada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "p1", line["product_id"])
	assert.Equal(t, "venta registrada", line["message"])
}

func TestNewWithWriter_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "error")
	log.Info().Msg("no debe aparecer")
	assert.Zero(t, buf.Len())
}
