package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-learning-log/internal/config"
	"go-learning-log/internal/logger"
)

// 最初に実行されるよう先頭に置く
func TestNew_UnknownEnvLeavesGlobalsAlone(t *testing.T) {
	// import しただけ、または New が失敗しただけではグローバル設定は変わらない
	require.Equal(t, "time", zerolog.TimestampFieldName)

	_, err := logger.New("staging", nil)
	require.Error(t, err)
	assert.Equal(t, "time", zerolog.TimestampFieldName)

	_, err = logger.New(config.EnvProd, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "timestamp", zerolog.TimestampFieldName)
}

func TestNew_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(config.EnvProd, &buf)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("port", "3000").Msg("listening")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "listening", entry["message"])
	assert.Equal(t, "3000", entry["port"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry, "pid")
}

func TestNew_LocalUsesConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New(config.EnvLocal, &buf)
	require.NoError(t, err)

	l.Trace().Msg("trace line")

	assert.Contains(t, buf.String(), "trace line")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestNew_UnknownEnv(t *testing.T) {
	_, err := logger.New("staging", nil)
	assert.ErrorIs(t, err, config.ErrUnknownEnv)

	assert.Panics(t, func() { logger.Must("staging", nil) })
}
