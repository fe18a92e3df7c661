package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, levelFor(0))
	assert.Equal(t, zerolog.InfoLevel, levelFor(1))
	assert.Equal(t, zerolog.DebugLevel, levelFor(2))
	assert.Equal(t, zerolog.TraceLevel, levelFor(3))
	assert.Equal(t, zerolog.TraceLevel, levelFor(7))
}

func TestSetupLoggerWithOutput(t *testing.T) {
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	SetupLoggerWithOutput(1, &buf, false)

	logger := GetLogger("materialize")
	logger.Info().Str("path", "foo").Msg("Materialized entry")
	logger.Debug().Msg("hidden at info level")

	out := buf.String()
	assert.Contains(t, out, "Materialized entry")
	assert.Contains(t, out, "component=")
	assert.Contains(t, out, "materialize")
	assert.NotContains(t, out, "hidden at info level")
}

func TestLogOperationStart(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prevLevel) })
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "materialize")
	done()

	out := buf.String()
	assert.Contains(t, out, `"operation":"materialize"`)
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"duration"`)
}
