package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerTo(t *testing.T) {
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })

	var buf bytes.Buffer
	SetupLoggerTo(&buf)
	logger := GetLogger()
	leveled := logger.Level(zerolog.InfoLevel)
	leveled.Info().Str("name", "abc").Msg("Generating")

	out := buf.String()
	assert.Contains(t, out, "| INFO  |")
	assert.Contains(t, out, "[ Generating ]")
	assert.Contains(t, out, "name=abc")
}
