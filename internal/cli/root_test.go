package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/randfile/internal/logging"
)

var defaultName = regexp.MustCompile(`^[0-9a-z]{10}$`)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)
	cmd, err := NewRootCommand()
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return stdout.String(), err
}

func TestRoot_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, err := execute(t, "--seed", "42")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	name := entries[0].Name()
	assert.Regexp(t, defaultName, name)
	assert.Equal(t, "generate "+name+" 4096B\n", out)

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, int64(4096), info.Size())
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	savedLogger, savedLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = savedLogger
		zerolog.SetGlobalLevel(savedLevel)
	})
	var buf bytes.Buffer
	logging.SetupLoggerTo(&buf)
	return &buf
}

func TestRoot_DefaultRunIsQuiet(t *testing.T) {
	logOutput := captureLog(t)
	t.Chdir(t.TempDir())

	_, err := execute(t, "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	assert.Empty(t, logOutput.String())
}

func TestRoot_VerboseLogs(t *testing.T) {
	logOutput := captureLog(t)
	t.Chdir(t.TempDir())

	_, err := execute(t, "--seed", "3", "-v")
	require.NoError(t, err)
	assert.Contains(t, logOutput.String(), "[ Generating ]")
	assert.Contains(t, logOutput.String(), "[ Complete ]")
	assert.Contains(t, logOutput.String(), "[ Config ]")
}

func TestRoot_SeedSelectsName(t *testing.T) {
	t.Chdir(t.TempDir())
	first, err := execute(t, "--seed", "7", "-k", "1b")
	require.NoError(t, err)

	t.Chdir(t.TempDir())
	second, err := execute(t, "--seed", "7", "-k", "1b")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRoot_NameAndSize(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "payload.dat")

	out, err := execute(t, "-n", outPath, "-k", "8 KB")
	require.NoError(t, err)
	assert.Equal(t, "generate "+outPath+" 8192B\n", out)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Equal(t, int64(8192), info.Size())
}

func TestRoot_InvalidSize(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "never")

	out, err := execute(t, "-n", outPath, "-k", "1024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid size '1024'")
	assert.Empty(t, out)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRoot_UnwritablePath(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "missing", "file")

	_, err := execute(t, "-n", outPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	require.Error(t, err)
}
