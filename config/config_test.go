package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/rlog"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "rlog.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
	require.Equal(t, rlog.DefaultEntriesToKeep, cfg.EntriesToKeep)
	require.Equal(t, SinkNone, cfg.Sink)
}

func TestLoadFileThenEnv(t *testing.T) {
	p := writeFile(t, `
verbose: true
entries_to_keep: 250
sink: zerolog
breaker:
  enabled: true
  failure_threshold: 3
  timeout: 2s
`)
	t.Setenv("RLOG_SINK", "zap")
	t.Setenv("RLOG_BREAKER_TIMEOUT", "10s")

	cfg, err := Load(p)
	require.NoError(t, err)
	require.True(t, cfg.Verbose)
	require.Equal(t, 250, cfg.EntriesToKeep)
	require.Equal(t, SinkZap, cfg.Sink)
	require.True(t, cfg.Breaker.Enabled)
	require.Equal(t, uint32(3), cfg.Breaker.FailureThreshold)
	require.Equal(t, 10*time.Second, cfg.Breaker.Timeout)
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	p := writeFile(t, "entries_to_keep: 7\n")
	t.Setenv(ConfigPathEnvVar, p)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 7, cfg.EntriesToKeep)
}

func TestLoadRejectsInvalid(t *testing.T) {
	p := writeFile(t, "entries_to_keep: 0\n")
	_, err := Load(p)
	require.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv("RLOG_SINK", "syslog")
	_, err = Load("")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidateBreaker(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Breaker.Enabled = true
	cfg.Breaker.FailureThreshold = 0
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Breaker.FailureThreshold = 1
	cfg.Breaker.Timeout = 0
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Breaker.Timeout = time.Second
	require.NoError(t, cfg.Validate())
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	require.Equal(t, "entries_to_keep", envTransformFunc("RLOG_ENTRIES_TO_KEEP"))
	require.Equal(t, "breaker.failure_threshold", envTransformFunc("RLOG_BREAKER_FAILURE_THRESHOLD"))
	require.Equal(t, "", envTransformFunc("RLOG_CONFIG"))
}
