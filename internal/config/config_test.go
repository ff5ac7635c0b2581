package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runlet/runlet/internal/config"
	"github.com/runlet/runlet/internal/testcert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "localhost", cfg.Host)
	require.Equal(t, uint16(8443), cfg.Port)
	require.Equal(t, "work", cfg.WorkDir)
	require.Empty(t, cfg.MetricsAddr)
	require.Equal(t, "certs/server.crt", cfg.ServerCertPath)
	require.Equal(t, "certs/server.key", cfg.ServerKeyPath)
	require.Equal(t, "certs/ca.crt", cfg.CACertPath)
	require.False(t, cfg.Debug)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RUNLET_HOST", "0.0.0.0")
	t.Setenv("RUNLET_PORT", "9443")
	t.Setenv("RUNLET_WORKDIR", "/tmp/jobs")
	t.Setenv("RUNLET_METRICS_ADDR", "localhost:9090")
	t.Setenv("RUNLET_DEBUG", "true")

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Host)
	require.Equal(t, uint16(9443), cfg.Port)
	require.Equal(t, "/tmp/jobs", cfg.WorkDir)
	require.Equal(t, "localhost:9090", cfg.MetricsAddr)
	require.True(t, cfg.Debug)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runlet.yaml")

	contents := `host: jobs.internal
port: 7443
workdir: /srv/jobs
debug: true
`

	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "jobs.internal", cfg.Host)
	require.Equal(t, uint16(7443), cfg.Port)
	require.Equal(t, "/srv/jobs", cfg.WorkDir)
	require.True(t, cfg.Debug)

	// Keys the file doesn't set keep their defaults.
	require.Equal(t, "certs/ca.crt", cfg.CACertPath)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.ErrorContains(t, err, "failed to read config file")
}

func TestValidate(t *testing.T) {
	certs, err := testcert.Generate(t.TempDir())
	require.NoError(t, err)

	valid := func(t *testing.T) *config.Config {
		t.Helper()

		return &config.Config{
			Host:           "localhost",
			Port:           8443,
			WorkDir:        t.TempDir(),
			ServerCertPath: certs.ServerCert,
			ServerKeyPath:  certs.ServerKey,
			CACertPath:     certs.CACert,
		}
	}

	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, valid(t).Validate())
	})

	t.Run("zero port", func(t *testing.T) {
		cfg := valid(t)
		cfg.Port = 0

		require.ErrorContains(t, cfg.Validate(), "port")
	})

	t.Run("empty workdir", func(t *testing.T) {
		cfg := valid(t)
		cfg.WorkDir = ""

		require.ErrorContains(t, cfg.Validate(), "workdir")
	})

	t.Run("workdir does not exist", func(t *testing.T) {
		cfg := valid(t)
		cfg.WorkDir = filepath.Join(t.TempDir(), "missing")

		require.ErrorContains(t, cfg.Validate(), "failed to stat workdir")
	})

	t.Run("workdir is a file", func(t *testing.T) {
		cfg := valid(t)

		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

		cfg.WorkDir = path

		require.ErrorContains(t, cfg.Validate(), "not a directory")
	})

	t.Run("missing certificate", func(t *testing.T) {
		cfg := valid(t)
		cfg.ServerCertPath = filepath.Join(t.TempDir(), "missing.crt")

		require.ErrorContains(t, cfg.Validate(), "failed to stat server_cert")
	})

	t.Run("empty ca cert path", func(t *testing.T) {
		cfg := valid(t)
		cfg.CACertPath = ""

		require.ErrorContains(t, cfg.Validate(), "ca_cert cannot be empty")
	})
}
