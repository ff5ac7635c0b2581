package tlsconfig_test

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/runlet/runlet/internal/testcert"
	"github.com/runlet/runlet/internal/tlsconfig"
	"github.com/stretchr/testify/require"
)

func TestServerConfig(t *testing.T) {
	t.Parallel()

	bundle, err := testcert.Generate(t.TempDir())
	require.NoError(t, err)

	cfg, err := tlsconfig.Server(bundle.ServerCert, bundle.ServerKey, bundle.CACert)
	require.NoError(t, err)

	require.Equal(t, uint16(tls.VersionTLS13), cfg.MinVersion)
	require.Equal(t, tls.RequireAndVerifyClientCert, cfg.ClientAuth)
	require.NotNil(t, cfg.ClientCAs)
	require.Len(t, cfg.Certificates, 1)
}

func TestClientConfig(t *testing.T) {
	t.Parallel()

	bundle, err := testcert.Generate(t.TempDir())
	require.NoError(t, err)

	cfg, err := tlsconfig.Client(bundle.OperatorCert, bundle.OperatorKey, bundle.CACert, "localhost")
	require.NoError(t, err)

	require.Equal(t, uint16(tls.VersionTLS13), cfg.MinVersion)
	require.Equal(t, "localhost", cfg.ServerName)
	require.NotNil(t, cfg.RootCAs)
	require.Len(t, cfg.Certificates, 1)
}

func TestMissingKeyPair(t *testing.T) {
	t.Parallel()

	bundle, err := testcert.Generate(t.TempDir())
	require.NoError(t, err)

	_, err = tlsconfig.Server("no-such.crt", "no-such.key", bundle.CACert)
	require.ErrorContains(t, err, "failed to load certificate")
}

func TestInvalidCACert(t *testing.T) {
	t.Parallel()

	bundle, err := testcert.Generate(t.TempDir())
	require.NoError(t, err)

	badCA := filepath.Join(t.TempDir(), "ca.crt")
	require.NoError(t, os.WriteFile(badCA, []byte("not a certificate"), 0o600))

	_, err = tlsconfig.Client(bundle.OperatorCert, bundle.OperatorKey, badCA, "localhost")
	require.ErrorContains(t, err, "failed to parse CA certificate")
}
