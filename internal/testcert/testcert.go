// Package testcert generates throwaway TLS certificates for tests. A single
// CA signs a server certificate for localhost and one client certificate per
// role, with the role carried in the OU field the same way the production
// certs carry it.
package testcert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

// Bundle holds the file paths of a generated certificate set.
type Bundle struct {
	CACert string

	ServerCert string
	ServerKey  string

	OperatorCert string
	OperatorKey  string

	ViewerCert string
	ViewerKey  string
}

// Generate writes a complete certificate set into dir and returns the paths.
// Certificates are valid for one hour, which is plenty for a test run.
func Generate(dir string) (*Bundle, error) {
	caKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate ca key: %w", err)
	}

	caTemplate := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			CommonName: "runlet test ca",
		},
		NotBefore:             time.Now().Add(-time.Minute),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	caDER, err := x509.CreateCertificate(rand.Reader, caTemplate, caTemplate, &caKey.PublicKey, caKey)
	if err != nil {
		return nil, fmt.Errorf("create ca certificate: %w", err)
	}

	caCert, err := x509.ParseCertificate(caDER)
	if err != nil {
		return nil, fmt.Errorf("parse ca certificate: %w", err)
	}

	bundle := &Bundle{
		CACert:       filepath.Join(dir, "ca.crt"),
		ServerCert:   filepath.Join(dir, "server.crt"),
		ServerKey:    filepath.Join(dir, "server.key"),
		OperatorCert: filepath.Join(dir, "client-operator.crt"),
		OperatorKey:  filepath.Join(dir, "client-operator.key"),
		ViewerCert:   filepath.Join(dir, "client-viewer.crt"),
		ViewerKey:    filepath.Join(dir, "client-viewer.key"),
	}

	if err := writePEM(bundle.CACert, "CERTIFICATE", caDER); err != nil {
		return nil, err
	}

	serverTemplate := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject: pkix.Name{
			CommonName: "localhost",
		},
		NotBefore:   time.Now().Add(-time.Minute),
		NotAfter:    time.Now().Add(time.Hour),
		KeyUsage:    x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		DNSNames:    []string{"localhost"},
		IPAddresses: []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
	}

	if err := issue(serverTemplate, caCert, caKey, bundle.ServerCert, bundle.ServerKey); err != nil {
		return nil, err
	}

	clients := []struct {
		serial   int64
		cn       string
		role     string
		certPath string
		keyPath  string
	}{
		{3, "operator-test", "operator", bundle.OperatorCert, bundle.OperatorKey},
		{4, "viewer-test", "viewer", bundle.ViewerCert, bundle.ViewerKey},
	}

	for _, client := range clients {
		template := &x509.Certificate{
			SerialNumber: big.NewInt(client.serial),
			Subject: pkix.Name{
				CommonName:         client.cn,
				OrganizationalUnit: []string{client.role},
			},
			NotBefore:   time.Now().Add(-time.Minute),
			NotAfter:    time.Now().Add(time.Hour),
			KeyUsage:    x509.KeyUsageDigitalSignature,
			ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
		}

		if err := issue(template, caCert, caKey, client.certPath, client.keyPath); err != nil {
			return nil, err
		}
	}

	return bundle, nil
}

func issue(
	template, parent *x509.Certificate,
	parentKey *ecdsa.PrivateKey,
	certPath, keyPath string,
) error {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate key for %s: %w", template.Subject.CommonName, err)
	}

	der, err := x509.CreateCertificate(rand.Reader, template, parent, &key.PublicKey, parentKey)
	if err != nil {
		return fmt.Errorf("create certificate for %s: %w", template.Subject.CommonName, err)
	}

	if err := writePEM(certPath, "CERTIFICATE", der); err != nil {
		return err
	}

	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return fmt.Errorf("marshal key for %s: %w", template.Subject.CommonName, err)
	}

	return writePEM(keyPath, "EC PRIVATE KEY", keyDER)
}

func writePEM(path, blockType string, der []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := pem.Encode(f, &pem.Block{Type: blockType, Bytes: der}); err != nil {
		f.Close()

		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
