// Package tlsconfig builds the TLS configuration for mutually authenticated
// connections between the job server and its clients.
package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

// Server returns a tls.Config for the gRPC server side: TLS 1.3 minimum,
// client certificates required and verified against the CA at caCertPath.
func Server(certPath, keyPath, caCertPath string) (*tls.Config, error) {
	cert, pool, err := load(certPath, keyPath, caCertPath)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		MinVersion:   tls.VersionTLS13,
		Certificates: []tls.Certificate{cert},
		ClientAuth:   tls.RequireAndVerifyClientCert,
		ClientCAs:    pool,
	}, nil
}

// Client returns a tls.Config for the client side, presenting the client
// certificate and verifying the server against the CA at caCertPath.
func Client(certPath, keyPath, caCertPath, serverName string) (*tls.Config, error) {
	cert, pool, err := load(certPath, keyPath, caCertPath)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		MinVersion:   tls.VersionTLS13,
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		ServerName:   serverName,
	}, nil
}

func load(certPath, keyPath, caCertPath string) (tls.Certificate, *x509.CertPool, error) {
	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("failed to load certificate: %w", err)
	}

	caCert, err := os.ReadFile(caCertPath)
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCert) {
		return tls.Certificate{}, nil, errors.New("failed to parse CA certificate")
	}

	return cert, pool, nil
}
