package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/runlet/runlet/internal/config"
)

func rootCmd() *cobra.Command {
	var configPath string

	c := &cobra.Command{
		Use:     "jobserver",
		Short:   "gRPC server for executing arbitrary Linux commands on a remote host",
		Example: "jobserver --workdir /var/lib/runlet --debug",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			applyFlagOverrides(cmd.Flags(), cfg)

			if err := cfg.Validate(); err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Debug {
				level = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(
				os.Stderr,
				&slog.HandlerOptions{Level: level},
			))

			return runServer(cfg, logger)
		},
	}

	c.Flags().StringVar(&configPath, "config", "", "Path to config file")

	c.Flags().String("host", "localhost", "gRPC server host to bind")
	c.Flags().Uint16("port", 8443, "gRPC server port")
	c.Flags().String("workdir", "work", "Working directory for job processes")

	c.Flags().
		String("metrics-addr", "", "Listen address for Prometheus metrics and health endpoints (empty disables them)")

	c.Flags().
		String("server-cert", "certs/server.crt", "Path to server TLS certificate")

	c.Flags().
		String("server-key", "certs/server.key", "Path to server TLS private key")

	c.Flags().
		String("ca-cert", "certs/ca.crt", "Path to CA certificate for mTLS")

	c.Flags().Bool("debug", false, "Enable debug logs")

	return c
}

// applyFlagOverrides layers explicitly set flags over whatever the config
// file and environment provided.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("host") {
		cfg.Host, _ = flags.GetString("host")
	}

	if flags.Changed("port") {
		cfg.Port, _ = flags.GetUint16("port")
	}

	if flags.Changed("workdir") {
		cfg.WorkDir, _ = flags.GetString("workdir")
	}

	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}

	if flags.Changed("server-cert") {
		cfg.ServerCertPath, _ = flags.GetString("server-cert")
	}

	if flags.Changed("server-key") {
		cfg.ServerKeyPath, _ = flags.GetString("server-key")
	}

	if flags.Changed("ca-cert") {
		cfg.CACertPath, _ = flags.GetString("ca-cert")
	}

	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
}
