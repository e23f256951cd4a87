// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"planbridge/server/internal/artifact"
	"planbridge/server/internal/auth"
	"planbridge/server/internal/config"
	"planbridge/server/internal/dsn"
	"planbridge/server/internal/engine"
	"planbridge/server/internal/engine/fake"
	"planbridge/server/internal/engine/pgengine"
	"planbridge/server/internal/keychain"
	"planbridge/server/internal/logging"
	"planbridge/server/internal/service"
	"planbridge/server/internal/session"
	"planbridge/server/internal/wire"
)

var (
	serveConfigPath string
	serveListen     string
)

// serveCmd starts the gRPC server. Settings come from a TOML config file,
// with the listen address overridable on the command line.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Planbridge gRPC server",
	Long: `The serve command starts the plan protocol server. It reads settings from
a TOML config file (default: $XDG_CONFIG_HOME/planbridge/server.toml),
opens the artifact ledger, and serves until interrupted.

The engine driver is either "memory" (a self-contained in-process engine,
useful for development) or "postgres" (plans are evaluated against a
PostgreSQL database; the DSN comes from the config file or the OS keychain).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadServer(serveConfigPath)
		if err != nil {
			return err
		}
		if serveListen != "" {
			cfg.Listen = serveListen
		}

		log := logging.New("planbridge", cfg.Log.Level)

		factory, err := engineFactory(cfg.Engine)
		if err != nil {
			return err
		}

		ledger, err := artifact.OpenLedger(cfg.Artifacts.Ledger)
		if err != nil {
			return fmt.Errorf("open artifact ledger: %w", err)
		}
		defer ledger.Close()

		registry := session.NewRegistry(factory, cfg.Artifacts.Dir, ledger)
		defer registry.CloseAll()

		token, err := auth.LoadToken()
		if err != nil {
			log.Warn().Err(err).Msg("token lookup failed, serving unauthenticated")
		}

		server := grpc.NewServer(
			grpc.ChainUnaryInterceptor(service.UnaryLogging(log), service.UnaryAuth(token)),
			grpc.ChainStreamInterceptor(service.StreamLogging(log), service.StreamAuth(token)),
		)
		wire.RegisterPlanServiceServer(server, service.New(registry, log))

		lis, err := net.Listen("tcp", cfg.Listen)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.Listen, err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() { errc <- server.Serve(lis) }()

		log.Info().
			Str("listen", lis.Addr().String()).
			Str("driver", cfg.Engine.Driver).
			Bool("authenticated", token != "").
			Msg("server started")

		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			server.GracefulStop()
			<-errc
			return nil
		case err := <-errc:
			return err
		}
	},
}

// engineFactory builds the per-session engine factory for the configured
// driver. For postgres the DSN falls back to the OS keychain when the
// config file leaves it unset.
func engineFactory(cfg config.EngineConfig) (engine.Factory, error) {
	switch cfg.Driver {
	case "memory":
		return engine.FactoryFunc(func(ctx context.Context, userID, sessionID string) (engine.Engine, error) {
			return fake.New(), nil
		}), nil
	case "postgres":
		raw := cfg.DSN
		if raw == "" {
			km, err := keychain.GetManager()
			if err != nil {
				return nil, errors.New("engine.dsn is not set and the OS keychain is unavailable")
			}
			raw, err = km.LoadEngineDSN()
			if err != nil || raw == "" {
				return nil, errors.New("engine.dsn is not set; configure it or store one with 'planbridge connect'")
			}
		}
		normalized, err := dsn.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("engine.dsn: %w", err)
		}
		return pgengine.NewFactory(normalized), nil
	default:
		return nil, fmt.Errorf("unknown engine driver %q", cfg.Driver)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to server config file")
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "Listen address (overrides config)")
}
