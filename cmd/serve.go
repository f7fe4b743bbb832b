package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kastheco/swatch/config"
	"github.com/kastheco/swatch/config/palettestore"
	"github.com/kastheco/swatch/log"
	"github.com/kastheco/swatch/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// NewServeCmd returns the `swatch serve` cobra command.
// It serves palette generation and the SQLite-backed library over HTTP.
func NewServeCmd() *cobra.Command {
	var (
		port int
		db   string
		bind string
		seed uint64
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the palette HTTP API",
		Long:  "Start an HTTP server that generates and renders palettes and exposes the saved-palette library, backed by SQLite.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("bind") {
				cfg.Server.Bind = bind
			}
			if cmd.Flags().Changed("db") {
				cfg.Store.Path = db
			}

			store, err := palettestore.NewSQLiteStore(cfg.Store.Path)
			if err != nil {
				return fmt.Errorf("open palette store: %w", err)
			}
			defer store.Close()

			addr := cfg.Server.Addr()
			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(newGenerator(cmd, seed), store, cfg),
				ReadHeaderTimeout: 10 * time.Second,
			}

			fmt.Fprintf(cmd.OutOrStdout(), "swatch listening on http://%s (db: %s)\n", addr, cfg.Store.Path)
			log.Info("server starting", zap.String("addr", addr), zap.String("db", cfg.Store.Path))

			// Graceful shutdown on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				fmt.Fprintln(cmd.OutOrStdout(), "\nshutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	defaults := config.DefaultConfig()
	cmd.Flags().IntVar(&port, "port", defaults.Server.Port, "port to listen on")
	cmd.Flags().StringVar(&db, "db", defaults.Store.Path, "path to the SQLite database file")
	cmd.Flags().StringVar(&bind, "bind", defaults.Server.Bind, "address to bind to")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed the palette generator (for reproducible demos)")

	return cmd
}
