package cmd

import (
	"context"
	"fmt"

	"github.com/kastheco/swatch/config"
	"github.com/kastheco/swatch/config/palettestore"
	"github.com/kastheco/swatch/log"
	"github.com/kastheco/swatch/palette"
	"github.com/spf13/cobra"
)

type configKey struct{}

// NewRootCmd returns the root cobra command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	root := &cobra.Command{
		Use:          "swatch",
		Short:        "swatch - generate, render, and keep color palettes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if debug {
				cfg.Debug = true
			}
			log.Initialize(cfg.Debug)
			cmd.SetContext(context.WithValue(contextOf(cmd), configKey{}, cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Close()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to config.toml")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log verbosely to stderr")

	root.AddCommand(NewGenerateCmd())
	root.AddCommand(NewSVGCmd())
	root.AddCommand(NewInspectCmd())
	root.AddCommand(NewFormulasCmd())
	root.AddCommand(NewServeCmd())
	root.AddCommand(NewLibraryCmd())
	root.AddCommand(NewTUICmd())
	return root
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// configFrom returns the config loaded by the root command, or the defaults
// when a subcommand runs on its own (as in tests).
func configFrom(cmd *cobra.Command) config.Config {
	if cfg, ok := contextOf(cmd).Value(configKey{}).(config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

// newGenerator is seeded when --seed was given, random otherwise.
func newGenerator(cmd *cobra.Command, seed uint64) *palette.Generator {
	if cmd.Flags().Changed("seed") {
		return palette.NewSeededGenerator(seed)
	}
	return palette.NewGenerator(nil)
}

// openStore opens the remote store when remote is set, else the local SQLite file.
func openStore(cfg config.Config, remote string) (palettestore.Store, error) {
	if remote == "" {
		remote = cfg.Store.Remote
	}
	if remote != "" {
		return palettestore.NewHTTPStore(remote), nil
	}
	store, err := palettestore.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open palette store: %w", err)
	}
	return store, nil
}
