package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/config"
	"github.com/kastheco/swatch/log"
	"github.com/kastheco/swatch/palette"
	"github.com/kastheco/swatch/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewTUICmd returns `swatch tui`, the interactive palette editor.
func NewTUICmd() *cobra.Command {
	var (
		formula string
		base    string
		seed    uint64
		remote  string
		noStore bool
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "edit palettes interactively",
		Long: "Open the interactive editor. Space regenerates, 1-5 lock slots, f picks a formula,\n" +
			"s saves to the palette library.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd)

			session := config.NewSession(config.Dir())
			if err := session.Load(); err != nil {
				log.Warn("ignoring unreadable session", zap.Error(err))
				session = config.NewSession(config.Dir())
			}
			if !cmd.Flags().Changed("formula") {
				formula = cfg.Formula
				if f := session.Formula(); f != "" {
					formula = f
				}
			}

			opts := ui.Options{Formula: palette.Formula(formula), Session: session}
			if base != "" {
				c, err := colormath.ParseColor(base)
				if err != nil {
					return fmt.Errorf("--base: %w", err)
				}
				opts.Base = &c
			}

			if !noStore {
				store, err := openStore(cfg, remote)
				if err != nil {
					// The editor still works without a library.
					log.Warn("palette store unavailable", zap.Error(err))
				} else {
					defer store.Close()
					opts.Store = store
				}
			}

			p := tea.NewProgram(ui.New(newGenerator(cmd, seed), opts), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&formula, "formula", "f", "", "starting formula")
	cmd.Flags().StringVarP(&base, "base", "b", "", "starting base color")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed the random source")
	cmd.Flags().StringVar(&remote, "remote", "", "save to a swatch server instead of the local library")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "disable saving")
	return cmd
}
