package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/config/palettestore"
	"github.com/kastheco/swatch/log"
	"github.com/kastheco/swatch/palette"
	"github.com/kastheco/swatch/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewLibraryCmd returns `swatch library`, which manages saved palettes in the
// local SQLite store or, with --remote, on a `swatch serve` instance.
func NewLibraryCmd() *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:     "library",
		Aliases: []string{"lib"},
		Short:   "save, list, show, and delete named palettes",
	}
	cmd.PersistentFlags().StringVar(&remote, "remote", "", "base URL of a swatch server (defaults to [store] remote in config)")

	withStore := func(run func(cmd *cobra.Command, store palettestore.Store, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			store, err := openStore(configFrom(cmd), remote)
			if err != nil {
				return err
			}
			defer store.Close()
			return run(cmd, store, args)
		}
	}

	cmd.AddCommand(newLibrarySaveCmd(withStore))
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "list saved palettes",
		Args:  cobra.NoArgs,
		RunE: withStore(func(cmd *cobra.Command, store palettestore.Store, args []string) error {
			list, err := store.List()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Formula, p.CreatedAt.Local().Format(time.DateTime), render.Terminal(p.Colors))
			}
			return tw.Flush()
		}),
	})
	cmd.AddCommand(newLibraryShowCmd(withStore))
	cmd.AddCommand(&cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "delete a saved palette",
		Args:    cobra.ExactArgs(1),
		RunE: withStore(func(cmd *cobra.Command, store palettestore.Store, args []string) error {
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		}),
	})

	return cmd
}

type storeRunner func(run func(cmd *cobra.Command, store palettestore.Store, args []string) error) func(*cobra.Command, []string) error

func newLibrarySaveCmd(withStore storeRunner) *cobra.Command {
	var (
		opts   generateOptions
		colors []string
	)

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "generate a palette and save it under NAME",
		Long: "Generate a palette with the same flags as generate and save it.\n" +
			"Use --colors to save explicit colors instead.",
		Example: "  swatch library save ocean --formula monochromatic --base '#1E6091'\n" +
			"  swatch library save brand --colors '#FF8800,#222222,#FFFFFF,#3366CC,#99CC33'",
		Args: cobra.ExactArgs(1),
		RunE: withStore(func(cmd *cobra.Command, store palettestore.Store, args []string) error {
			if err := palettestore.ValidateName(args[0]); err != nil {
				return err
			}
			rec, err := paletteToSave(cmd, opts, colors)
			if err != nil {
				return err
			}
			rec.Name = args[0]
			if err := store.Create(rec); err != nil {
				return err
			}
			log.Info("palette saved", zap.String("name", rec.Name))
			fmt.Fprintln(cmd.OutOrStdout(), render.Terminal(rec.Colors))
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", rec.Name)
			return nil
		}),
	}

	addGenerateFlags(cmd, &opts)
	cmd.Flags().StringSliceVar(&colors, "colors", nil, "explicit hex colors to save, comma separated")
	return cmd
}

// paletteToSave builds the record from --colors when given, otherwise by
// generating one.
func paletteToSave(cmd *cobra.Command, opts generateOptions, colors []string) (palettestore.SavedPalette, error) {
	if cmd.Flags().Changed("colors") {
		if len(colors) == 0 || len(colors) > palette.Size {
			return palettestore.SavedPalette{}, fmt.Errorf("--colors: want 1-%d colors", palette.Size)
		}
		p := make(palette.Palette, 0, len(colors))
		for _, s := range colors {
			c, err := colormath.ParseColor(s)
			if err != nil {
				return palettestore.SavedPalette{}, fmt.Errorf("--colors: %w", err)
			}
			p = append(p, palette.NewEntry(c))
		}
		return palettestore.SavedPalette{Formula: "custom", Colors: p}, nil
	}

	doc, err := generateDoc(cmd, opts)
	if err != nil {
		return palettestore.SavedPalette{}, err
	}
	return palettestore.SavedPalette{Formula: doc.Formula, Colors: doc.Colors}, nil
}

func newLibraryShowCmd(withStore storeRunner) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "print a saved palette",
		Args:  cobra.ExactArgs(1),
		RunE: withStore(func(cmd *cobra.Command, store palettestore.Store, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			p, err := store.Get(args[0])
			if err != nil {
				return err
			}
			cfg := configFrom(cmd)
			doc := render.Document{Formula: p.Formula, Colors: p.Colors}
			return render.Write(cmd.OutOrStdout(), f, doc, cfg.Render.Width, cfg.Render.Height)
		}),
	}

	cmd.Flags().StringVar(&format, "format", string(render.FormatText), "output format: text, json, yaml, svg, png")
	return cmd
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
