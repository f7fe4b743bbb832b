package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/log"
	"github.com/kastheco/swatch/palette"
	"github.com/kastheco/swatch/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type generateOptions struct {
	formula string
	base    string
	locks   []string
	seed    uint64
	format  string
	width   int
	height  int
	output  string
}

// NewGenerateCmd returns the `swatch generate` command.
func NewGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a five-color palette",
		Long: "Generate a five-color palette from a formula and an optional base color.\n" +
			"Slots given with --lock keep their color; the rest are derived.",
		Example: "  swatch generate --formula monochromatic --base '#3366CC'\n" +
			"  swatch generate --lock 0:#FF8800 --format yaml\n" +
			"  swatch generate --format png -o palette.png",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	addGenerateFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.format, "format", string(render.FormatText), "output format: text, json, yaml, svg, png")
	return cmd
}

// NewSVGCmd returns `swatch svg`, shorthand for `generate --format svg`.
func NewSVGCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "svg",
		Short: "generate a palette and print it as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.format = string(render.FormatSVG)
			return runGenerate(cmd, opts)
		},
	}

	addGenerateFlags(cmd, &opts)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().StringVarP(&opts.formula, "formula", "f", "", "palette formula (see swatch formulas); defaults to the config value")
	cmd.Flags().StringVarP(&opts.base, "base", "b", "", "base color as hex or rgb(r,g,b); random when omitted")
	cmd.Flags().StringArrayVarP(&opts.locks, "lock", "l", nil, "pin a slot as SLOT:COLOR (0-4), repeatable")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed the random source for reproducible output")
	cmd.Flags().IntVar(&opts.width, "width", 0, "image width for svg/png; defaults to the config value")
	cmd.Flags().IntVar(&opts.height, "height", 0, "image height for svg/png; defaults to the config value")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to a file instead of stdout")
}

// generateDoc builds a palette from the shared generate flags.
func generateDoc(cmd *cobra.Command, opts generateOptions) (render.Document, error) {
	cfg := configFrom(cmd)

	name := opts.formula
	if !cmd.Flags().Changed("formula") {
		name = cfg.Formula
	}
	formula, known := palette.ParseFormula(name)
	if !known {
		log.Warn("unrecognized formula, using grayscale", zap.String("formula", name))
	}

	var base *colormath.RGB
	if opts.base != "" {
		c, err := colormath.ParseColor(opts.base)
		if err != nil {
			return render.Document{}, fmt.Errorf("--base: %w", err)
		}
		base = &c
	}

	locked, err := palette.ParseLocks(opts.locks)
	if err != nil {
		return render.Document{}, fmt.Errorf("--lock: %w", err)
	}

	doc := render.Document{
		Formula: string(formula),
		Colors:  newGenerator(cmd, opts.seed).Generate(formula, base, locked),
	}
	log.Debug("generated palette",
		zap.String("formula", doc.Formula),
		zap.Strings("colors", doc.Colors.Hexes()))
	return doc, nil
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	cfg := configFrom(cmd)

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	width, height := opts.width, opts.height
	if width <= 0 {
		width = cfg.Render.Width
	}
	if height <= 0 {
		height = cfg.Render.Height
	}

	doc, err := generateDoc(cmd, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		return render.Write(cmd.OutOrStdout(), format, doc, width, height)
	}
	return writeFile(opts.output, func(w io.Writer) error {
		return render.Write(w, format, doc, width, height)
	})
}

// writeFile creates path and runs write against a buffered writer, reporting
// flush and close errors too.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
