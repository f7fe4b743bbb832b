package cmd

import (
	"fmt"
	"strings"

	"github.com/kastheco/swatch/colormath"
	"github.com/kastheco/swatch/palette"
	"github.com/kastheco/swatch/render"
	"github.com/spf13/cobra"
)

// NewInspectCmd returns `swatch inspect COLOR`.
func NewInspectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "inspect COLOR",
		Short:   "describe a single color",
		Example: "  swatch inspect '#3366CC'\n  swatch inspect 'rgb(51,102,204)' --json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colormath.ParseColor(args[0])
			if err != nil {
				return err
			}
			info := colormath.Inspect(c)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeIndentedJSON(out, info)
			}

			fmt.Fprintln(out, render.Swatch(palette.NewEntry(c), 0))
			fmt.Fprintf(out, "hex          %s\n", info.Hex)
			fmt.Fprintf(out, "rgb          %s\n", info.RGB)
			fmt.Fprintf(out, "hsl          %.1f° %.1f%% %.1f%%\n", info.HSL.H*360, info.HSL.S*100, info.HSL.L*100)
			fmt.Fprintf(out, "text         %s\n", info.Text)
			fmt.Fprintf(out, "complement   %s (ΔE %.2f)\n", info.Complementary, info.Distance)
			fmt.Fprintf(out, "warm         %t\n", info.Warm)
			fmt.Fprintf(out, "tints        %s\n", strings.Join(info.Tints, " "))
			fmt.Fprintf(out, "shades       %s\n", strings.Join(info.Shades, " "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

// NewFormulasCmd returns `swatch formulas`.
func NewFormulasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formulas",
		Short: "list palette formulas",
		Long:  "List the recognized palette formulas. Any other name generates a grayscale ladder.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range palette.Formulas() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}
