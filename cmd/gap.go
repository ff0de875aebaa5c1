package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/wing"
)

var (
	gapChord float64
	gapAOA   float64
	gapX     float64
	gapY     float64
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Convert a chord-relative gap into an absolute displacement",
	Long: `Convert a gap given as fractions of a reference chord into the absolute
displacement used to place the next element.

The gap (x, y) is measured in the reference element's frame: x along its
chord, y normal to it. The result is (chord·x, chord·y) rotated by the
reference angle of attack.

Examples:
  # 2% overlap and 1.5% vertical slot behind a unit chord main element
  gowing gap --chord 1 --aoa 0 --x -0.02 --y -0.015

  # Same gap behind a flap deflected 25°
  gowing gap --chord 0.3 --aoa -25 --x 0.01 --y -0.01`,
	RunE: runGap,
}

func init() {
	rootCmd.AddCommand(gapCmd)

	gapCmd.Flags().Float64VarP(&gapChord, "chord", "c", 1, "Reference chord")
	gapCmd.Flags().Float64VarP(&gapAOA, "aoa", "a", 0, "Reference angle of attack (degrees)")
	gapCmd.Flags().Float64VarP(&gapX, "x", "x", 0, "Gap along the reference chord (fraction of chord)")
	gapCmd.Flags().Float64VarP(&gapY, "y", "y", 0, "Gap normal to the reference chord (fraction of chord)")
}

func runGap(cmd *cobra.Command, args []string) error {
	if gapChord <= 0 {
		return fmt.Errorf("reference chord must be positive, got %g", gapChord)
	}

	v := wing.ResolveGap(gapChord, gapAOA, wing.Gap{X: gapX, Y: gapY})
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "REFERENCE:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Chord:\t%g\n", gapChord)
	fmt.Fprintf(w, "  Angle of attack:\t%g°\n", gapAOA)
	fmt.Fprintf(w, "  Gap (x, y):\t(%g, %g)\n", gapX, gapY)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  ╔═══════════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  dx = %-30.6f  ║\n", v.X)
	fmt.Fprintf(out, "  ║  dy = %-30.6f  ║\n", v.Y)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════════╝\n")
	fmt.Fprintln(out)
	return nil
}
