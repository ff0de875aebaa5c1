package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/airfoil"
	"github.com/alexiusacademia/gowing/internal/diagram"
)

var (
	inspectFile         string
	inspectName         string
	inspectDecimalComma bool
	inspectShowDiagram  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the geometric properties of an airfoil coordinate file",
	Long: `Load a single airfoil coordinate file (Selig or Lednicer format) and
print its chord, angle of attack, area, centroid, maximum thickness and
maximum camber.

Examples:
  gowing inspect --file naca2412.dat
  gowing inspect -f flap.dat --decimal-comma --diagram`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "Path to airfoil coordinate file [required]")
	inspectCmd.MarkFlagRequired("file")
	inspectCmd.Flags().StringVarP(&inspectName, "name", "n", "", "Profile name (default: file name)")
	inspectCmd.Flags().BoolVar(&inspectDecimalComma, "decimal-comma", false, "Read ',' as decimal mark")
	inspectCmd.Flags().BoolVar(&inspectShowDiagram, "diagram", false, "Show ASCII diagram of the profile")
}

func runInspect(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	name := inspectName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(inspectFile), filepath.Ext(inspectFile))
	}

	foil, err := airfoil.NewFromFile(inspectFile, name, airfoil.LoadOptions{DecimalComma: inspectDecimalComma})
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	logger.Debug("loaded profile", "file", inspectFile, "upper", len(foil.Upper()), "lower", len(foil.Lower()))

	props := foil.CalculateProperties()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "                    AIRFOIL PROFILE")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Profile: %s\n", foil.Name())
	fmt.Fprintf(out, "  File: %s\n", inspectFile)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "POINTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Upper surface:\t%d points\n", len(foil.Upper()))
	fmt.Fprintf(w, "  Lower surface:\t%d points\n", len(foil.Lower()))
	fmt.Fprintf(w, "  Outline:\t%d points\n", len(foil.Points()))
	w.Flush()
	fmt.Fprintln(out)

	le, te := foil.Origin(), foil.TrailingEdge()
	fmt.Fprintln(out, "CHORD:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Leading edge:\t(%.6f, %.6f)\n", le.X, le.Y)
	fmt.Fprintf(w, "  Trailing edge:\t(%.6f, %.6f)\n", te.X, te.Y)
	fmt.Fprintf(w, "  Chord:\t%.6f\n", foil.Chord())
	fmt.Fprintf(w, "  Angle of attack:\t%.4f°\n", foil.AOA())
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "GEOMETRY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area:\t%.6f\n", props.Area)
	fmt.Fprintf(w, "  Centroid:\t(%.6f, %.6f)\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  x range:\t%.6f to %.6f\n", props.MinX, props.MaxX)
	fmt.Fprintf(w, "  y range:\t%.6f to %.6f\n", props.MinY, props.MaxY)
	fmt.Fprintf(w, "  Max thickness:\t%.2f%% at %.1f%% chord\n", props.MaxThickness*100, props.MaxThicknessAt*100)
	fmt.Fprintf(w, "  Max camber:\t%.2f%% at %.1f%% chord\n", props.MaxCamber*100, props.MaxCamberAt*100)
	w.Flush()
	fmt.Fprintln(out)

	if inspectShowDiagram {
		camber, err := foil.CamberLine(101)
		if err != nil {
			return err
		}
		for i, c := range camber {
			camber[i] = foil.FromLocal(c)
		}
		data := diagram.WingDiagramData{
			Name: foil.Name(),
			Elements: []diagram.ElementOutline{{
				Name:   foil.Name(),
				Upper:  toPoints(foil.Upper()),
				Lower:  toPoints(foil.Lower()),
				Camber: toPoints(camber),
			}},
			ShowCamber: true,
		}
		fmt.Fprint(out, diagram.DrawASCIIWing(data, 72, 12))
		fmt.Fprintln(out)
	}
	return nil
}
