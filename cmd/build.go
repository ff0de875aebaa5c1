package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gowing/internal/airfoil"
	"github.com/alexiusacademia/gowing/internal/config"
	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/wing"
)

var (
	buildFile string

	// Overrides for the definition file
	buildOut          string
	buildNormalize    bool
	buildSameFile     bool
	buildSeparator    string
	buildDecimalComma bool
	buildIncludeZ     bool
	buildPrecision    int
	buildPlotFile     string

	// Diagram options
	buildShowDiagram bool
	buildShowPoints  bool
	buildShowCamber  bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble a wing from a definition file and export it",
	Long: `Assemble a multi-element wing described in a definition file
(JSON, TOML or YAML), print the placement report and export the
coordinates of every element.

Each element is loaded from its coordinate file, flipped if requested,
scaled to its chord and rotated to its angle of attack. Elements are then
placed one behind the other using the gaps, and the total chord and angle
of attack of the assembly are computed.

Flags override the matching fields of the definition file.

Examples:
  gowing build -f wing.toml
  gowing build -f wing.yaml --normalize --same-file --out coords
  gowing build -f wing.json --decimal-comma --separator ";" --plot wing.svg`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildFile, "file", "f", "", "Path to wing definition file [required]")
	buildCmd.MarkFlagRequired("file")

	// Export overrides
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Output directory for coordinate files")
	buildCmd.Flags().BoolVar(&buildNormalize, "normalize", false, "Scale to unit chord and rotate to zero angle of attack")
	buildCmd.Flags().BoolVar(&buildSameFile, "same-file", false, "Write all elements to one file named after the wing")
	buildCmd.Flags().StringVar(&buildSeparator, "separator", ", ", "Column separator")
	buildCmd.Flags().BoolVar(&buildDecimalComma, "decimal-comma", false, "Write ',' as decimal mark")
	buildCmd.Flags().BoolVar(&buildIncludeZ, "z", true, "Write a zero z column")
	buildCmd.Flags().IntVar(&buildPrecision, "precision", -1, "Digits after the decimal mark (-1 for shortest exact)")

	// Diagram options
	buildCmd.Flags().StringVar(&buildPlotFile, "plot", "", "Export diagram to file (png, svg, pdf)")
	buildCmd.Flags().BoolVar(&buildShowDiagram, "diagram", false, "Show ASCII diagram of the assembly")
	buildCmd.Flags().BoolVar(&buildShowPoints, "points", false, "Mark coordinate points in the exported diagram")
	buildCmd.Flags().BoolVar(&buildShowCamber, "camber", false, "Draw element camber lines")
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	def, err := config.LoadFromFile(buildFile)
	if err != nil {
		return fmt.Errorf("loading definition: %w", err)
	}
	applyBuildFlags(cmd, def)
	logger.Debug("loaded definition", "file", buildFile, "wing", def.Name, "elements", len(def.Elements))

	w, err := def.Assemble(wing.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("assembling wing: %w", err)
	}

	opts := def.ExportOptions()
	if _, err := w.Export(opts); err != nil {
		return fmt.Errorf("exporting wing: %w", err)
	}

	out := cmd.OutOrStdout()
	printBuildReport(out, def, w, opts)

	data, err := wingDiagramData(w, def.Plot.Points, def.Plot.Camber)
	if err != nil {
		return err
	}
	if buildShowDiagram {
		fmt.Fprint(out, diagram.DrawASCIIWing(data, 72, 20))
		fmt.Fprintln(out)
	}
	if def.Plot.File != "" {
		if err := diagram.ExportWingDiagram(data, def.Plot.File); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		logger.Info("diagram exported", "file", def.Plot.File)
	}

	prog.done(fmt.Sprintf("Exported %d profiles to %s", len(w.Elements()), opts.Dir))
	return nil
}

// applyBuildFlags copies explicitly set flags over the definition.
func applyBuildFlags(cmd *cobra.Command, def *config.Definition) {
	flags := cmd.Flags()
	if flags.Changed("out") {
		def.Export.Dir = buildOut
	}
	if flags.Changed("normalize") {
		def.Normalize = buildNormalize
	}
	if flags.Changed("same-file") {
		def.Export.SameFile = buildSameFile
	}
	if flags.Changed("separator") {
		sep := buildSeparator
		def.Export.Separator = &sep
	}
	if flags.Changed("decimal-comma") {
		def.Export.DecimalComma = buildDecimalComma
	}
	if flags.Changed("z") {
		z := buildIncludeZ
		def.Export.IncludeZ = &z
	}
	if flags.Changed("precision") {
		prec := buildPrecision
		def.Export.Precision = &prec
	}
	if flags.Changed("plot") {
		def.Plot.File = buildPlotFile
	}
	if flags.Changed("points") {
		def.Plot.Points = buildShowPoints
	}
	if flags.Changed("camber") {
		def.Plot.Camber = buildShowCamber
	}
}

func printBuildReport(out io.Writer, def *config.Definition, w *wing.Wing, opts wing.ExportOptions) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "               MULTI-ELEMENT WING ASSEMBLY")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  Wing: %s\n", w.Name())
	if def.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", def.Description)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "ELEMENTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  #\tName\tChord\tAOA (°)\tLE x\tLE y\tMax upper (x, y)\n")
	fmt.Fprintf(tw, "  ─\t────\t─────\t───────\t────\t────\t────────────────\n")
	for i, e := range w.Elements() {
		maxUpper := "-"
		if a, ok := e.(*airfoil.Airfoil); ok {
			m := a.MaxUpper()
			maxUpper = fmt.Sprintf("(%.4f, %.4f)", m.X, m.Y)
		}
		o := e.Origin()
		fmt.Fprintf(tw, "  %d\t%s\t%.4f\t%.2f\t%.4f\t%.4f\t%s\n",
			i+1, e.Name(), e.Chord(), e.AOA(), o.X, o.Y, maxUpper)
	}
	tw.Flush()
	fmt.Fprintln(out)

	if gaps := w.Gaps(); len(gaps) > 0 {
		fmt.Fprintln(out, "GAPS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Between\tdx\tdy\n")
		fmt.Fprintf(tw, "  ───────\t──\t──\n")
		elements := w.Elements()
		for i, g := range gaps {
			fmt.Fprintf(tw, "  %s → %s\t%.4f\t%.4f\n", elements[i].Name(), elements[i+1].Name(), g.X, g.Y)
		}
		tw.Flush()
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "EXPORT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Directory:\t%s\n", opts.Dir)
	mode := "one file per element"
	if opts.SameFile {
		mode = "single file"
	}
	fmt.Fprintf(tw, "  Mode:\t%s\n", mode)
	fmt.Fprintf(tw, "  Separator:\t%q\n", opts.Separator)
	fmt.Fprintf(tw, "  Decimal comma:\t%t\n", opts.DecimalComma)
	fmt.Fprintf(tw, "  z column:\t%t\n", opts.IncludeZ)
	tw.Flush()
	fmt.Fprintln(out)

	origin := w.Origin()
	lines := []string{
		fmt.Sprintf("Total chord: %.6f", w.TotalChord()),
		fmt.Sprintf("Total AOA:   %.4f°", w.TotalAOA()),
		fmt.Sprintf("Origin:      (%.4f, %.4f)", origin.X, origin.Y),
		fmt.Sprintf("Normalized:  %t", def.Normalize),
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("ASSEMBLY TOTALS", lines))
	fmt.Fprintln(out)
}

// wingDiagramData converts the assembled wing into drawable outlines in
// absolute coordinates.
func wingDiagramData(w *wing.Wing, showPoints, showCamber bool) (diagram.WingDiagramData, error) {
	origin := w.Origin()
	data := diagram.WingDiagramData{
		Name:       w.Name(),
		Origin:     diagram.Point{X: origin.X, Y: origin.Y},
		TotalChord: w.TotalChord(),
		TotalAOA:   w.TotalAOA(),
		ShowPoints: showPoints,
		ShowCamber: showCamber,
	}

	for _, e := range w.Elements() {
		outline := diagram.ElementOutline{
			Name:  e.Name(),
			Upper: toPoints(e.Upper()),
			Lower: toPoints(e.Lower()),
		}
		if a, ok := e.(*airfoil.Airfoil); ok && showCamber {
			camber, err := a.CamberLine(101)
			if err != nil {
				return data, fmt.Errorf("element %q camber line: %w", e.Name(), err)
			}
			for i, c := range camber {
				camber[i] = a.FromLocal(c)
			}
			outline.Camber = toPoints(camber)
		}
		data.Elements = append(data.Elements, outline)
	}
	return data, nil
}

func toPoints(vs []r2.Vec) []diagram.Point {
	pts := make([]diagram.Point, len(vs))
	for i, v := range vs {
		pts[i] = diagram.Point{X: v.X, Y: v.Y}
	}
	return pts
}
