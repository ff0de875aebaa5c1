package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gowing",
	Short: "Multi-element wing assembly tool",
	Long: `gowing - Go Multi-Element Wing Assembler

A CLI tool that assembles multi-element wings (main element, slats,
flaps) from 2D airfoil coordinate files.

This tool helps aerodynamicists:
  - Place elements using chord-relative gaps
  - Compute the total chord and angle of attack of the assembly
  - Normalise the assembly to unit chord and zero incidence
  - Export element coordinates for meshing and CFD tools
  - Plot the assembled outline`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gowing v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Multi-Element Wing Assembler                         ║")
		fmt.Fprintf(out, "  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Assembles multi-element wings from airfoil coordinate files.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Selig and Lednicer coordinate files")
		fmt.Fprintln(out, "    • Chord-relative gaps between elements")
		fmt.Fprintln(out, "    • Total chord and angle of attack of the assembly")
		fmt.Fprintln(out, "    • Normalisation and rotation of the whole wing")
		fmt.Fprintln(out, "    • Coordinate export and png/svg/pdf diagrams")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gowing --help' to see available commands.")
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
