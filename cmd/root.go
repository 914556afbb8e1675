package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/satyajit2online/Load-Distribution/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "loaddist",
	Short: "RC Beam Load Distribution & Design Tool",
	Long: `loaddist - Reinforced Concrete Beam Load Distribution and Design

A CLI tool for the limit-state design of simply supported reinforced
concrete beams based on IS 456.

This tool helps structural engineers perform:
  - Load aggregation (one-way/two-way slab transfer, self-weight,
    wall loads, point loads)
  - Bending moment and shear force analysis
  - Flexural design (singly/doubly reinforced check, bar selection)
  - Shear design and stirrup spacing
  - Serviceability check (modified span/depth ratio)

All calculations follow IS 456:2000 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   loaddist v%-46s║\n", version.Version)
		fmt.Println("  ║   RC Beam Load Distribution & Design                      ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the limit-state design of simply supported")
		fmt.Println("  reinforced concrete beams based on IS 456.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Slab, wall and point-load aggregation with load factors")
		fmt.Println("    • Moment/shear analysis with terminal and image diagrams")
		fmt.Println("    • Flexure, shear and deflection design in one pass")
		fmt.Println("    • JSON API server with saved-design schedule and reports")
		fmt.Println()
		fmt.Println("  Use 'loaddist --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
