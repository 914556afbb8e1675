package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/satyajit2online/Load-Distribution/internal/beam"
	"github.com/satyajit2online/Load-Distribution/internal/is456"
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Aggregate beam loads without running the design",
	Long: `Compute the factored design load per unit length for a beam from
its slab panels, self-weight, wall load and point loads, without running
the flexure/shear/deflection design.

Takes the same input flags as 'loaddist design'.

Examples:
  # Load takedown for a beam carrying a one-way slab each side
  loaddist loads --span 4.0 --width 230 --depth 450 \
    --slab-thickness 125 --live-load 3.0 --floor-finish 1.0 \
    --left oneway:3.0 --right oneway:3.5 \
    --wall-height 3.0 --wall-thickness 230

  # From a JSON input file
  loaddist loads --input beam.json`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)
	loadsCmd.Flags().AddFlagSet(designCmd.Flags())
}

func runLoads(cmd *cobra.Command, args []string) {
	inputs, err := collectInputs()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	loads := beam.AggregateLoads(*inputs)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("        BEAM LOAD AGGREGATION - IS 456")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SLAB LOADS (per area):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Self-weight:\t%.2f kN/m²\n", loads.SlabSelfWeight)
	fmt.Fprintf(w, "  Live Load:\t%.2f kN/m²\n", inputs.Slab.LiveLoadKNM2)
	fmt.Fprintf(w, "  Floor Finish:\t%.2f kN/m²\n", inputs.Slab.FloorFinishKNM2)
	fmt.Fprintf(w, "  Total:\t%.2f kN/m²\n", loads.TotalSlabLoad)
	w.Flush()
	fmt.Println()

	fmt.Println("BEAM LINE LOADS (service):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Left Slab:\t%.2f kN/m\n", loads.UDLLeftSlab)
	fmt.Fprintf(w, "  Right Slab:\t%.2f kN/m\n", loads.UDLRightSlab)
	fmt.Fprintf(w, "  Beam Self-weight:\t%.2f kN/m\n", loads.BeamSelfWeight)
	fmt.Fprintf(w, "  Wall:\t%.2f kN/m\n", loads.WallUDL)
	fmt.Fprintf(w, "  Total Service UDL:\t%.2f kN/m\n", loads.ServiceUDL)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  DESIGN UDL = %.1f × %.2f = %.2f kN/m  \n", is456.GammaLoad, loads.ServiceUDL, loads.DesignUDL)
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	for i, p := range loads.FactoredPointLoads {
		fmt.Printf("  Factored Point Load %d: %.2f kN @ %.2f m\n", i+1, p.ForceKN, p.DistanceM)
	}
	fmt.Println()
}
