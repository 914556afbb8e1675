package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/satyajit2online/Load-Distribution/internal/beam"
	"github.com/satyajit2online/Load-Distribution/internal/diagram"
	"github.com/satyajit2online/Load-Distribution/internal/is456"
	"github.com/satyajit2online/Load-Distribution/internal/report"
)

var (
	// Input file (overrides individual flags when set)
	designInputFile string

	// Beam geometry
	designWidth float64
	designDepth float64
	designSpan  float64
	designCover float64

	// Slab
	designSlabThickness float64
	designLiveLoad      float64
	designFloorFinish   float64
	designLeftSlab      string
	designRightSlab     string

	// Wall
	designWallHeight    float64
	designWallThickness float64
	designWallDensity   float64

	// Point loads, each "force@distance" (kN @ m)
	designPointLoads []string

	// Materials
	designConcrete   string
	designSteel      string
	designMainBar    float64
	designStirrupBar float64

	// Output options
	designShowDiagram bool
	designMomentFile  string
	designShearFile   string
	designPDFFile     string
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Run the full beam design pipeline",
	Long: `Aggregate loads, analyze the span and design a simply supported
reinforced concrete beam per IS 456 in one pass.

Slab sides are described as TYPE[:LX[:LY:EDGE]]:
  none                 no slab on this side
  oneway:3.0           one-way slab, short span 3.0 m
  twoway:3.0:4.5:short two-way slab 3.0x4.5 m bearing on this beam's
                       short edge (triangular transfer); use "long" for
                       the trapezoidal long-edge transfer

Point loads are given as FORCE@DISTANCE, repeatable.

Examples:
  # Beam with a two-way slab on the left and a wall
  loaddist design --span 3.0 --width 230 --depth 450 --cover 25 \
    --slab-thickness 125 --live-load 3.0 --floor-finish 1.0 \
    --left twoway:3.0:4.5:short --right none \
    --wall-height 3.0 --wall-thickness 230 --wall-density 20 \
    --concrete M20 --steel Fe500 --main-bar 16 --stirrup-bar 8

  # With a point load and diagrams
  loaddist design ... --point 25@1.5 --diagram --moment-out bmd.png

  # From a JSON input file
  loaddist design --input beam.json --pdf design.pdf`,
	Run: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().StringVarP(&designInputFile, "input", "i", "", "JSON input file (overrides other input flags)")

	designCmd.Flags().Float64VarP(&designWidth, "width", "b", 230, "Beam width (mm)")
	designCmd.Flags().Float64Var(&designDepth, "depth", 450, "Beam total depth (mm)")
	designCmd.Flags().Float64VarP(&designSpan, "span", "L", 0, "Clear span (m) [required]")
	designCmd.Flags().Float64VarP(&designCover, "cover", "c", 25, "Effective cover to steel centroid (mm)")

	designCmd.Flags().Float64Var(&designSlabThickness, "slab-thickness", 0, "Slab thickness (mm)")
	designCmd.Flags().Float64Var(&designLiveLoad, "live-load", 0, "Slab live load (kN/m²)")
	designCmd.Flags().Float64Var(&designFloorFinish, "floor-finish", 0, "Floor finish load (kN/m²)")
	designCmd.Flags().StringVar(&designLeftSlab, "left", "none", "Left slab side (TYPE[:LX[:LY:EDGE]])")
	designCmd.Flags().StringVar(&designRightSlab, "right", "none", "Right slab side (TYPE[:LX[:LY:EDGE]])")

	designCmd.Flags().Float64Var(&designWallHeight, "wall-height", 0, "Wall height (m)")
	designCmd.Flags().Float64Var(&designWallThickness, "wall-thickness", 0, "Wall thickness (mm)")
	designCmd.Flags().Float64Var(&designWallDensity, "wall-density", is456.DefaultMasonryUnitWeight, "Masonry unit weight (kN/m³)")

	designCmd.Flags().StringArrayVarP(&designPointLoads, "point", "p", nil, "Point load FORCE@DISTANCE (kN @ m), repeatable")

	designCmd.Flags().StringVar(&designConcrete, "concrete", "M20", "Concrete grade (M20, M25, M30, M40)")
	designCmd.Flags().StringVar(&designSteel, "steel", "Fe500", "Steel grade (Fe415, Fe500, Fe550)")
	designCmd.Flags().Float64Var(&designMainBar, "main-bar", 16, "Main bar diameter (mm)")
	designCmd.Flags().Float64Var(&designStirrupBar, "stirrup-bar", 8, "Stirrup bar diameter (mm)")

	designCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show terminal moment/shear diagrams")
	designCmd.Flags().StringVar(&designMomentFile, "moment-out", "", "Export moment diagram to file (png, svg, pdf)")
	designCmd.Flags().StringVar(&designShearFile, "shear-out", "", "Export shear diagram to file (png, svg, pdf)")
	designCmd.Flags().StringVar(&designPDFFile, "pdf", "", "Write a PDF design summary to file")
}

func runDesign(cmd *cobra.Command, args []string) {
	inputs, err := collectInputs()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	loads, analysis, design, err := beam.Design(*inputs)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printDesignReport(*inputs, loads, analysis, design)

	if designShowDiagram {
		fmt.Println(diagram.DrawLoadingSketch(inputs.SpanM, loads.DesignUDL, loads.FactoredPointLoads))
		fmt.Println(diagram.DrawMomentDiagram(analysis.MomentCurve, analysis.MaxMomentKNm))
		fmt.Println(diagram.DrawShearDiagram(analysis.ShearCurve, analysis.MaxShearKN))
	}

	if designMomentFile != "" {
		if err := diagram.ExportMomentDiagram(analysis, designMomentFile); err != nil {
			fmt.Printf("Error exporting moment diagram: %v\n", err)
		} else {
			fmt.Printf("Moment diagram exported to: %s\n", designMomentFile)
		}
	}
	if designShearFile != "" {
		if err := diagram.ExportShearDiagram(analysis, designShearFile); err != nil {
			fmt.Printf("Error exporting shear diagram: %v\n", err)
		} else {
			fmt.Printf("Shear diagram exported to: %s\n", designShearFile)
		}
	}

	if designPDFFile != "" {
		f, err := os.Create(designPDFFile)
		if err != nil {
			fmt.Printf("Error writing PDF: %v\n", err)
			return
		}
		defer f.Close()
		snap := report.Snapshot{Inputs: *inputs, Loads: loads, Analysis: analysis, Design: design}
		if err := report.WritePDF(f, snap); err != nil {
			fmt.Printf("Error writing PDF: %v\n", err)
			return
		}
		fmt.Printf("Design summary written to: %s\n", designPDFFile)
	}
}

func collectInputs() (*beam.DesignInputs, error) {
	if designInputFile != "" {
		return beam.LoadInputsFromFile(designInputFile)
	}

	left, err := parseSlabSide(designLeftSlab)
	if err != nil {
		return nil, fmt.Errorf("left slab: %v", err)
	}
	right, err := parseSlabSide(designRightSlab)
	if err != nil {
		return nil, fmt.Errorf("right slab: %v", err)
	}

	points, err := parsePointLoads(designPointLoads)
	if err != nil {
		return nil, err
	}

	inputs := &beam.DesignInputs{
		WidthMM: designWidth,
		DepthMM: designDepth,
		SpanM:   designSpan,
		CoverMM: designCover,
		Slab: beam.Slab{
			ThicknessMM:     designSlabThickness,
			LiveLoadKNM2:    designLiveLoad,
			FloorFinishKNM2: designFloorFinish,
			Left:            left,
			Right:           right,
		},
		Wall: beam.Wall{
			HeightM:      designWallHeight,
			ThicknessMM:  designWallThickness,
			UnitWeightKN: designWallDensity,
		},
		PointLoads:   points,
		Concrete:     is456.ConcreteGrade(designConcrete),
		Steel:        is456.SteelGrade(designSteel),
		MainBarDiaMM: designMainBar,
		StirrupDiaMM: designStirrupBar,
	}

	if err := inputs.Validate(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// parseSlabSide parses TYPE[:LX[:LY:EDGE]], e.g. "twoway:3.0:4.5:short".
func parseSlabSide(s string) (beam.SlabSide, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), ":")
	switch parts[0] {
	case "", "none":
		return beam.SlabSide{}, nil
	case "oneway":
		if len(parts) != 2 {
			return beam.SlabSide{}, fmt.Errorf("expected oneway:LX, got %q", s)
		}
		var lx float64
		if _, err := fmt.Sscanf(parts[1], "%f", &lx); err != nil {
			return beam.SlabSide{}, fmt.Errorf("bad span %q", parts[1])
		}
		return beam.SlabSide{Enabled: true, Type: beam.OneWay, LxM: lx}, nil
	case "twoway":
		if len(parts) != 4 {
			return beam.SlabSide{}, fmt.Errorf("expected twoway:LX:LY:EDGE, got %q", s)
		}
		var lx, ly float64
		if _, err := fmt.Sscanf(parts[1], "%f", &lx); err != nil {
			return beam.SlabSide{}, fmt.Errorf("bad span %q", parts[1])
		}
		if _, err := fmt.Sscanf(parts[2], "%f", &ly); err != nil {
			return beam.SlabSide{}, fmt.Errorf("bad span %q", parts[2])
		}
		edge := beam.BeamEdge(parts[3])
		if edge != beam.ShortEdge && edge != beam.LongEdge {
			return beam.SlabSide{}, fmt.Errorf("edge must be short or long, got %q", parts[3])
		}
		return beam.SlabSide{Enabled: true, Type: beam.TwoWay, LxM: lx, LyM: ly, Edge: edge}, nil
	}
	return beam.SlabSide{}, fmt.Errorf("unknown slab type %q", parts[0])
}

// parsePointLoads parses each FORCE@DISTANCE entry.
func parsePointLoads(specs []string) ([]beam.PointLoad, error) {
	var points []beam.PointLoad
	for _, spec := range specs {
		var p beam.PointLoad
		if _, err := fmt.Sscanf(spec, "%f@%f", &p.ForceKN, &p.DistanceM); err != nil {
			return nil, fmt.Errorf("bad point load %q (expected FORCE@DISTANCE)", spec)
		}
		points = append(points, p)
	}
	return points, nil
}

func printDesignReport(in beam.DesignInputs, loads beam.LoadResult, analysis beam.AnalysisResult, design beam.DesignResult) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("        RC BEAM LIMIT STATE DESIGN - IS 456")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam Width (b):\t%.0f mm\n", in.WidthMM)
	fmt.Fprintf(w, "  Beam Depth (D):\t%.0f mm\n", in.DepthMM)
	fmt.Fprintf(w, "  Effective Depth (d):\t%.0f mm\n", analysis.EffectiveDepthMM)
	fmt.Fprintf(w, "  Clear Span (L):\t%.2f m\n", in.SpanM)
	fmt.Fprintf(w, "  Concrete / Steel:\t%s / %s\n", in.Concrete, in.Steel)
	fmt.Fprintf(w, "  Main Bars / Stirrups:\tφ%.0f / φ%.0f mm\n", in.MainBarDiaMM, in.StirrupDiaMM)
	w.Flush()
	fmt.Println()

	fmt.Println("LOAD AGGREGATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Slab Self-weight:\t%.2f kN/m²\n", loads.SlabSelfWeight)
	fmt.Fprintf(w, "  Total Slab Load:\t%.2f kN/m²\n", loads.TotalSlabLoad)
	fmt.Fprintf(w, "  UDL from Left Slab:\t%.2f kN/m\n", loads.UDLLeftSlab)
	fmt.Fprintf(w, "  UDL from Right Slab:\t%.2f kN/m\n", loads.UDLRightSlab)
	fmt.Fprintf(w, "  Beam Self-weight:\t%.2f kN/m\n", loads.BeamSelfWeight)
	fmt.Fprintf(w, "  Wall Load:\t%.2f kN/m\n", loads.WallUDL)
	fmt.Fprintf(w, "  Service UDL:\t%.2f kN/m\n", loads.ServiceUDL)
	fmt.Fprintf(w, "  Design UDL (×%.1f):\t%.2f kN/m\n", is456.GammaLoad, loads.DesignUDL)
	for i, p := range loads.FactoredPointLoads {
		fmt.Fprintf(w, "  Factored Point Load %d:\t%.2f kN @ %.2f m\n", i+1, p.ForceKN, p.DistanceM)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("ANALYSIS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Design Moment (Mu):\t%.2f kN-m\n", analysis.MaxMomentKNm)
	fmt.Fprintf(w, "  Design Shear (Vu):\t%.2f kN\n", analysis.MaxShearKN)
	w.Flush()
	fmt.Println()

	fmt.Println("FLEXURAL DESIGN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Limiting Moment (Mu,lim):\t%.2f kN-m\n", design.MuLimKNm)
	status := "Singly reinforced"
	if design.DoublyReinforced {
		status = "DOUBLY REINFORCED (Ast at Mu,lim; compression steel not designed)"
	}
	fmt.Fprintf(w, "  Section:\t%s\n", status)
	fmt.Fprintf(w, "  Ast Required:\t%.2f mm²\n", design.AstRequiredMM2)
	fmt.Fprintf(w, "  Bars Provided:\t%d - φ%.0f mm\n", design.BarCount, in.MainBarDiaMM)
	fmt.Fprintf(w, "  Ast Provided:\t%.2f mm² (%.2f%%)\n", design.AstProvidedMM2, design.PtProvided)
	w.Flush()
	fmt.Println()

	fmt.Println("SHEAR DESIGN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nominal Shear Stress (τv):\t%.3f N/mm²\n", design.TauV)
	fmt.Fprintf(w, "  Concrete Capacity (τc):\t%.3f N/mm²\n", design.TauC)
	if design.SectionFails() {
		fmt.Fprintf(w, "  Status:\tSECTION FAILS IN SHEAR - increase section size\n")
	} else {
		kind := "Nominal stirrups"
		if design.ShearReinfRequired {
			kind = "Designed stirrups"
		}
		fmt.Fprintf(w, "  Stirrups:\t%s, φ%.0f @ %d mm c/c\n", kind, in.StirrupDiaMM, design.StirrupSpacingMM)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("DEFLECTION CHECK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Basic L/d Ratio:\t%.1f\n", design.BasicRatio)
	fmt.Fprintf(w, "  Modification Factor (kt):\t%.3f\n", design.ModFactor)
	fmt.Fprintf(w, "  Allowable L/d:\t%.2f\n", design.AllowableRatio)
	fmt.Fprintf(w, "  Actual L/d:\t%.2f\n", design.ActualRatio)
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("Mu = %.2f kN-m, Vu = %.2f kN", analysis.MaxMomentKNm, analysis.MaxShearKN),
		fmt.Sprintf("Ast = %d - φ%.0f mm (%.0f mm²)", design.BarCount, in.MainBarDiaMM, design.AstProvidedMM2),
	}
	if design.SectionFails() {
		lines = append(lines, "SHEAR: SECTION FAILS - RESIZE")
	} else {
		lines = append(lines, fmt.Sprintf("Stirrups φ%.0f @ %d mm c/c", in.StirrupDiaMM, design.StirrupSpacingMM))
	}
	if design.DeflectionOK {
		lines = append(lines, "Deflection: OK ✓")
	} else {
		lines = append(lines, "Deflection: FAILS - increase depth")
	}
	fmt.Println(diagram.DrawSummaryBox("DESIGN SUMMARY", lines))
}
