// Package report formats completed designs for human consumption: a
// prompt projection for a natural-language generator, a PDF summary and
// the generator client itself. Nothing here feeds back into the numeric
// pipeline.
package report

import (
	"fmt"
	"strings"

	"github.com/satyajit2online/Load-Distribution/internal/beam"
)

// Snapshot is the read-only projection of one completed design run.
type Snapshot struct {
	Name     string              `json:"name,omitempty"`
	Inputs   beam.DesignInputs   `json:"inputs"`
	Loads    beam.LoadResult     `json:"loads"`
	Analysis beam.AnalysisResult `json:"analysis"`
	Design   beam.DesignResult   `json:"design"`
}

// BuildPrompt renders the snapshot as a prompt for the report generator.
// The generator only ever sees this text; it has no access to the engine.
func BuildPrompt(s Snapshot) string {
	var sb strings.Builder

	sb.WriteString("You are a structural engineer. Write a short design report in plain language ")
	sb.WriteString("for the following simply supported reinforced-concrete beam, designed to IS 456. ")
	sb.WriteString("Comment on the adequacy of the section and any recommended changes.\n\n")

	fmt.Fprintf(&sb, "Geometry: %.0fx%.0f mm section, %.2f m clear span, %.0f mm effective cover.\n",
		s.Inputs.WidthMM, s.Inputs.DepthMM, s.Inputs.SpanM, s.Inputs.CoverMM)
	fmt.Fprintf(&sb, "Materials: %s concrete, %s steel, %.0f mm main bars, %.0f mm stirrups.\n",
		s.Inputs.Concrete, s.Inputs.Steel, s.Inputs.MainBarDiaMM, s.Inputs.StirrupDiaMM)

	fmt.Fprintf(&sb, "Loads: slab %.2f kN/m² total (self %.2f), left slab UDL %.2f kN/m, right %.2f kN/m, ",
		s.Loads.TotalSlabLoad, s.Loads.SlabSelfWeight, s.Loads.UDLLeftSlab, s.Loads.UDLRightSlab)
	fmt.Fprintf(&sb, "beam self-weight %.2f kN/m, wall %.2f kN/m; factored design UDL %.2f kN/m.\n",
		s.Loads.BeamSelfWeight, s.Loads.WallUDL, s.Loads.DesignUDL)
	for _, p := range s.Loads.FactoredPointLoads {
		fmt.Fprintf(&sb, "Factored point load: %.2f kN at %.2f m.\n", p.ForceKN, p.DistanceM)
	}

	fmt.Fprintf(&sb, "Analysis: Mu = %.2f kN-m, Vu = %.2f kN, effective depth %.0f mm.\n",
		s.Analysis.MaxMomentKNm, s.Analysis.MaxShearKN, s.Analysis.EffectiveDepthMM)

	fmt.Fprintf(&sb, "Flexure: Mu,lim = %.2f kN-m, %s, Ast required %.0f mm², provided %d bars = %.0f mm² (%.2f%%).\n",
		s.Design.MuLimKNm, flexureStatus(s.Design), s.Design.AstRequiredMM2,
		s.Design.BarCount, s.Design.AstProvidedMM2, s.Design.PtProvided)

	if s.Design.SectionFails() {
		fmt.Fprintf(&sb, "Shear: τv = %.3f N/mm² exceeds the code maximum; the section FAILS in shear and must be resized.\n",
			s.Design.TauV)
	} else {
		fmt.Fprintf(&sb, "Shear: τv = %.3f, τc = %.3f N/mm²; %s stirrups at %d mm spacing.\n",
			s.Design.TauV, s.Design.TauC, stirrupKind(s.Design), s.Design.StirrupSpacingMM)
	}

	verdict := "PASSES"
	if !s.Design.DeflectionOK {
		verdict = "FAILS"
	}
	fmt.Fprintf(&sb, "Deflection: allowable L/d = %.1f (basic %.0f × kt %.2f), actual %.1f: %s.\n",
		s.Design.AllowableRatio, s.Design.BasicRatio, s.Design.ModFactor, s.Design.ActualRatio, verdict)

	return sb.String()
}

func flexureStatus(d beam.DesignResult) string {
	if d.DoublyReinforced {
		return "doubly reinforced (flagged; tension steel reported at the limiting moment, compression steel not designed)"
	}
	return "singly reinforced"
}

func stirrupKind(d beam.DesignResult) string {
	if d.ShearReinfRequired {
		return "designed"
	}
	return "nominal"
}
