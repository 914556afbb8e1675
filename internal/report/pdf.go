package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

// WritePDF writes a one-page design summary.
func WritePDF(w io.Writer, s Snapshot) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	title := s.Name
	if title == "" {
		title = "RC Beam Design Summary"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s    Code: IS 456 (limit state)", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section := func(name string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, name)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		pdf.Cell(70, 6, label)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}

	section("Geometry & Materials")
	row("Section", fmt.Sprintf("%.0f x %.0f mm, cover %.0f mm", s.Inputs.WidthMM, s.Inputs.DepthMM, s.Inputs.CoverMM))
	row("Clear span", fmt.Sprintf("%.2f m", s.Inputs.SpanM))
	row("Materials", fmt.Sprintf("%s / %s, main %.0f mm, stirrups %.0f mm",
		s.Inputs.Concrete, s.Inputs.Steel, s.Inputs.MainBarDiaMM, s.Inputs.StirrupDiaMM))
	pdf.Ln(2)

	section("Loads")
	row("Total slab load", fmt.Sprintf("%.2f kN/m2", s.Loads.TotalSlabLoad))
	row("Slab UDL (left / right)", fmt.Sprintf("%.2f / %.2f kN/m", s.Loads.UDLLeftSlab, s.Loads.UDLRightSlab))
	row("Beam self-weight", fmt.Sprintf("%.2f kN/m", s.Loads.BeamSelfWeight))
	row("Wall load", fmt.Sprintf("%.2f kN/m", s.Loads.WallUDL))
	row("Factored design UDL", fmt.Sprintf("%.2f kN/m", s.Loads.DesignUDL))
	for i, p := range s.Loads.FactoredPointLoads {
		row(fmt.Sprintf("Factored point load %d", i+1), fmt.Sprintf("%.2f kN at %.2f m", p.ForceKN, p.DistanceM))
	}
	pdf.Ln(2)

	section("Analysis & Design")
	row("Design moment Mu", fmt.Sprintf("%.2f kN-m  (Mu,lim = %.2f kN-m)", s.Analysis.MaxMomentKNm, s.Design.MuLimKNm))
	row("Design shear Vu", fmt.Sprintf("%.2f kN", s.Analysis.MaxShearKN))
	row("Flexure", flexureStatus(s.Design))
	row("Tension steel", fmt.Sprintf("req %.0f mm2, prov %d-%.0f mm = %.0f mm2 (%.2f%%)",
		s.Design.AstRequiredMM2, s.Design.BarCount, s.Inputs.MainBarDiaMM, s.Design.AstProvidedMM2, s.Design.PtProvided))
	if s.Design.SectionFails() {
		row("Shear", fmt.Sprintf("tv = %.3f N/mm2 > tc,max - SECTION FAILS, resize required", s.Design.TauV))
	} else {
		row("Shear", fmt.Sprintf("tv = %.3f, tc = %.3f N/mm2, %s stirrups @ %d mm",
			s.Design.TauV, s.Design.TauC, stirrupKind(s.Design), s.Design.StirrupSpacingMM))
	}
	verdict := "PASS"
	if !s.Design.DeflectionOK {
		verdict = "FAIL - increase depth"
	}
	row("Deflection (L/d)", fmt.Sprintf("actual %.1f vs allowable %.1f - %s",
		s.Design.ActualRatio, s.Design.AllowableRatio, verdict))

	return pdf.Output(w)
}
