package schedule

import (
	"io"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []interface{}{
	"Name", "Saved At",
	"Span (m)", "Width (mm)", "Depth (mm)", "Cover (mm)",
	"Concrete", "Steel",
	"Design UDL (kN/m)", "Mu (kN-m)", "Vu (kN)",
	"Ast req (mm²)", "Bars", "Ast prov (mm²)",
	"Stirrup spacing (mm)", "Doubly", "Deflection OK",
}

// WriteXLSX writes the saved designs as a spreadsheet, one row per entry.
func (s *Store) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return err
	}

	for i, e := range s.List() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			e.Name, e.SavedAt.Format("2006-01-02 15:04"),
			e.Inputs.SpanM, e.Inputs.WidthMM, e.Inputs.DepthMM, e.Inputs.CoverMM,
			string(e.Inputs.Concrete), string(e.Inputs.Steel),
			e.Loads.DesignUDL, e.Analysis.MaxMomentKNm, e.Analysis.MaxShearKN,
			e.Design.AstRequiredMM2, e.Design.BarCount, e.Design.AstProvidedMM2,
			e.Design.StirrupSpacingMM, e.Design.DoublyReinforced, e.Design.DeflectionOK,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
