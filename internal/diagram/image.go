package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/satyajit2online/Load-Distribution/internal/beam"
)

// ExportMomentDiagram exports the bending moment diagram to an image file
// (png, svg or pdf by extension).
func ExportMomentDiagram(analysis beam.AnalysisResult, filename string) error {
	p := plot.New()
	p.Title.Text = "Bending Moment Diagram"
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = "Moment (kN-m)"

	// Plot on the tension side, structural convention
	pts := make(plotter.XYs, len(analysis.MomentCurve))
	for i, s := range analysis.MomentCurve {
		pts[i] = plotter.XY{X: s.XM, Y: -s.Value}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := addBaseline(p, analysis.MomentCurve); err != nil {
		return err
	}

	return savePlot(p, filename)
}

// ExportShearDiagram exports the shear force diagram to an image file.
func ExportShearDiagram(analysis beam.AnalysisResult, filename string) error {
	p := plot.New()
	p.Title.Text = "Shear Force Diagram"
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = "Shear (kN)"

	pts := make(plotter.XYs, len(analysis.ShearCurve))
	for i, s := range analysis.ShearCurve {
		pts[i] = plotter.XY{X: s.XM, Y: s.Value}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p.Add(line)
	p.Add(plotter.NewGrid())

	if err := addBaseline(p, analysis.ShearCurve); err != nil {
		return err
	}

	return savePlot(p, filename)
}

// addBaseline draws the zero axis across the span.
func addBaseline(p *plot.Plot, curve []beam.Sample) error {
	if len(curve) == 0 {
		return nil
	}
	base, err := plotter.NewLine(plotter.XYs{
		{X: curve[0].XM, Y: 0},
		{X: curve[len(curve)-1].XM, Y: 0},
	})
	if err != nil {
		return err
	}
	base.LineStyle.Width = vg.Points(1)
	base.LineStyle.Color = color.Black
	base.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(base)
	return nil
}

func savePlot(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 4 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch ext := filepath.Ext(filename); ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	case "":
		return p.Save(width, height, filename+".png")
	default:
		return fmt.Errorf("unsupported diagram format: %s", ext)
	}
}
