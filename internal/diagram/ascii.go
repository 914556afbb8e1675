package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/satyajit2online/Load-Distribution/internal/beam"
)

// DrawMomentDiagram renders the bending moment diagram as a terminal
// graph. Moments are plotted negative so the curve sags like the
// conventional BMD drawn on the tension side.
func DrawMomentDiagram(curve []beam.Sample, maxMoment float64) string {
	data := make([]float64, len(curve))
	for i, s := range curve {
		data[i] = -s.Value
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("Bending Moment Diagram  (Mu,max = %.2f kN-m)", maxMoment)),
	)

	var sb strings.Builder
	sb.WriteString("\n  BENDING MOMENT (kN-m, plotted on tension side)\n")
	sb.WriteString("  ──────────────────────────────────────────────\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	return sb.String()
}

// DrawShearDiagram renders the shear force diagram as a terminal graph.
func DrawShearDiagram(curve []beam.Sample, maxShear float64) string {
	data := make([]float64, len(curve))
	for i, s := range curve {
		data[i] = s.Value
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("Shear Force Diagram  (Vu,max = %.2f kN)", maxShear)),
	)

	var sb strings.Builder
	sb.WriteString("\n  SHEAR FORCE (kN)\n")
	sb.WriteString("  ────────────────\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	return sb.String()
}

// DrawLoadingSketch draws a one-line sketch of the loaded span: the UDL
// band, the supports and each point load with its position.
func DrawLoadingSketch(spanM, udl float64, points []beam.PointLoad) string {
	const width = 60

	var sb strings.Builder
	sb.WriteString("\n  LOADING\n")
	sb.WriteString("  ───────\n")

	if len(points) > 0 {
		marks := []rune(strings.Repeat(" ", width))
		for _, p := range points {
			pos := int(p.DistanceM / spanM * float64(width-1))
			if pos >= 0 && pos < len(marks) {
				marks[pos] = '▼'
			}
		}
		sb.WriteString("   " + string(marks) + "\n")
		for _, p := range points {
			sb.WriteString(fmt.Sprintf("   %8.2f kN @ %.2f m\n", p.ForceKN, p.DistanceM))
		}
	}

	sb.WriteString("   " + strings.Repeat("↓", width) + fmt.Sprintf("  w = %.2f kN/m\n", udl))
	sb.WriteString("   " + strings.Repeat("━", width) + "\n")
	sb.WriteString("   ▲" + strings.Repeat(" ", width-2) + "▲\n")
	sb.WriteString(fmt.Sprintf("   ├%s┤  L = %.2f m\n", strings.Repeat("─", width-2), spanM))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
