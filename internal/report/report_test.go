package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/satyajit2online/Load-Distribution/internal/beam"
	"github.com/satyajit2online/Load-Distribution/internal/is456"
)

func sampleSnapshot(t *testing.T) Snapshot {
	t.Helper()
	in := beam.DesignInputs{
		WidthMM: 230,
		DepthMM: 450,
		SpanM:   3.0,
		CoverMM: 25,
		Slab: beam.Slab{
			ThicknessMM:     125,
			LiveLoadKNM2:    3.0,
			FloorFinishKNM2: 1.0,
			Left:            beam.SlabSide{Enabled: true, Type: beam.TwoWay, LxM: 3.0, LyM: 4.5, Edge: beam.ShortEdge},
		},
		Wall:         beam.Wall{HeightM: 3.0, ThicknessMM: 230, UnitWeightKN: 20},
		PointLoads:   []beam.PointLoad{{ForceKN: 20, DistanceM: 1.0}},
		Concrete:     is456.M20,
		Steel:        is456.Fe500,
		MainBarDiaMM: 16,
		StirrupDiaMM: 8,
	}
	loads, analysis, design, err := beam.Design(in)
	if err != nil {
		t.Fatalf("Design: %v", err)
	}
	return Snapshot{Name: "Test beam", Inputs: in, Loads: loads, Analysis: analysis, Design: design}
}

func TestBuildPrompt(t *testing.T) {
	snap := sampleSnapshot(t)
	prompt := BuildPrompt(snap)

	for _, want := range []string{
		"IS 456",
		"230x450 mm",
		"M20 concrete, Fe500 steel",
		fmt.Sprintf("Mu = %.2f kN-m", snap.Analysis.MaxMomentKNm),
		fmt.Sprintf("Vu = %.2f kN", snap.Analysis.MaxShearKN),
		"singly reinforced",
		"Factored point load: 30.00 kN at 1.00 m",
		"Deflection",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\n%s", want, prompt)
		}
	}
}

func TestBuildPromptShearFailure(t *testing.T) {
	snap := sampleSnapshot(t)
	snap.Design.StirrupSpacingMM = 0
	prompt := BuildPrompt(snap)
	if !strings.Contains(prompt, "FAILS in shear") {
		t.Errorf("prompt should flag shear failure\n%s", prompt)
	}
}

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func TestNarrativeFallback(t *testing.T) {
	snap := sampleSnapshot(t)

	got := Narrative(context.Background(), &stubGenerator{text: "All good."}, snap)
	if got != "All good." {
		t.Errorf("Narrative = %q", got)
	}

	// Generator failure must fold into a fallback string, never an error
	got = Narrative(context.Background(), &stubGenerator{err: fmt.Errorf("quota exceeded")}, snap)
	if !strings.Contains(got, "quota exceeded") || !strings.Contains(got, "unavailable") {
		t.Errorf("fallback should describe the failure: %q", got)
	}
}

func TestWritePDF(t *testing.T) {
	snap := sampleSnapshot(t)

	var buf bytes.Buffer
	if err := WritePDF(&buf, snap); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}
