package beam

import (
	"math"
	"testing"

	"github.com/satyajit2online/Load-Distribution/internal/is456"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// baseInputs is the worked scenario: 230x450 beam over 3.0 m carrying a
// two-way slab on the short edge plus a full-height wall.
func baseInputs() DesignInputs {
	return DesignInputs{
		WidthMM: 230,
		DepthMM: 450,
		SpanM:   3.0,
		CoverMM: 25,
		Slab: Slab{
			ThicknessMM:     125,
			LiveLoadKNM2:    3.0,
			FloorFinishKNM2: 1.0,
			Left: SlabSide{
				Enabled: true,
				Type:    TwoWay,
				LxM:     3.0,
				LyM:     4.5,
				Edge:    ShortEdge,
			},
		},
		Wall: Wall{
			HeightM:      3.0,
			ThicknessMM:  230,
			UnitWeightKN: 20,
		},
		Concrete:     is456.M20,
		Steel:        is456.Fe500,
		MainBarDiaMM: 16,
		StirrupDiaMM: 8,
	}
}

func TestAggregateLoadsScenario(t *testing.T) {
	loads := AggregateLoads(baseInputs())

	if !almostEqual(loads.SlabSelfWeight, 3.125, 1e-9) {
		t.Errorf("SlabSelfWeight = %v, want 3.125", loads.SlabSelfWeight)
	}
	if !almostEqual(loads.TotalSlabLoad, 7.125, 1e-9) {
		t.Errorf("TotalSlabLoad = %v, want 7.125", loads.TotalSlabLoad)
	}
	// Triangular transfer: q·Lx/3
	if !almostEqual(loads.UDLLeftSlab, 7.125, 1e-9) {
		t.Errorf("UDLLeftSlab = %v, want 7.125", loads.UDLLeftSlab)
	}
	if loads.UDLRightSlab != 0 {
		t.Errorf("UDLRightSlab = %v, want 0", loads.UDLRightSlab)
	}
	if !almostEqual(loads.BeamSelfWeight, 2.5875, 1e-9) {
		t.Errorf("BeamSelfWeight = %v, want 2.5875", loads.BeamSelfWeight)
	}
	if !almostEqual(loads.WallUDL, 13.8, 1e-9) {
		t.Errorf("WallUDL = %v, want 13.8", loads.WallUDL)
	}
	if !almostEqual(loads.DesignUDL, 1.5*23.5125, 1e-9) {
		t.Errorf("DesignUDL = %v, want %v", loads.DesignUDL, 1.5*23.5125)
	}
}

func TestFactoringInvariant(t *testing.T) {
	// DesignUDL is always exactly 1.5× the sum of service contributions
	tests := []struct {
		name string
		mod  func(*DesignInputs)
	}{
		{"scenario", func(in *DesignInputs) {}},
		{"no slab", func(in *DesignInputs) { in.Slab.Left.Enabled = false }},
		{"no wall", func(in *DesignInputs) { in.Wall = Wall{} }},
		{"both sides", func(in *DesignInputs) {
			in.Slab.Right = SlabSide{Enabled: true, Type: OneWay, LxM: 2.5}
		}},
	}
	for _, tt := range tests {
		in := baseInputs()
		tt.mod(&in)
		loads := AggregateLoads(in)
		sum := loads.UDLLeftSlab + loads.UDLRightSlab + loads.BeamSelfWeight + loads.WallUDL
		if !almostEqual(loads.DesignUDL, 1.5*sum, 1e-9) {
			t.Errorf("%s: DesignUDL = %v, want 1.5×%v", tt.name, loads.DesignUDL, sum)
		}
	}
}

func TestDisabledSlabSides(t *testing.T) {
	in := baseInputs()
	in.Slab.Left.Enabled = false
	loads := AggregateLoads(in)
	if loads.UDLLeftSlab != 0 || loads.UDLRightSlab != 0 || loads.UDLTotalSlab != 0 {
		t.Errorf("disabled sides must contribute nothing: left=%v right=%v total=%v",
			loads.UDLLeftSlab, loads.UDLRightSlab, loads.UDLTotalSlab)
	}
}

func TestOneWayIgnoresLy(t *testing.T) {
	in := baseInputs()
	in.Slab.Left = SlabSide{Enabled: true, Type: OneWay, LxM: 3.0, LyM: 4.5}
	want := AggregateLoads(in).UDLLeftSlab

	for _, ly := range []float64{0, 1, 6, 100} {
		in.Slab.Left.LyM = ly
		if got := AggregateLoads(in).UDLLeftSlab; got != want {
			t.Errorf("one-way transfer changed with Ly=%v: %v != %v", ly, got, want)
		}
	}

	// And the one-way value itself is q·Lx/2
	loads := AggregateLoads(in)
	if !almostEqual(loads.UDLLeftSlab, loads.TotalSlabLoad*3.0/2, 1e-9) {
		t.Errorf("one-way transfer = %v, want q·Lx/2", loads.UDLLeftSlab)
	}
}

func TestShortEdgeBelowLongEdge(t *testing.T) {
	in := baseInputs()
	short := AggregateLoads(in).UDLLeftSlab

	in.Slab.Left.Edge = LongEdge
	long := AggregateLoads(in).UDLLeftSlab

	if short >= long {
		t.Errorf("triangular transfer (%v) must be below trapezoidal equivalent (%v)", short, long)
	}

	// Trapezoidal: q·Lx/2·(1 − 1/(3β²)), β = 1.5
	beta := 4.5 / 3.0
	want := 7.125 * 3.0 / 2 * (1 - 1/(3*beta*beta))
	if !almostEqual(long, want, 1e-9) {
		t.Errorf("trapezoidal transfer = %v, want %v", long, want)
	}
}

func TestPointLoadFactoring(t *testing.T) {
	in := baseInputs()
	in.PointLoads = []PointLoad{{ForceKN: 20, DistanceM: 1.0}, {ForceKN: 35, DistanceM: 2.2}}

	loads := AggregateLoads(in)
	if len(loads.FactoredPointLoads) != 2 {
		t.Fatalf("expected 2 factored point loads, got %d", len(loads.FactoredPointLoads))
	}
	for i, p := range loads.FactoredPointLoads {
		if !almostEqual(p.ForceKN, 1.5*in.PointLoads[i].ForceKN, 1e-9) {
			t.Errorf("point load %d: force = %v, want %v", i, p.ForceKN, 1.5*in.PointLoads[i].ForceKN)
		}
		if p.DistanceM != in.PointLoads[i].DistanceM {
			t.Errorf("point load %d: distance must be unchanged", i)
		}
	}
}

func TestWallDensityConfigurable(t *testing.T) {
	in := baseInputs()
	in.Wall.UnitWeightKN = 12 // lightweight block
	loads := AggregateLoads(in)
	if !almostEqual(loads.WallUDL, 0.23*3.0*12, 1e-9) {
		t.Errorf("WallUDL = %v, want %v", loads.WallUDL, 0.23*3.0*12)
	}
}
