package beam

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/satyajit2online/Load-Distribution/internal/is456"
)

// SpanType describes how a slab spans between its supports.
type SpanType string

const (
	OneWay SpanType = "oneway"
	TwoWay SpanType = "twoway"
)

// BeamEdge identifies which edge of a two-way slab bears on this beam.
// A short edge receives a triangular load distribution, a long edge a
// trapezoidal one.
type BeamEdge string

const (
	ShortEdge BeamEdge = "short"
	LongEdge  BeamEdge = "long"
)

// SlabSide configures one slab panel framing into the beam. The beam can
// carry up to two panels, one on each side.
type SlabSide struct {
	Enabled bool     `json:"enabled"`
	Type    SpanType `json:"type,omitempty"`
	LxM     float64  `json:"lx_m,omitempty"` // Short span (m)
	LyM     float64  `json:"ly_m,omitempty"` // Long span (m), two-way only
	Edge    BeamEdge `json:"edge,omitempty"` // Supported edge, two-way only
}

// Slab holds slab properties shared by both sides plus the per-side panels.
type Slab struct {
	ThicknessMM     float64  `json:"thickness_mm"`
	LiveLoadKNM2    float64  `json:"live_load_kn_m2"`
	FloorFinishKNM2 float64  `json:"floor_finish_kn_m2"`
	Left            SlabSide `json:"left"`
	Right           SlabSide `json:"right"`
}

// Wall is a masonry wall carried along the full beam span.
type Wall struct {
	HeightM      float64 `json:"height_m"`
	ThicknessMM  float64 `json:"thickness_mm"`
	UnitWeightKN float64 `json:"unit_weight_kn_m3"` // kN/m³, caller-supplied
}

// PointLoad is a concentrated service load on the span.
type PointLoad struct {
	ForceKN   float64 `json:"force_kn"`
	DistanceM float64 `json:"distance_m"` // from the left support
}

// DesignInputs is the complete, immutable input set for one design run.
type DesignInputs struct {
	// Beam geometry
	WidthMM float64 `json:"width_mm"`
	DepthMM float64 `json:"depth_mm"`
	SpanM   float64 `json:"span_m"`
	CoverMM float64 `json:"cover_mm"` // effective cover to steel centroid

	Slab       Slab        `json:"slab"`
	Wall       Wall        `json:"wall"`
	PointLoads []PointLoad `json:"point_loads,omitempty"`

	// Materials
	Concrete     is456.ConcreteGrade `json:"concrete"`
	Steel        is456.SteelGrade    `json:"steel"`
	MainBarDiaMM float64             `json:"main_bar_dia_mm"`
	StirrupDiaMM float64             `json:"stirrup_dia_mm"`
}

// Validate checks the input invariants before the design pipeline runs.
func (in *DesignInputs) Validate() error {
	if in.WidthMM <= 0 || in.DepthMM <= 0 {
		return fmt.Errorf("invalid beam dimensions: width=%.2f, depth=%.2f", in.WidthMM, in.DepthMM)
	}
	if in.SpanM <= 0 {
		return fmt.Errorf("span must be positive: span=%.2f", in.SpanM)
	}
	if in.DepthMM <= in.CoverMM {
		return fmt.Errorf("beam depth must exceed effective cover: depth=%.2f, cover=%.2f", in.DepthMM, in.CoverMM)
	}
	if in.Concrete.Fck() == 0 {
		return fmt.Errorf("unknown concrete grade: %q", in.Concrete)
	}
	if in.Steel.Fy() == 0 {
		return fmt.Errorf("unknown steel grade: %q", in.Steel)
	}
	if in.MainBarDiaMM <= 0 || in.StirrupDiaMM <= 0 {
		return fmt.Errorf("invalid bar diameters: main=%.1f, stirrup=%.1f", in.MainBarDiaMM, in.StirrupDiaMM)
	}

	for name, side := range map[string]SlabSide{"left": in.Slab.Left, "right": in.Slab.Right} {
		if !side.Enabled {
			continue
		}
		if side.LxM <= 0 {
			return fmt.Errorf("%s slab: Lx must be positive: lx=%.2f", name, side.LxM)
		}
		if side.Type == TwoWay && side.LyM < side.LxM {
			return fmt.Errorf("%s slab: two-way panel requires Ly >= Lx: lx=%.2f, ly=%.2f", name, side.LxM, side.LyM)
		}
	}

	for i, p := range in.PointLoads {
		if p.DistanceM < 0 || p.DistanceM > in.SpanM {
			return fmt.Errorf("point load %d: distance %.2f m outside span [0, %.2f]", i+1, p.DistanceM, in.SpanM)
		}
	}
	return nil
}

// EffectiveDepth returns the depth to the tension steel centroid (mm).
func (in *DesignInputs) EffectiveDepth() float64 {
	return in.DepthMM - in.CoverMM
}

// LoadInputsFromFile loads a design input set from a JSON file.
func LoadInputsFromFile(filepath string) (*DesignInputs, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var inputs DesignInputs
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, err
	}

	if err := inputs.Validate(); err != nil {
		return nil, err
	}

	return &inputs, nil
}
