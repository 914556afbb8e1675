package beam

import "github.com/satyajit2online/Load-Distribution/internal/is456"

// LoadResult holds the aggregated loads for one design run. Per-length
// values are service (unfactored) except DesignUDL and FactoredPointLoads,
// which carry the 1.5 partial safety factor.
type LoadResult struct {
	// Per-area slab loads (kN/m²)
	SlabSelfWeight float64 `json:"slab_self_weight_kn_m2"`
	TotalSlabLoad  float64 `json:"total_slab_load_kn_m2"`

	// Per-length transfers to the beam (kN/m)
	UDLLeftSlab    float64 `json:"udl_left_slab_kn_m"`
	UDLRightSlab   float64 `json:"udl_right_slab_kn_m"`
	UDLTotalSlab   float64 `json:"udl_total_slab_kn_m"`
	BeamSelfWeight float64 `json:"beam_self_weight_kn_m"`
	WallUDL        float64 `json:"wall_udl_kn_m"`

	ServiceUDL float64 `json:"service_udl_kn_m"` // sum of the above per-length contributions
	DesignUDL  float64 `json:"design_udl_kn_m"`  // 1.5 × ServiceUDL

	FactoredPointLoads []PointLoad `json:"factored_point_loads,omitempty"`
}

// AggregateLoads computes the factored design load per unit length and the
// factored point loads for the given inputs.
func AggregateLoads(in DesignInputs) LoadResult {
	var r LoadResult

	r.SlabSelfWeight = in.Slab.ThicknessMM / 1000 * is456.ConcreteUnitWeight
	r.TotalSlabLoad = r.SlabSelfWeight + in.Slab.LiveLoadKNM2 + in.Slab.FloorFinishKNM2

	r.UDLLeftSlab = slabSideUDL(in.Slab.Left, r.TotalSlabLoad)
	r.UDLRightSlab = slabSideUDL(in.Slab.Right, r.TotalSlabLoad)
	r.UDLTotalSlab = r.UDLLeftSlab + r.UDLRightSlab

	r.BeamSelfWeight = in.WidthMM / 1000 * in.DepthMM / 1000 * is456.ConcreteUnitWeight
	r.WallUDL = in.Wall.ThicknessMM / 1000 * in.Wall.HeightM * in.Wall.UnitWeightKN

	r.ServiceUDL = r.UDLTotalSlab + r.BeamSelfWeight + r.WallUDL
	r.DesignUDL = is456.GammaLoad * r.ServiceUDL

	if len(in.PointLoads) > 0 {
		r.FactoredPointLoads = make([]PointLoad, len(in.PointLoads))
		for i, p := range in.PointLoads {
			r.FactoredPointLoads[i] = PointLoad{
				ForceKN:   is456.GammaLoad * p.ForceKN,
				DistanceM: p.DistanceM,
			}
		}
	}

	return r
}

// slabSideUDL converts a slab panel's area load (kN/m²) into an equivalent
// UDL on the supporting beam (kN/m).
//
// For a two-way panel on the long edge the trapezoidal distribution is
// replaced by the standard equivalent UDL for moment and shear,
// q·Lx/2·(1 − 1/(3β²)) with β = Ly/Lx. This is an approximation; callers
// needing the exact trapezoidal shape must integrate it separately.
func slabSideUDL(side SlabSide, areaLoad float64) float64 {
	if !side.Enabled {
		return 0
	}

	switch side.Type {
	case TwoWay:
		if side.Edge == ShortEdge {
			// Triangular distribution
			return areaLoad * side.LxM / 3
		}
		beta := side.LyM / side.LxM
		return areaLoad * side.LxM / 2 * (1 - 1/(3*beta*beta))
	default:
		// One-way: half the short span each side
		return areaLoad * side.LxM / 2
	}
}
