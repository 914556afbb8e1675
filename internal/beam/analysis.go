package beam

// Number of segments used when sampling the moment and shear curves.
const curveSegments = 40

// Sample is one point of a sampled internal-force diagram.
type Sample struct {
	XM    float64 `json:"x_m"`
	Value float64 `json:"value"`
}

// AnalysisResult holds the factored internal forces for a simply
// supported span. The sampled curves exist only for plotting; the design
// stages read the peak values.
type AnalysisResult struct {
	MaxMomentKNm     float64 `json:"max_moment_knm"`
	MaxShearKN       float64 `json:"max_shear_kn"`
	EffectiveDepthMM float64 `json:"effective_depth_mm"`

	MomentCurve []Sample `json:"moment_curve,omitempty"`
	ShearCurve  []Sample `json:"shear_curve,omitempty"`
}

// Analyze derives the peak bending moment and shear from the aggregated
// loads, superposing the UDL with every factored point load.
func Analyze(in DesignInputs, loads LoadResult) AnalysisResult {
	L := in.SpanM
	w := loads.DesignUDL

	var r AnalysisResult
	r.EffectiveDepthMM = in.EffectiveDepth()

	// The combined moment diagram is piecewise parabolic with slope
	// discontinuities only at point-load locations, so the peak occurs
	// either at midspan (UDL governs) or under one of the point loads.
	r.MaxMomentKNm = momentAt(L/2, L, w, loads.FactoredPointLoads)
	for _, p := range loads.FactoredPointLoads {
		if m := momentAt(p.DistanceM, L, w, loads.FactoredPointLoads); m > r.MaxMomentKNm {
			r.MaxMomentKNm = m
		}
	}

	// Worst-case near-support shear: UDL reaction plus each point load's
	// higher-magnitude end reaction. Summing the per-load maxima is a
	// conservative approximation of the true shear envelope; it is kept
	// as documented behavior because designs depend on it.
	r.MaxShearKN = w * L / 2
	for _, p := range loads.FactoredPointLoads {
		far := p.DistanceM
		if L-p.DistanceM > far {
			far = L - p.DistanceM
		}
		r.MaxShearKN += p.ForceKN * far / L
	}

	r.MomentCurve = make([]Sample, 0, curveSegments+1)
	r.ShearCurve = make([]Sample, 0, curveSegments+1)
	for i := 0; i <= curveSegments; i++ {
		x := L * float64(i) / curveSegments
		r.MomentCurve = append(r.MomentCurve, Sample{XM: x, Value: momentAt(x, L, w, loads.FactoredPointLoads)})
		r.ShearCurve = append(r.ShearCurve, Sample{XM: x, Value: shearAt(x, L, w, loads.FactoredPointLoads)})
	}

	return r
}

// momentAt evaluates the combined bending moment (kN-m) at position x.
// Each point load contributes a triangular diagram peaking at its own
// location: left of the load M = P·(L−d)·x/L, right of it M = P·d·(L−x)/L.
func momentAt(x, L, w float64, points []PointLoad) float64 {
	m := w * x * (L - x) / 2
	for _, p := range points {
		if x <= p.DistanceM {
			m += p.ForceKN * (L - p.DistanceM) * x / L
		} else {
			m += p.ForceKN * p.DistanceM * (L - x) / L
		}
	}
	return m
}

// shearAt evaluates the combined shear force (kN) at position x, positive
// sagging convention with a step at each point load.
func shearAt(x, L, w float64, points []PointLoad) float64 {
	v := w * (L/2 - x)
	for _, p := range points {
		if x < p.DistanceM {
			v += p.ForceKN * (L - p.DistanceM) / L
		} else {
			v -= p.ForceKN * p.DistanceM / L
		}
	}
	return v
}
