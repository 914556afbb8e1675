package beam

// DesignResult is the complete limit-state design record for one input
// set. It is never mutated after creation; every stage of the pipeline
// reads its predecessor's output and produces fresh fields.
type DesignResult struct {
	// Flexure
	MuLimKNm         float64 `json:"mu_lim_knm"`
	DoublyReinforced bool    `json:"doubly_reinforced"`
	AstRequiredMM2   float64 `json:"ast_required_mm2"`
	AstProvidedMM2   float64 `json:"ast_provided_mm2"`
	BarCount         int     `json:"bar_count"`
	PtProvided       float64 `json:"pt_provided"`

	// Shear
	TauV               float64 `json:"tau_v"`
	TauC               float64 `json:"tau_c"`
	ShearReinfRequired bool    `json:"shear_reinf_required"`
	StirrupSpacingMM   int     `json:"stirrup_spacing_mm"` // 0 = section fails in shear

	// Deflection
	BasicRatio     float64 `json:"basic_ratio"`
	ModFactor      float64 `json:"mod_factor"`
	AllowableRatio float64 `json:"allowable_ratio"`
	ActualRatio    float64 `json:"actual_ratio"`
	DeflectionOK   bool    `json:"deflection_ok"`
}

// SectionFails reports whether the shear stress exceeded the code maximum,
// requiring a geometry change.
func (r DesignResult) SectionFails() bool {
	return r.StirrupSpacingMM == 0
}

// Design runs the full pipeline: load aggregation, section analysis,
// flexural design, shear design and the deflection check. It is a pure,
// synchronous function of its inputs; abnormal design outcomes are
// reported as result fields, never as errors. The only error is an
// invalid input set.
func Design(in DesignInputs) (LoadResult, AnalysisResult, DesignResult, error) {
	if err := in.Validate(); err != nil {
		return LoadResult{}, AnalysisResult{}, DesignResult{}, err
	}

	loads := AggregateLoads(in)
	analysis := Analyze(in, loads)

	flex := designFlexure(in, analysis.MaxMomentKNm)
	shear := designShear(in, analysis.MaxShearKN, flex.AstProvided)
	defl := checkDeflection(in, flex.AstRequired, flex.AstProvided)

	design := DesignResult{
		MuLimKNm:         flex.MuLim,
		DoublyReinforced: flex.DoublyReinforced,
		AstRequiredMM2:   flex.AstRequired,
		AstProvidedMM2:   flex.AstProvided,
		BarCount:         flex.BarCount,
		PtProvided:       flex.PtProvided,

		TauV:               shear.TauV,
		TauC:               shear.TauC,
		ShearReinfRequired: shear.ShearReinfRequired,
		StirrupSpacingMM:   shear.StirrupSpacingMM,

		BasicRatio:     defl.BasicRatio,
		ModFactor:      defl.ModFactor,
		AllowableRatio: defl.AllowableRatio,
		ActualRatio:    defl.ActualRatio,
		DeflectionOK:   defl.Pass,
	}

	return loads, analysis, design, nil
}
