package beam

import "github.com/satyajit2online/Load-Distribution/internal/is456"

// deflectionResult carries the serviceability fields into the DesignResult.
type deflectionResult struct {
	BasicRatio     float64
	ModFactor      float64
	AllowableRatio float64
	ActualRatio    float64
	Pass           bool
}

// checkDeflection runs the modified span/effective-depth check,
// IS 456 Section 23.2.
func checkDeflection(in DesignInputs, astRequired, astProvided float64) deflectionResult {
	d := in.EffectiveDepth()
	pt := 100 * astProvided / (in.WidthMM * d)
	fs := is456.ServiceSteelStress(in.Steel.Fy(), astRequired, astProvided)

	var r deflectionResult
	r.BasicRatio = is456.BasicSpanDepthRatio
	r.ModFactor = is456.ModificationFactor(fs, pt)
	r.AllowableRatio = r.BasicRatio * r.ModFactor
	r.ActualRatio = in.SpanM * 1000 / d
	r.Pass = r.ActualRatio <= r.AllowableRatio
	return r
}
