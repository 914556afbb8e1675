package is456

import "math"

// Basic span/effective-depth ratio for a simply supported member,
// Section 23.2.1.
const BasicSpanDepthRatio = 20.0

// ModificationFactor calculates the tension reinforcement modification
// factor kt for the allowable span/depth ratio (Fig. 4 fit), given the
// service steel stress fs (MPa) and the percentage of tension steel
// provided. The factor is clamped to [0.7, 2.0], the range of the chart.
func ModificationFactor(fs, pt float64) float64 {
	if pt < 0.1 {
		pt = 0.1
	}

	kt := 1.0
	denom := 0.225 + 0.0032*fs - 0.625*math.Log10(pt)
	if denom > 0 {
		kt = 1 / denom
	}

	if kt < 0.7 {
		kt = 0.7
	}
	if kt > 2.0 {
		kt = 2.0
	}
	return kt
}

// ServiceSteelStress estimates the steel stress at service loads
// (MPa), Fig. 4: fs = 0.58·fy·(As,required / As,provided).
func ServiceSteelStress(fy, astRequired, astProvided float64) float64 {
	if astProvided <= 0 {
		return 0.58 * fy
	}
	return 0.58 * fy * astRequired / astProvided
}
