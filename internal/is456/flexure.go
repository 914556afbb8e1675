package is456

import "math"

// MuLimCoefficient returns the limiting moment coefficient k in
// Mu,lim = k·fck·b·d², per Annex G for the given steel grade.
func MuLimCoefficient(g SteelGrade) float64 {
	switch g {
	case Fe415:
		return 0.138
	case Fe500:
		return 0.133
	case Fe550:
		return 0.129
	}
	return 0.138
}

// MuLim calculates the limiting moment of resistance (kN-m) for a
// rectangular section with b, d in mm.
func MuLim(g SteelGrade, fck, b, d float64) float64 {
	return MuLimCoefficient(g) * fck * b * d * d / 1e6
}

// AstMin calculates the minimum tension reinforcement (mm²),
// Section 26.5.1.1: As,min = 0.85·b·d/fy.
func AstMin(b, d, fy float64) float64 {
	return 0.85 * b * d / fy
}

// AstRequired calculates the tension steel area (mm²) for a factored
// moment mu (kN-m) using the Annex G quadratic:
//
//	Ast = 0.5·(fck/fy)·(1 − √(1 − 4.6·Mu/(fck·b·d²)))·b·d
//
// The radicand is clamped at zero so floating-point overshoot near
// the limiting moment cannot produce a NaN.
func AstRequired(mu, fck, fy, b, d float64) float64 {
	radicand := 1 - 4.6*mu*1e6/(fck*b*d*d)
	if radicand < 0 {
		radicand = 0
	}
	return 0.5 * (fck / fy) * (1 - math.Sqrt(radicand)) * b * d
}
