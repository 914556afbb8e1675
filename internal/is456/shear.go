package is456

import "math"

// Design shear strength of concrete, IS 456 Table 19.
// Breakpoints are (pt, τc) pairs for the M20 reference grade; values for
// other grades are obtained by the grade adjustment in TauC.
var (
	tauCPt = []float64{0.15, 0.25, 0.50, 0.75, 1.00, 1.25, 1.50, 1.75, 2.00, 2.25, 2.50, 2.75, 3.00}
	tauCM20 = []float64{0.28, 0.36, 0.48, 0.56, 0.62, 0.67, 0.72, 0.75, 0.79, 0.81, 0.82, 0.82, 0.82}
)

// TauC interpolates the design shear strength of concrete (MPa) for the
// given percentage of tension steel and concrete strength. pt is clamped
// to the table range [0.15, 3.0] before interpolation.
func TauC(pt, fck float64) float64 {
	if pt < tauCPt[0] {
		pt = tauCPt[0]
	}
	if pt > tauCPt[len(tauCPt)-1] {
		pt = tauCPt[len(tauCPt)-1]
	}

	base := tauCM20[len(tauCM20)-1]
	for i := 1; i < len(tauCPt); i++ {
		if pt <= tauCPt[i] {
			// Linear interpolation between adjacent breakpoints
			frac := (pt - tauCPt[i-1]) / (tauCPt[i] - tauCPt[i-1])
			base = tauCM20[i-1] + frac*(tauCM20[i]-tauCM20[i-1])
			break
		}
	}

	// Higher concrete grades carry proportionally more shear
	return base * (1 + (fck-20)*0.01)
}

// TauCMax returns the maximum permissible shear stress (MPa) for the given
// concrete strength, IS 456 Table 20. A nominal shear stress above this
// value cannot be reinforced out; the section must be resized.
func TauCMax(fck float64) float64 {
	switch {
	case fck < 25:
		return 2.8
	case fck < 30:
		return 3.1
	case fck < 40:
		return 3.5
	}
	return 4.0
}

// MaxStirrupSpacing returns the spacing cap (mm) for vertical stirrups,
// Section 26.5.1.5: the lesser of 0.75·d and 300 mm.
func MaxStirrupSpacing(d float64) float64 {
	return math.Min(0.75*d, 300)
}
