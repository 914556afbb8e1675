package beam

import (
	"math"

	"github.com/satyajit2online/Load-Distribution/internal/is456"
)

// shearResult carries the shear design fields into the DesignResult.
type shearResult struct {
	TauV               float64 // N/mm²
	TauC               float64 // N/mm²
	ShearReinfRequired bool
	StirrupSpacingMM   int // 0 signals section failure
}

// designShear checks the nominal shear stress against the concrete
// capacity and sizes vertical stirrups. A nominal stress above τc,max is
// an irrecoverable section failure, signalled by zero spacing; only a
// geometry change can fix it.
func designShear(in DesignInputs, v, astProvided float64) shearResult {
	fck := in.Concrete.Fck()
	fy := in.Steel.Fy()
	b := in.WidthMM
	d := in.EffectiveDepth()

	var r shearResult
	r.TauV = v * 1000 / (b * d)

	pt := 100 * astProvided / (b * d)
	r.TauC = is456.TauC(pt, fck)

	if r.TauV > is456.TauCMax(fck) {
		// Failure supersedes the nominal/design stirrup distinction.
		return r
	}

	// Two legs of the selected stirrup diameter
	asv := 2 * is456.BarArea(in.StirrupDiaMM)
	cap := is456.MaxStirrupSpacing(d)

	var spacing float64
	if r.TauV < r.TauC {
		// Nominal stirrups only, Section 26.5.1.6
		spacing = asv * 0.87 * fy / (0.4 * b)
	} else {
		r.ShearReinfRequired = true
		vus := v*1000 - r.TauC*b*d
		spacing = 0.87 * fy * asv * d / vus
	}
	if spacing > cap {
		spacing = cap
	}
	r.StirrupSpacingMM = int(math.Floor(spacing))

	return r
}
