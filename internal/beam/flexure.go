package beam

import (
	"math"

	"github.com/satyajit2online/Load-Distribution/internal/is456"
)

// flexureResult carries the flexural design fields into the DesignResult.
type flexureResult struct {
	MuLim            float64 // kN-m
	DoublyReinforced bool
	AstRequired      float64 // mm²
	AstProvided      float64 // mm²
	BarCount         int
	PtProvided       float64 // %
}

// designFlexure determines the singly/doubly status and the tension steel
// for the factored moment mu (kN-m).
//
// When mu exceeds the limiting moment the section is flagged as doubly
// reinforced and Ast is computed at Mu,lim. Compression steel and the
// extra tension steel of a true doubly reinforced design are NOT computed;
// the reported area is a conservative minimum for a human reviewer to
// complete.
func designFlexure(in DesignInputs, mu float64) flexureResult {
	fck := in.Concrete.Fck()
	fy := in.Steel.Fy()
	b := in.WidthMM
	d := in.EffectiveDepth()

	var r flexureResult
	r.MuLim = is456.MuLim(in.Steel, fck, b, d)
	r.DoublyReinforced = mu > r.MuLim

	designMoment := mu
	if r.DoublyReinforced {
		designMoment = r.MuLim
	}

	r.AstRequired = is456.AstRequired(designMoment, fck, fy, b, d)
	if astMin := is456.AstMin(b, d, fy); r.AstRequired < astMin {
		r.AstRequired = astMin
	}

	barArea := is456.BarArea(in.MainBarDiaMM)
	r.BarCount = int(math.Ceil(r.AstRequired / barArea))
	if r.BarCount < 1 {
		r.BarCount = 1
	}
	r.AstProvided = float64(r.BarCount) * barArea
	r.PtProvided = 100 * r.AstProvided / (b * d)

	return r
}
