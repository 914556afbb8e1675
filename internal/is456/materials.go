package is456

import "math"

// IS 456:2000 Material Constants

const (
	// Partial safety factor for loads, limit state of collapse
	// Table 18 (DL + LL combination)
	GammaLoad = 1.5

	// Unit weight of reinforced concrete (kN/m³), IS 875 Part 1
	ConcreteUnitWeight = 25.0

	// Default unit weight of brick masonry (kN/m³)
	// Callers should supply the actual value for lightweight block types.
	DefaultMasonryUnitWeight = 20.0

	// Modulus of elasticity for steel (MPa), Section 5.6.3
	Es = 200000.0
)

// ConcreteGrade is a nominal characteristic compressive strength class.
type ConcreteGrade string

const (
	M20 ConcreteGrade = "M20"
	M25 ConcreteGrade = "M25"
	M30 ConcreteGrade = "M30"
	M40 ConcreteGrade = "M40"
)

// Fck returns the characteristic compressive strength (MPa),
// or 0 for an unknown grade.
func (g ConcreteGrade) Fck() float64 {
	switch g {
	case M20:
		return 20
	case M25:
		return 25
	case M30:
		return 30
	case M40:
		return 40
	}
	return 0
}

// SteelGrade is a nominal reinforcement yield strength class.
type SteelGrade string

const (
	Fe415 SteelGrade = "Fe415"
	Fe500 SteelGrade = "Fe500"
	Fe550 SteelGrade = "Fe550"
)

// Fy returns the characteristic yield strength (MPa),
// or 0 for an unknown grade.
func (g SteelGrade) Fy() float64 {
	switch g {
	case Fe415:
		return 415
	case Fe500:
		return 500
	case Fe550:
		return 550
	}
	return 0
}

// BarArea returns the cross-sectional area (mm²) of a single bar
// of the given diameter (mm).
func BarArea(dia float64) float64 {
	return math.Pi * dia * dia / 4
}
