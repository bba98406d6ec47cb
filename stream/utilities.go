package stream

// Standard utilities of the SCEJ process design contest. Each call returns
// a fresh unresolved stream; pass WithCost and friends to adjust it.

// HPSteam is high pressure steam condensing at 254 °C.
func HPSteam(opts ...Option) (*Stream, error) {
	return utility(254, 254, ExternalHot, GasCondensation, "HPSteam", opts)
}

// MPSteam is medium pressure steam condensing at 186 °C.
func MPSteam(opts ...Option) (*Stream, error) {
	return utility(186, 186, ExternalHot, GasCondensation, "MPSteam", opts)
}

// LPSteam is low pressure steam condensing at 160 °C.
func LPSteam(opts ...Option) (*Stream, error) {
	return utility(160, 160, ExternalHot, GasCondensation, "LPSteam", opts)
}

// CoolingWater warms from 30 °C to 40 °C.
func CoolingWater(opts ...Option) (*Stream, error) {
	return utility(30, 40, ExternalCold, Liquid, "CoolingWater", opts)
}

// RefrigerantMinus33 evaporates at -33 °C.
func RefrigerantMinus33(opts ...Option) (*Stream, error) {
	return utility(-33, -33, ExternalCold, LiquidEvaporation, "RefrigerantMinus33", opts)
}

// RefrigerantMinus18 evaporates at -18 °C.
func RefrigerantMinus18(opts ...Option) (*Stream, error) {
	return utility(-18, -18, ExternalCold, LiquidEvaporation, "RefrigerantMinus18", opts)
}

// Refrigerant0 evaporates at 0 °C.
func Refrigerant0(opts ...Option) (*Stream, error) {
	return utility(0, 0, ExternalCold, LiquidEvaporation, "Refrigerant0", opts)
}

// Refrigerant18 evaporates at 21 °C.
func Refrigerant18(opts ...Option) (*Stream, error) {
	return utility(21, 21, ExternalCold, LiquidEvaporation, "Refrigerant18", opts)
}

func utility(in, out float64, t Type, s State, id string, opts []Option) (*Stream, error) {
	base := []Option{WithID(id), WithType(t), WithState(s)}

	return New(in, out, 0, append(base, opts...)...)
}
