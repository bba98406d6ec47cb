// Package exchanger sizes and prices the heat exchangers implied by matched
// hot and cold TQ segments.
//
// For one match:
//
//	Q    = heat span of the segment pair            [W]
//	U    = OverallCoefficient(hot state, cold state) [W/m²K]
//	LMTD = (ΔT1 − ΔT2) / ln(ΔT1 / ΔT2)               [K]
//	A    = Q / (U · LMTD)                            [m²]
//	cost = 1 500 000 · A^0.65 · k,  k = 2 for a reboiler or reactor, else 1
//
// U is defined only for the nine pairs of a hot state in {Liquid, Gas,
// GasCondensation} and a cold state in {Liquid, Gas, LiquidEvaporation}.
// An exchanger outside that table is kept with Known set to false and a zero
// cost; TotalCost either skips it or fails, at the caller's choice.
package exchanger
