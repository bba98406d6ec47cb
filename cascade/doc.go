// Package cascade implements the temperature-interval method ("problem
// table") of pinch analysis.
//
// Solve works on a single shifted-temperature axis, the cold scale: cold
// stream endpoints are taken as they are and hot stream endpoints are moved
// down by ΔTmin. On that axis a network is feasible wherever the cold
// composite lies at or below the hot composite.
//
// Algorithm:
//
//  1. Shift:      hot endpoints T → T − ΔTmin.
//  2. Partition:  sorted distinct endpoints form the interval grid. The
//     temperature of an isothermal stream appears twice, giving a
//     zero-width interval that holds only isothermal duties.
//  3. Balance:    each non-isothermal stream contributes
//     load × overlap / width; balance = Σcold − Σhot.
//  4. Cascade:    from the top, R₀ = 0 and Rᵢ₊₁ = Rᵢ − balanceᵢ. The hot
//     utility is max(0, −min R); adding it to every value gives the
//     corrected cascade, whose bottom value is the cold utility and whose
//     zeros are the pinch temperatures.
//  5. Utilities:  AssignUtilities spreads the targets over the external
//     streams (see utility.go).
//
// Complexity:
//
//	Partition is O(n log n + n·k) for n streams and k ≤ 3n intervals.
//	Solve adds O(k); AssignUtilities is O(u·(k+u)) for u utilities.
//
// Numerical policy:
//
//	Values whose magnitude is below Epsilon × max(1, Σ|load|) are clamped
//	to zero so that a pinch is reported as an exact 0 rather than as a
//	rounding residue.
package cascade
